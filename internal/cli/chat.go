// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for the voxchat CLI.
//
// Handles "voxchat chat", a line-oriented REPL for terminals where the
// full TUI is unwanted (ssh sessions, minimal terminals, scripts).
//
// Interactive commands (during chat):
//   /voices             List voices
//   /voice NAME         Switch voice
//   /new                Start a new conversation
//   /chats              List conversations
//   /balance            Show the credit balance
//   /export [FORMAT]    Export the current conversation (md, json, html)
//   /help               Show available commands
//   /quit, Ctrl+D       Exit chat
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/voxchat-tui/internal/api"
	"github.com/jeranaias/voxchat-tui/internal/export"
	"github.com/jeranaias/voxchat-tui/internal/generate"
)

// historyFileName stores REPL input history under ~/.voxchat/.
const historyFileName = "chat_history"

// HandleChat runs the interactive REPL.
func HandleChat(args Args) error {
	ctx := context.Background()
	app, err := NewAppWithSession(ctx)
	if err != nil {
		return err
	}

	if !app.Store.IsAuthenticated() {
		return fmt.Errorf("not signed in; run 'voxchat login' first")
	}
	if err := app.Store.LoadVoices(ctx); err != nil {
		fmt.Println(WarnStyle.Render("warning: could not load voices: " + err.Error()))
	}
	app.Store.EnsureConversation()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := loadHistory(line)
	defer saveHistory(line, historyPath)

	printWelcome(app)
	wf := generate.New(app.Store).WithPollInterval(app.Config.PollInterval())

	for {
		prompt := fmt.Sprintf("[%d cr] > ", app.Store.Credits())
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println(MutedStyle.Render("bye"))
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if quit := handleReplCommand(ctx, app, input); quit {
				return nil
			}
			continue
		}

		runGeneration(ctx, app, wf, input)
	}
}

// printWelcome shows the session header.
func printWelcome(app *App) {
	fmt.Println(TitleStyle.Render("voxchat"))
	user := app.Store.User()
	voice := "none"
	if v := app.Store.SelectedVoice(); v != nil {
		voice = v.Name
	}
	fmt.Printf("%s %s · %s %s · %s\n",
		LabelStyle.Render("user:"), ValueStyle.Render(user.Email),
		LabelStyle.Render("voice:"), ValueStyle.Render(voice),
		MutedStyle.Render("/help for commands"))
	fmt.Println()
}

// runGeneration submits one text and prints the resulting audio location.
func runGeneration(ctx context.Context, app *App, wf *generate.Workflow, text string) {
	fmt.Println(MutedStyle.Render(fmt.Sprintf("generating (%d credits)...", generate.Cost(text))))

	result, err := wf.Run(ctx, text)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrInsufficientCredits):
			fmt.Println(ErrStyle.Render("✗ not enough credits: " + api.Detail(err, "")))
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Println(ErrStyle.Render("✗ session expired; run 'voxchat login'"))
		case errors.Is(err, generate.ErrNoVoiceSelected):
			fmt.Println(ErrStyle.Render("✗ no voice selected; use /voice NAME"))
		default:
			fmt.Println(ErrStyle.Render("✗ " + err.Error()))
		}
		return
	}

	fmt.Println(SuccessStyle.Render("▶ audio ready (" + result.VoiceName + ")"))
	fmt.Println("  " + ValueStyle.Render(result.AudioURL))
}

// handleReplCommand executes a slash command. Returns true to exit.
func handleReplCommand(ctx context.Context, app *App, input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case "/quit", "/q", "/exit":
		fmt.Println(MutedStyle.Render("bye"))
		return true

	case "/help", "/h":
		fmt.Println(MutedStyle.Render("/voices /voice NAME /new /chats /balance /export /quit"))

	case "/voices":
		for _, v := range app.Store.Voices() {
			marker := "  "
			if sel := app.Store.SelectedVoice(); sel != nil && sel.ID == v.ID {
				marker = SuccessStyle.Render("✓ ")
			}
			fmt.Printf("%s%s %s\n", marker, ValueStyle.Render(v.Name), MutedStyle.Render(v.Category.DisplayName()))
		}

	case "/voice":
		if len(parts) < 2 {
			fmt.Println(WarnStyle.Render("usage: /voice NAME"))
			break
		}
		name := strings.Join(parts[1:], " ")
		if v := selectVoiceByName(app.Store.Voices(), name); v != nil {
			app.Store.SelectVoice(v)
			fmt.Println(SuccessStyle.Render("✓ voice set to " + v.Name))
		} else {
			fmt.Println(ErrStyle.Render("✗ unknown voice " + name))
		}

	case "/new":
		app.Store.CreateConversation()
		fmt.Println(SuccessStyle.Render("✓ new conversation"))

	case "/chats":
		for i, c := range app.Store.Conversations() {
			marker := "  "
			if c.ID == app.Store.CurrentConversationID() {
				marker = SuccessStyle.Render("✓ ")
			}
			fmt.Printf("%s%d. %s %s\n", marker, i+1, ValueStyle.Render(c.Title),
				MutedStyle.Render(fmt.Sprintf("(%d messages)", c.MessageCount())))
		}

	case "/export":
		conv := app.Store.CurrentConversation()
		if conv == nil || conv.IsEmpty() {
			fmt.Println(WarnStyle.Render("nothing to export yet"))
			break
		}
		opts := export.DefaultOptions()
		var exporter export.Exporter = export.NewMarkdownExporter(opts)
		if len(parts) > 1 {
			switch parts[1] {
			case "json":
				exporter = export.NewJSONExporter(opts)
			case "html":
				exporter = export.NewHTMLExporter(opts)
			case "md", "markdown":
			default:
				fmt.Println(WarnStyle.Render("usage: /export [md|json|html]"))
				return false
			}
		}
		path, err := export.ExportToFile(conv, exporter, opts)
		if err != nil {
			fmt.Println(ErrStyle.Render("✗ export failed: " + err.Error()))
			break
		}
		fmt.Println(SuccessStyle.Render("✓ exported " + path))

	case "/balance":
		if err := app.Store.RefreshCredits(ctx); err != nil {
			fmt.Println(WarnStyle.Render("could not refresh: " + err.Error()))
		}
		fmt.Printf("%s %d credits\n", LabelStyle.Render("balance:"), app.Store.Credits())

	default:
		fmt.Println(WarnStyle.Render("unknown command " + cmd + " (/help)"))
	}
	return false
}

// =============================================================================
// INPUT HISTORY
// =============================================================================

func loadHistory(line *liner.State) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".voxchat", historyFileName)
	if f, err := os.Open(path); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	return path
}

func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}

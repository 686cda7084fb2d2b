// voxchat TUI - chat-style text to speech from your terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/voxchat-tui/internal/cli"
	"github.com/jeranaias/voxchat-tui/internal/ui/chat"
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	args := cli.ParseArgs(os.Args[1:])

	if args.Command == cli.CmdTUI {
		runTUI()
		return
	}

	if err := cli.Run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the full-screen interface.
func runTUI() {
	// The alt screen owns stderr, so log lines go to a file instead.
	if f := openLogFile(); f != nil {
		log.SetOutput(f)
		defer f.Close()
	}

	app, err := cli.NewAppWithSession(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme := styles.NewThemeWithMode(app.Config.UI.Theme)
	m := chat.New(app.Store, theme, chat.OptionsFromConfig(app.Config))

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	// A 401 can surface from a background poll goroutine. The store handler
	// clears the session; this one gets the login overlay back on screen.
	app.Client.OnLogout(func() {
		p.Send(chat.ForcedLogoutMsg{})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running voxchat: %v\n", err)
		os.Exit(1)
	}
}

// openLogFile opens ~/.voxchat/voxchat.log for append, or returns nil.
func openLogFile() *os.File {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".voxchat")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "voxchat.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}
	return f
}

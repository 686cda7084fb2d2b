// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for voxchat.
package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdRegister
	CmdLogout
	CmdWhoami
	CmdVoices
	CmdChat
	CmdHistory
	CmdExport
	CmdStatus
	CmdFeedback
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	Command Command

	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool

	// Credentials for non-interactive login/register
	Email    string
	Password string

	// Free text (feedback message)
	Text    string
	Contact string

	// History limit
	Limit int

	// Parser for anything command-specific
	Parser *ArgParser
}

const usageText = `voxchat - text to speech from your terminal

Pick a voice, type text, get audio. Conversations and the selected
voice persist across sessions.

Usage:
  voxchat                    Start the TUI (default)
  voxchat login              Sign in (prompts for credentials)
  voxchat register           Create an account
  voxchat logout             Sign out and forget the token
  voxchat whoami             Show the signed-in user and balance
  voxchat voices             List available voices
  voxchat chat               Interactive REPL chat
  voxchat history            List recent generation tasks
  voxchat export             Export a conversation transcript
  voxchat status             Backend health and host resources
  voxchat feedback "text"    Send feedback
  voxchat version            Show version
  voxchat help               Show this help

Flags:
  --email ADDR     Email for login/register (skips the prompt)
  --password PW    Password for login/register (prefer the prompt)
  --limit N        Number of history entries (default 20)
  --format FMT     Export format: md, json, html (default md)
  --out DIR        Export output directory (default .)
  --all            Export every conversation, not just the current one
  --contact ADDR   Reply-to contact for feedback
  --json           Machine-readable output where supported
  -q, --quiet      Minimal output
  -v, --verbose    Verbose output

Environment:
  VOXCHAT_API_URL  Override the backend URL
  VOXCHAT_CONFIG   Override the config file path

Credits: generation costs one credit per character of input.`

// ParseArgs parses os.Args style arguments into an Args.
func ParseArgs(raw []string) Args {
	args := Args{Command: CmdTUI, Limit: 20}
	if len(raw) == 0 {
		args.Parser = NewArgParser(nil)
		return args
	}

	switch raw[0] {
	case "login":
		args.Command = CmdLogin
	case "register":
		args.Command = CmdRegister
	case "logout":
		args.Command = CmdLogout
	case "whoami", "me":
		args.Command = CmdWhoami
	case "voices":
		args.Command = CmdVoices
	case "chat":
		args.Command = CmdChat
	case "history":
		args.Command = CmdHistory
	case "export":
		args.Command = CmdExport
	case "status", "s":
		args.Command = CmdStatus
	case "feedback":
		args.Command = CmdFeedback
	case "version", "--version", "-V":
		args.Command = CmdVersion
	case "help", "--help", "-h":
		args.Command = CmdHelp
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", raw[0], usageText)
		os.Exit(2)
	}

	parser := NewArgParser(raw[1:])
	args.Parser = parser
	args.Quiet = parser.BoolFlag("quiet") || parser.BoolFlag("q")
	args.Verbose = parser.BoolFlag("verbose") || parser.BoolFlag("v")
	args.JSON = parser.BoolFlag("json")
	args.Email = parser.Flag("email")
	args.Password = parser.Flag("password")
	args.Contact = parser.Flag("contact")
	if limit := parser.Flag("limit"); limit != "" {
		fmt.Sscanf(limit, "%d", &args.Limit)
	}
	args.Text = parser.JoinPositional(0)
	return args
}

// Run executes the parsed command. CmdTUI is handled by the caller since
// it owns the Bubble Tea program.
func Run(args Args) error {
	switch args.Command {
	case CmdLogin:
		return HandleLogin(args)
	case CmdRegister:
		return HandleRegister(args)
	case CmdLogout:
		return HandleLogout(args)
	case CmdWhoami:
		return HandleWhoami(args)
	case CmdVoices:
		return HandleVoices(args)
	case CmdChat:
		return HandleChat(args)
	case CmdHistory:
		return HandleHistory(args)
	case CmdExport:
		return HandleExport(args)
	case CmdStatus:
		return HandleStatus(args)
	case CmdFeedback:
		return HandleFeedback(args)
	case CmdVersion:
		fmt.Printf("voxchat %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return nil
	case CmdHelp:
		fmt.Println(usageText)
		return nil
	default:
		return fmt.Errorf("command not handled here")
	}
}

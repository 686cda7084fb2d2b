// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the voxchat command line: argument parsing, the
// subcommand handlers (login, voices, history, status, feedback), and the
// interactive chat REPL for terminals where the full TUI is unwanted.
package cli

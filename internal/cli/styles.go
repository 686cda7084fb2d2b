// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for all voxchat CLI commands.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

// init configures the lipgloss color profile from terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for command titles and headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Cyan)

	// LabelStyle is used for field labels in key/value output.
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextSecondary)

	// ValueStyle is used for values in key/value output.
	ValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	// SuccessStyle marks successful operations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// WarnStyle marks degraded or cautionary output.
	WarnStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// ErrStyle marks failures.
	ErrStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// MutedStyle is for hints and secondary detail.
	MutedStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)

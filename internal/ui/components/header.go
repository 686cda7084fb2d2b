// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar: brand on the left, the signed-in user on the
// right.
type Header struct {
	Title       string // Main title (default: "voxchat")
	UserLabel   string // Display name of the signed-in user, or ""
	UserInitial string // Single-character avatar fallback
	Width       int
	theme       *styles.Theme
}

// NewHeader creates a Header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "voxchat",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetUser updates the signed-in user label and avatar initial. An empty
// label means signed out.
func (h *Header) SetUser(label, initial string) {
	h.UserLabel = label
	h.UserInitial = initial
}

// View renders the header line.
func (h *Header) View() string {
	brand := h.theme.HeaderBrand.Render("◆ " + h.Title)
	subtitle := h.theme.HeaderSubtitle.Render("text to speech")
	left := brand + " " + subtitle

	right := h.theme.HeaderSubtitle.Render("signed out")
	if h.UserLabel != "" {
		right = h.theme.HeaderTitle.Render(h.UserLabel)
		if h.UserInitial != "" {
			right = h.theme.VoiceBadge.Render(" "+h.UserInitial+" ") + " " + right
		}
	}

	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return h.theme.Header.Width(h.Width - 2).Render(line)
}

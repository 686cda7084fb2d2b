// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

// =============================================================================
// ERROR BANNER COMPONENT
// =============================================================================

// ErrorBanner shows a dismissable error strip above the input area.
type ErrorBanner struct {
	Title   string
	Message string
	Width   int
	theme   *styles.Theme
}

// NewErrorBanner creates an empty banner.
func NewErrorBanner(theme *styles.Theme) *ErrorBanner {
	return &ErrorBanner{Width: 80, theme: theme}
}

// SetWidth updates the banner width.
func (e *ErrorBanner) SetWidth(width int) {
	e.Width = width
}

// Show sets the banner content.
func (e *ErrorBanner) Show(title, message string) {
	e.Title = title
	e.Message = message
}

// Clear hides the banner.
func (e *ErrorBanner) Clear() {
	e.Title = ""
	e.Message = ""
}

// Visible reports whether there is anything to render.
func (e *ErrorBanner) Visible() bool {
	return e.Title != "" || e.Message != ""
}

// View renders the banner, or "" when hidden.
func (e *ErrorBanner) View() string {
	if !e.Visible() {
		return ""
	}
	body := e.theme.ErrorTitle.Render("✗ "+e.Title) + "\n" +
		e.theme.ErrorMessage.Render(truncateDisplay(e.Message, e.Width-6)) + "\n" +
		e.theme.FormHint.Render("esc to dismiss")
	return e.theme.ErrorBox.Render(body)
}

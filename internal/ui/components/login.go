// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

// =============================================================================
// LOGIN FORM COMPONENT
// =============================================================================

// LoginField identifies the focused form element.
type LoginField int

const (
	FieldEmail LoginField = iota
	FieldPassword
)

// LoginForm is the sign-in overlay: email and password inputs plus an
// optional inline error.
type LoginForm struct {
	Email    textinput.Model
	Password textinput.Model
	Focused  LoginField
	ErrText  string
	Busy     bool
	Width    int
	theme    *styles.Theme
}

// NewLoginForm creates the form with the email field focused.
func NewLoginForm(theme *styles.Theme) *LoginForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 36
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 36

	return &LoginForm{
		Email:    email,
		Password: password,
		Focused:  FieldEmail,
		Width:    60,
		theme:    theme,
	}
}

// SetWidth updates the overlay width.
func (f *LoginForm) SetWidth(width int) {
	f.Width = width
}

// SetError shows an inline error message.
func (f *LoginForm) SetError(msg string) {
	f.ErrText = msg
}

// SetBusy toggles the submitting state.
func (f *LoginForm) SetBusy(busy bool) {
	f.Busy = busy
}

// Reset clears both fields and the error.
func (f *LoginForm) Reset() {
	f.Email.SetValue("")
	f.Password.SetValue("")
	f.ErrText = ""
	f.Busy = false
	f.FocusField(FieldEmail)
}

// FocusField moves focus to the given field.
func (f *LoginForm) FocusField(field LoginField) {
	f.Focused = field
	if field == FieldEmail {
		f.Email.Focus()
		f.Password.Blur()
		return
	}
	f.Password.Focus()
	f.Email.Blur()
}

// NextField cycles focus email -> password -> email.
func (f *LoginForm) NextField() {
	if f.Focused == FieldEmail {
		f.FocusField(FieldPassword)
		return
	}
	f.FocusField(FieldEmail)
}

// Update forwards key events to the focused input.
func (f *LoginForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.Focused == FieldEmail {
		f.Email, cmd = f.Email.Update(msg)
		return cmd
	}
	f.Password, cmd = f.Password.Update(msg)
	return cmd
}

// Values returns the trimmed email and the raw password.
func (f *LoginForm) Values() (string, string) {
	return strings.TrimSpace(f.Email.Value()), f.Password.Value()
}

// View renders the sign-in box.
func (f *LoginForm) View() string {
	var b strings.Builder
	b.WriteString(f.theme.OverlayTitle.Render("Sign in to voxchat"))
	b.WriteString("\n\n")
	b.WriteString(f.theme.FormLabel.Render("Email"))
	b.WriteString("\n")
	b.WriteString(f.Email.View())
	b.WriteString("\n\n")
	b.WriteString(f.theme.FormLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(f.Password.View())
	b.WriteString("\n\n")

	if f.Busy {
		b.WriteString(f.theme.GeneratingText.Render("signing in..."))
	} else {
		b.WriteString(f.theme.FormButton.Render("enter to sign in"))
	}

	if f.ErrText != "" {
		b.WriteString("\n\n")
		b.WriteString(f.theme.ErrorTitle.Render(f.ErrText))
	}

	b.WriteString("\n\n")
	b.WriteString(f.theme.FormHint.Render("tab switch field · esc cancel"))
	return f.theme.FormBox.Render(b.String())
}

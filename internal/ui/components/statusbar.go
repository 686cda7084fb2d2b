// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/jeranaias/voxchat-tui/internal/model"
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// lowCreditThreshold switches the balance display to the warning style.
const lowCreditThreshold = 50

// StatusBar shows the selected voice, the credit balance, and the key
// shortcuts.
type StatusBar struct {
	Voice   *model.Voice
	Credits int
	Width   int
	theme   *styles.Theme
}

// NewStatusBar creates a StatusBar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetVoice updates the displayed voice selection.
func (s *StatusBar) SetVoice(v *model.Voice) {
	s.Voice = v
}

// SetCredits updates the displayed balance.
func (s *StatusBar) SetCredits(n int) {
	s.Credits = n
}

// View renders the status bar line.
func (s *StatusBar) View() string {
	var parts []string

	voiceLabel := "no voice"
	if s.Voice != nil {
		voiceLabel = s.Voice.Name
	}
	parts = append(parts, s.theme.VoiceBadge.Render("♪ "+voiceLabel))

	creditStyle := s.theme.CreditsOK
	if s.Credits < lowCreditThreshold {
		creditStyle = s.theme.CreditsLow
	}
	parts = append(parts, creditStyle.Render(fmt.Sprintf("%d credits", s.Credits)))

	shortcuts := []struct {
		key, desc string
	}{
		{"C-v", "voices"},
		{"C-l", "chats"},
		{"C-n", "new"},
		{"C-c", "quit"},
	}
	for _, sc := range shortcuts {
		parts = append(parts,
			s.theme.ShortcutKey.Render(sc.key)+" "+s.theme.ShortcutDesc.Render(sc.desc))
	}

	line := strings.Join(parts, "  │  ")
	return s.theme.StatusBar.Width(s.Width).Render(line)
}

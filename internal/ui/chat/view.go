// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/voxchat-tui/internal/generate"
	"github.com/jeranaias/voxchat-tui/internal/ui/components"
)

// View renders the full screen.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.errBanner.Visible() {
		b.WriteString(m.errBanner.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderInputArea())
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())

	base := b.String()

	switch m.overlay {
	case OverlayLogin:
		return m.renderOverlay(m.loginForm.View())
	case OverlayVoices:
		return m.renderOverlay(m.voicePicker.View())
	case OverlayChats:
		return m.renderOverlay(m.convPicker.View())
	}
	return base
}

// renderOverlay centers a modal box on the screen.
func (m *Model) renderOverlay(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// renderTranscript renders the active conversation's messages.
func (m *Model) renderTranscript() string {
	conv := m.store.CurrentConversation()
	if conv == nil || conv.IsEmpty() {
		return m.renderWelcome()
	}

	var parts []string
	for _, msg := range conv.Messages {
		bubble := components.NewMessageBubble(msg, m.theme)
		bubble.SetWidth(m.width)
		bubble.ShowTimestamp = m.opts.ShowTimestamps
		parts = append(parts, bubble.View())
	}

	if m.generating {
		parts = append(parts, m.spinner.View()+" "+m.theme.GeneratingText.Render("generating audio..."))
	}

	separator := "\n\n"
	if m.opts.CompactMode {
		separator = "\n"
	}
	return strings.Join(parts, separator)
}

// renderWelcome fills the empty transcript with a short hint.
func (m *Model) renderWelcome() string {
	lines := []string{
		"",
		m.theme.HeaderTitle.Render("Welcome to voxchat"),
		"",
		m.theme.GeneratingText.Render("Pick a voice with C-v, type some text, press Enter."),
		m.theme.GeneratingText.Render("Each character of input costs one credit."),
	}
	content := strings.Join(lines, "\n")
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}

// =============================================================================
// INPUT AREA
// =============================================================================

// renderInputArea renders the prompt line with the live cost estimate.
func (m *Model) renderInputArea() string {
	cost := generate.Cost(m.input.Value())
	balance := m.store.Credits()

	costStyle := m.theme.CostCount
	switch {
	case cost > balance:
		costStyle = m.theme.CostCountDanger
	case cost > balance/2 && cost > 0:
		costStyle = m.theme.CostCountWarning
	}
	costLabel := costStyle.Render(fmt.Sprintf("%d cr", cost))

	prompt := m.theme.InputPrompt.Render("❯ ")
	line := prompt + m.input.View()

	gap := m.width - lipgloss.Width(line) - lipgloss.Width(costLabel) - 4
	if gap < 1 {
		gap = 1
	}
	return m.theme.InputContainer.Width(m.width).Render(line + strings.Repeat(" ", gap) + costLabel)
}

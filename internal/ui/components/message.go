// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/voxchat-tui/internal/model"
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one message: user text on the right in blue,
// assistant audio results on the left in purple.
type MessageBubble struct {
	Message       *model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a MessageBubble.
func NewMessageBubble(msg *model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message == nil {
		return ""
	}
	switch b.Message.Role {
	case model.RoleUser:
		return b.renderUserBubble()
	case model.RoleAssistant:
		return b.renderAssistantBubble()
	default:
		return ""
	}
}

// ==========================================================================
// USER BUBBLE - Blue tones, right-aligned feel
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)

	label := b.theme.Timestamp.Render(b.Message.Role.DisplayName())
	if b.ShowTimestamp {
		label += b.theme.Timestamp.Render(" · " + formatRelativeTime(b.Message.Timestamp))
	}

	bubble := b.theme.UserBubble.Render(wrapped)
	block := lipgloss.JoinVertical(lipgloss.Right, label, bubble)
	return lipgloss.PlaceHorizontal(b.Width, lipgloss.Right, block)
}

// ==========================================================================
// ASSISTANT BUBBLE - Purple tones, audio artifact
// ==========================================================================

func (b *MessageBubble) renderAssistantBubble() string {
	var lines []string
	lines = append(lines, b.theme.AudioLine.Render("▶ audio ready"))
	if b.Message.VoiceName != "" {
		lines = append(lines, b.theme.VoiceTag.Render("voice: "+b.Message.VoiceName))
	}
	if b.Message.AudioURL != "" {
		maxURLWidth := b.Width - 16
		if maxURLWidth < 20 {
			maxURLWidth = 20
		}
		lines = append(lines, b.theme.ListItemDetail.Render(truncateDisplay(b.Message.AudioURL, maxURLWidth)))
	}

	label := b.theme.Timestamp.Render(b.Message.Role.DisplayName())
	if b.ShowTimestamp {
		label += b.theme.Timestamp.Render(" · " + formatRelativeTime(b.Message.Timestamp))
	}

	bubble := b.theme.AssistantBubble.Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, label, bubble)
}

// wordWrap wraps text at the given width, preserving existing newlines.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(current)+1+lipgloss.Width(word) > width {
				out = append(out, current)
				current = word
				continue
			}
			current += " " + word
		}
		out = append(out, current)
	}
	return strings.Join(out, "\n")
}

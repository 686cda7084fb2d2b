// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/voxchat-tui/internal/model"
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

// =============================================================================
// PICKER COMPONENT - Overlay list for voices and conversations
// =============================================================================

// PickerItem is one selectable row.
type PickerItem struct {
	ID     string
	Label  string
	Detail string
}

// Picker is a keyboard-driven overlay list. The chat model feeds it
// items and moves the cursor; Selected returns the highlighted item.
type Picker struct {
	Title  string
	Items  []PickerItem
	Cursor int
	Width  int
	theme  *styles.Theme
}

// NewPicker creates an empty picker.
func NewPicker(title string, theme *styles.Theme) *Picker {
	return &Picker{Title: title, Width: 60, theme: theme}
}

// SetItems replaces the item list and clamps the cursor.
func (p *Picker) SetItems(items []PickerItem) {
	p.Items = items
	if p.Cursor >= len(items) {
		p.Cursor = len(items) - 1
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
}

// SetWidth updates the overlay width.
func (p *Picker) SetWidth(width int) {
	p.Width = width
}

// MoveUp moves the cursor up, stopping at the top.
func (p *Picker) MoveUp() {
	if p.Cursor > 0 {
		p.Cursor--
	}
}

// MoveDown moves the cursor down, stopping at the bottom.
func (p *Picker) MoveDown() {
	if p.Cursor < len(p.Items)-1 {
		p.Cursor++
	}
}

// Selected returns the highlighted item, or nil when the list is empty.
func (p *Picker) Selected() *PickerItem {
	if len(p.Items) == 0 {
		return nil
	}
	return &p.Items[p.Cursor]
}

// SelectID moves the cursor to the item with the given id, if present.
func (p *Picker) SelectID(id string) {
	for i, item := range p.Items {
		if item.ID == id {
			p.Cursor = i
			return
		}
	}
}

// View renders the overlay box.
func (p *Picker) View() string {
	var b strings.Builder
	b.WriteString(p.theme.OverlayTitle.Render(p.Title))
	b.WriteString("\n\n")

	if len(p.Items) == 0 {
		b.WriteString(p.theme.ListItemDetail.Render("nothing here yet"))
	}

	labelWidth := p.Width - 10
	if labelWidth < 16 {
		labelWidth = 16
	}
	for i, item := range p.Items {
		style := p.theme.ListItem
		prefix := "  "
		if i == p.Cursor {
			style = p.theme.ListItemActive
			prefix = "❯ "
		}
		b.WriteString(style.Render(prefix + padRight(truncateDisplay(item.Label, labelWidth), labelWidth)))
		if item.Detail != "" {
			b.WriteString(" " + p.theme.ListItemDetail.Render(item.Detail))
		}
		if i < len(p.Items)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(p.theme.FormHint.Render("↑/↓ move · enter select · esc close"))
	return p.theme.OverlayBox.Render(b.String())
}

// =============================================================================
// ITEM CONSTRUCTORS
// =============================================================================

// VoiceItems converts the voice catalog to picker rows.
func VoiceItems(voices []model.Voice) []PickerItem {
	items := make([]PickerItem, len(voices))
	for i, v := range voices {
		items[i] = PickerItem{
			ID:     v.ID,
			Label:  v.Name,
			Detail: v.Category.DisplayName(),
		}
	}
	return items
}

// ConversationItems converts the conversation list to picker rows. The
// detail line carries the last activity time and, when the thread ends on
// user text, a short preview of it.
func ConversationItems(convs []*model.Conversation) []PickerItem {
	items := make([]PickerItem, len(convs))
	for i, c := range convs {
		detail := formatRelativeTime(c.UpdatedAt)
		if last := c.LastMessage(); last != nil && last.Content != "" {
			detail += " · " + last.Preview(24)
		}
		items[i] = PickerItem{
			ID:     c.ID,
			Label:  c.Title,
			Detail: detail,
		}
	}
	return items
}

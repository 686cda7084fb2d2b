// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/voxchat-tui/internal/model"
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme()
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  int
	}{
		{"abc", 6, 6},
		{"abcdef", 3, 6}, // already wider, unchanged
		{"", 4, 4},
	}
	for _, tt := range tests {
		got := padRight(tt.in, tt.width)
		if len(got) != tt.want {
			t.Errorf("padRight(%q, %d) = %q (len %d), want len %d", tt.in, tt.width, got, len(got), tt.want)
		}
	}
}

func TestTruncateDisplay(t *testing.T) {
	if got := truncateDisplay("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	got := truncateDisplay("a very long label that overflows", 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated string %q should end with ellipsis", got)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()
	if got := formatRelativeTime(now.Add(-10 * time.Second)); got != "just now" {
		t.Errorf("got %q", got)
	}
	if got := formatRelativeTime(now.Add(-5 * time.Minute)); got != "5m ago" {
		t.Errorf("got %q", got)
	}
	if got := formatRelativeTime(now.Add(-3 * time.Hour)); got != "3h ago" {
		t.Errorf("got %q", got)
	}
}

func TestMessageBubbleUser(t *testing.T) {
	msg := model.NewUserMessage("read this aloud")
	bubble := NewMessageBubble(msg, testTheme())
	bubble.SetWidth(60)

	out := bubble.View()
	if !strings.Contains(out, "read this aloud") {
		t.Error("user bubble missing content")
	}
	if !strings.Contains(out, "You") {
		t.Error("user bubble missing role label")
	}
}

func TestMessageBubbleAssistant(t *testing.T) {
	msg := model.NewAssistantMessage("http://backend/static/outputs/t1.wav", "Marcus")
	bubble := NewMessageBubble(msg, testTheme())
	bubble.SetWidth(60)

	out := bubble.View()
	if !strings.Contains(out, "audio ready") {
		t.Error("assistant bubble missing audio line")
	}
	if !strings.Contains(out, "Marcus") {
		t.Error("assistant bubble missing voice name")
	}
}

func TestWordWrap(t *testing.T) {
	wrapped := wordWrap("one two three four five", 9)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > 9 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	// Existing newlines survive.
	if got := wordWrap("a\nb", 40); got != "a\nb" {
		t.Errorf("got %q", got)
	}
}

func TestPickerNavigation(t *testing.T) {
	p := NewPicker("Voices", testTheme())
	p.SetItems(VoiceItems([]model.Voice{
		{ID: "v1", Name: "Marcus", Category: model.CategoryMale},
		{ID: "v2", Name: "Elena", Category: model.CategoryFemale},
	}))

	if p.Selected().ID != "v1" {
		t.Errorf("initial selection = %q", p.Selected().ID)
	}
	p.MoveDown()
	if p.Selected().ID != "v2" {
		t.Errorf("after MoveDown = %q", p.Selected().ID)
	}
	p.MoveDown() // clamped at bottom
	if p.Selected().ID != "v2" {
		t.Errorf("cursor should clamp, got %q", p.Selected().ID)
	}
	p.MoveUp()
	p.MoveUp() // clamped at top
	if p.Selected().ID != "v1" {
		t.Errorf("cursor should clamp at top, got %q", p.Selected().ID)
	}

	p.SelectID("v2")
	if p.Selected().ID != "v2" {
		t.Errorf("SelectID failed, got %q", p.Selected().ID)
	}
}

func TestConversationItemsPreviewLastMessage(t *testing.T) {
	conv := model.NewConversation()
	conv.AddMessage(model.NewUserMessage("read the morning briefing"))

	items := ConversationItems([]*model.Conversation{conv})
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if !strings.Contains(items[0].Detail, "read the morning brie") {
		t.Errorf("Detail = %q, want last message preview", items[0].Detail)
	}

	// Audio-only tail: no preview, just the activity time.
	conv.AddMessage(model.NewAssistantMessage("/audio/x.wav", "Aria"))
	items = ConversationItems([]*model.Conversation{conv})
	if strings.Contains(items[0].Detail, "read the morning") {
		t.Errorf("Detail = %q, want no preview for audio tail", items[0].Detail)
	}
}

func TestPickerEmpty(t *testing.T) {
	p := NewPicker("Chats", testTheme())
	if p.Selected() != nil {
		t.Error("empty picker should have nil selection")
	}
	if out := p.View(); !strings.Contains(out, "nothing here yet") {
		t.Error("empty picker missing placeholder")
	}
}

func TestLoginFormFocusCycle(t *testing.T) {
	f := NewLoginForm(testTheme())
	if f.Focused != FieldEmail {
		t.Fatal("email should start focused")
	}
	f.NextField()
	if f.Focused != FieldPassword {
		t.Error("tab should move to password")
	}
	f.NextField()
	if f.Focused != FieldEmail {
		t.Error("tab should cycle back to email")
	}
}

func TestLoginFormValuesTrimmed(t *testing.T) {
	f := NewLoginForm(testTheme())
	f.Email.SetValue("  user@example.com  ")
	f.Password.SetValue(" secret ")
	email, password := f.Values()
	if email != "user@example.com" {
		t.Errorf("email = %q", email)
	}
	if password != " secret " {
		t.Errorf("password must not be trimmed, got %q", password)
	}
}

func TestErrorBanner(t *testing.T) {
	e := NewErrorBanner(testTheme())
	if e.Visible() {
		t.Error("new banner should be hidden")
	}
	e.Show("Generation failed", "engine crashed")
	if !e.Visible() {
		t.Error("banner should be visible after Show")
	}
	if out := e.View(); !strings.Contains(out, "Generation failed") {
		t.Error("banner missing title")
	}
	e.Clear()
	if e.Visible() || e.View() != "" {
		t.Error("banner should be empty after Clear")
	}
}

func TestStatusBarShowsVoiceAndCredits(t *testing.T) {
	s := NewStatusBar(testTheme())
	s.SetVoice(&model.Voice{ID: "v1", Name: "Elena", Category: model.CategoryFemale})
	s.SetCredits(120)
	s.SetWidth(100)

	out := s.View()
	if !strings.Contains(out, "Elena") {
		t.Error("status bar missing voice name")
	}
	if !strings.Contains(out, "120 credits") {
		t.Error("status bar missing credits")
	}
}

func TestHeaderShowsUser(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(100)
	if out := h.View(); !strings.Contains(out, "signed out") {
		t.Error("header should show signed out state")
	}
	h.SetUser("alice", "A")
	out := h.View()
	if !strings.Contains(out, "alice") {
		t.Error("header missing user label")
	}
	if !strings.Contains(out, " A ") {
		t.Error("header missing avatar initial badge")
	}
}

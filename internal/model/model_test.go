// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for voices, conversations,
// messages, and users.
package model

import (
	"strings"
	"testing"
)

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestNewConversation(t *testing.T) {
	conv := NewConversation()

	if !strings.HasPrefix(conv.ID, "conv_") {
		t.Errorf("ID should start with 'conv_', got %q", conv.ID)
	}
	if conv.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", conv.Title, DefaultTitle)
	}
	if !conv.IsEmpty() {
		t.Error("New conversation should be empty")
	}
	if conv.CreatedAt.IsZero() || conv.UpdatedAt.IsZero() {
		t.Error("Timestamps should be set")
	}
}

func TestConversation_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		conv := NewConversation()
		if seen[conv.ID] {
			t.Fatalf("Duplicate conversation ID: %s", conv.ID)
		}
		seen[conv.ID] = true
	}
}

func TestConversation_TitleFromFirstUserMessage(t *testing.T) {
	conv := NewConversation()
	conv.AddMessage(NewUserMessage("Hello there, please read this aloud"))

	if conv.Title != "Hello there, please read this aloud" {
		t.Errorf("Title = %q, want the first user message", conv.Title)
	}

	// Title stays pinned to the first user message.
	conv.AddMessage(NewAssistantMessage("/static/out/1.wav", "Aria"))
	conv.AddMessage(NewUserMessage("a completely different second message"))

	if conv.Title != "Hello there, please read this aloud" {
		t.Errorf("Title changed after later messages: %q", conv.Title)
	}
}

func TestConversation_TitleTruncation(t *testing.T) {
	// TitleMaxRunes caps the TOTAL length: a truncated title is 47 content
	// runes plus the three-dot ellipsis, never 50 plus ellipsis.
	long := strings.Repeat("a", 80)
	conv := NewConversation()
	conv.AddMessage(NewUserMessage(long))

	runes := []rune(conv.Title)
	if len(runes) != TitleMaxRunes {
		t.Errorf("Title length = %d runes, want %d", len(runes), TitleMaxRunes)
	}
	if !strings.HasSuffix(conv.Title, "...") {
		t.Errorf("Truncated title should end with ellipsis, got %q", conv.Title)
	}
}

func TestConversation_TitleCollapsesNewlines(t *testing.T) {
	conv := NewConversation()
	conv.AddMessage(NewUserMessage("line one\r\nline two"))

	if strings.ContainsAny(conv.Title, "\r\n") {
		t.Errorf("Title should not contain newlines: %q", conv.Title)
	}
}

func TestConversation_SetMessages(t *testing.T) {
	conv := NewConversation()
	before := conv.UpdatedAt

	conv.SetMessages([]*Message{
		NewUserMessage("replaced history"),
		NewAssistantMessage("/static/out/2.wav", "Kai"),
	})

	if conv.MessageCount() != 2 {
		t.Errorf("MessageCount = %d, want 2", conv.MessageCount())
	}
	if conv.Title != "replaced history" {
		t.Errorf("Title = %q, want %q", conv.Title, "replaced history")
	}
	if conv.UpdatedAt.Before(before) {
		t.Error("UpdatedAt should advance on SetMessages")
	}

	conv.SetMessages(nil)
	if conv.Title != DefaultTitle {
		t.Errorf("Title after clearing = %q, want default", conv.Title)
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("speak this")

	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want %q", msg.Role, RoleUser)
	}
	if msg.Content != "speak this" {
		t.Errorf("Content = %q, want %q", msg.Content, "speak this")
	}
	if !strings.HasPrefix(msg.ID, "msg_") {
		t.Errorf("ID should start with 'msg_', got %q", msg.ID)
	}
}

func TestNewAssistantMessage(t *testing.T) {
	msg := NewAssistantMessage("/static/outputs/task1.wav", "Aria")

	if msg.Role != RoleAssistant {
		t.Errorf("Role = %q, want %q", msg.Role, RoleAssistant)
	}
	if msg.AudioURL != "/static/outputs/task1.wav" {
		t.Errorf("AudioURL = %q", msg.AudioURL)
	}
	if msg.VoiceName != "Aria" {
		t.Errorf("VoiceName = %q, want %q", msg.VoiceName, "Aria")
	}
	if msg.Content != "" {
		t.Errorf("Assistant message should carry no text, got %q", msg.Content)
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := NewUserMessage(strings.Repeat("x", 100))
	preview := msg.Preview(20)
	if len([]rune(preview)) != 20 {
		t.Errorf("Preview length = %d, want 20", len([]rune(preview)))
	}
}

func TestRole_DisplayName(t *testing.T) {
	if RoleUser.DisplayName() != "You" {
		t.Errorf("RoleUser.DisplayName() = %q", RoleUser.DisplayName())
	}
	if RoleAssistant.DisplayName() != "Voxchat" {
		t.Errorf("RoleAssistant.DisplayName() = %q", RoleAssistant.DisplayName())
	}
}

// =============================================================================
// USER TESTS
// =============================================================================

func TestNewUser(t *testing.T) {
	user := NewUser("u_1", "ada@example.com", "", "")

	if user.Name != "ada" {
		t.Errorf("Name = %q, want %q", user.Name, "ada")
	}
	if user.Plan != DefaultPlan {
		t.Errorf("Plan = %q, want %q", user.Plan, DefaultPlan)
	}
	if user.Initial() != "A" {
		t.Errorf("Initial() = %q, want %q", user.Initial(), "A")
	}
}

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"ada@example.com", "ada"},
		{"no-at-sign", "no-at-sign"},
		{"@leading", "@leading"},
	}
	for _, tc := range tests {
		if got := DisplayNameFromEmail(tc.email); got != tc.want {
			t.Errorf("DisplayNameFromEmail(%q) = %q, want %q", tc.email, got, tc.want)
		}
	}
}

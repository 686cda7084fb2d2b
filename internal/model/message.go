// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for voices, conversations,
// messages, and users.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/voxchat-tui/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Voxchat"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation. User messages carry
// the submitted text; assistant messages carry the generated audio location
// and the voice that spoke it.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content is the raw input text (user messages).
	Content string `json:"content,omitempty"`

	// Audio artifact (assistant messages).
	AudioURL  string `json:"audio_url,omitempty"`
	VoiceName string `json:"voice_name,omitempty"`
}

// NewUserMessage creates a new user message with the submitted text.
func NewUserMessage(content string) *Message {
	return &Message{
		ID:        generateMessageID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates an assistant message referencing a generated
// audio artifact and the display name of the voice that produced it.
func NewAssistantMessage(audioURL, voiceName string) *Message {
	return &Message{
		ID:        generateMessageID(),
		Role:      RoleAssistant,
		AudioURL:  audioURL,
		VoiceName: voiceName,
		Timestamp: time.Now(),
	}
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	return util.TruncateRunes(m.Content, maxLen)
}

// IsEmpty returns true if the message has neither text nor audio.
func (m *Message) IsEmpty() bool {
	return m.Content == "" && m.AudioURL == ""
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateMessageID creates a unique message ID.
func generateMessageID() string {
	return "msg_" + uuid.NewString()
}

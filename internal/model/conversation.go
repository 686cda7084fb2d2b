// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for voices, conversations,
// messages, and users.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/voxchat-tui/internal/util"
)

// TitleMaxRunes is the maximum length of an auto-generated conversation
// title, ellipsis included.
const TitleMaxRunes = 50

// DefaultTitle is shown for conversations with no user message yet.
const DefaultTitle = "New conversation"

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds a chat thread: an ordered, append-only message list
// with identity and timestamps. The title is derived from the first user
// message and is stable once that message exists.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Messages []*Message `json:"messages"`
}

// NewConversation creates a new empty conversation with a generated ID.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        generateConversationID(),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddMessage appends a message to the conversation.
func (c *Conversation) AddMessage(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
	c.RefreshTitle()
}

// SetMessages replaces the message list wholesale, refreshing the title and
// the last-updated timestamp.
func (c *Conversation) SetMessages(msgs []*Message) {
	c.Messages = msgs
	c.UpdatedAt = time.Now()
	c.RefreshTitle()
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// FirstUserMessage returns the first user message, or nil if none.
func (c *Conversation) FirstUserMessage() *Message {
	for _, msg := range c.Messages {
		if msg.Role == RoleUser {
			return msg
		}
	}
	return nil
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// =============================================================================
// TITLE MANAGEMENT
// =============================================================================

// RefreshTitle recomputes the title from the first user message: truncated
// to TitleMaxRunes with an ellipsis when longer, newlines collapsed. With no
// user message the default title is kept.
func (c *Conversation) RefreshTitle() {
	first := c.FirstUserMessage()
	if first == nil {
		c.Title = DefaultTitle
		return
	}

	title := strings.ReplaceAll(first.Content, "\n", " ")
	title = strings.ReplaceAll(title, "\r", "")
	c.Title = util.TruncateRunes(title, TitleMaxRunes)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateConversationID creates a unique conversation ID.
func generateConversationID() string {
	return "conv_" + uuid.NewString()
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines the Bubble Tea message types and commands used by the
// chat view. Commands perform the blocking backend work; messages carry
// results back into Update.
package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/voxchat-tui/internal/generate"
	"github.com/jeranaias/voxchat-tui/internal/store"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// VoicesLoadedMsg reports the result of fetching the voice catalog.
type VoicesLoadedMsg struct {
	Err error
}

// LoginResultMsg reports the result of a sign-in attempt.
type LoginResultMsg struct {
	Err error
}

// GenerationDoneMsg reports the end of a TTS generation, successful or
// not. The store already holds the appended messages and fresh balance.
type GenerationDoneMsg struct {
	Result *generate.Result
	Err    error
}

// SessionRefreshedMsg reports the startup session refresh.
type SessionRefreshedMsg struct {
	Err error
}

// ForcedLogoutMsg is sent from outside the event loop when the backend
// rejected the token; the view drops to the sign-in overlay.
type ForcedLogoutMsg struct{}

// =============================================================================
// COMMANDS
// =============================================================================

// loadVoicesCmd fetches the voice catalog into the store.
func loadVoicesCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		return VoicesLoadedMsg{Err: s.LoadVoices(context.Background())}
	}
}

// loginCmd exchanges credentials for a token and populates the session.
func loginCmd(s *store.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := s.Client().Login(context.Background(), email, password)
		if err != nil {
			return LoginResultMsg{Err: err}
		}
		return LoginResultMsg{Err: s.Login(context.Background(), resp.AccessToken)}
	}
}

// generateCmd runs one generation end to end, polling included.
func generateCmd(wf *generate.Workflow, text string) tea.Cmd {
	return func() tea.Msg {
		result, err := wf.Run(context.Background(), text)
		return GenerationDoneMsg{Result: result, Err: err}
	}
}

// refreshSessionCmd re-validates a persisted session at startup.
func refreshSessionCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		return SessionRefreshedMsg{Err: s.Rehydrate(context.Background())}
	}
}

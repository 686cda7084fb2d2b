// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/voxchat-tui/internal/api"
	"github.com/jeranaias/voxchat-tui/internal/generate"
)

// Update is the Bubble Tea update loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case VoicesLoadedMsg:
		// Load failures are logged in the store; the picker just stays
		// empty until a retry succeeds.
		m.syncFromStore()
		return m, nil

	case SessionRefreshedMsg:
		if m.store.IsAuthenticated() {
			m.overlay = OverlayNone
			m.input.Focus()
		}
		m.syncFromStore()
		return m, nil

	case LoginResultMsg:
		return m.handleLoginResult(msg)

	case GenerationDoneMsg:
		return m.handleGenerationDone(msg)

	case ForcedLogoutMsg:
		m.store.HandleForcedLogout()
		m.loginForm.Reset()
		m.loginForm.SetError("Session expired, sign in again")
		m.overlay = OverlayLogin
		m.syncFromStore()
		return m, nil
	}

	return m, nil
}

// =============================================================================
// RESIZE
// =============================================================================

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	m.header.SetWidth(msg.Width)
	m.statusBar.SetWidth(msg.Width)
	m.errBanner.SetWidth(msg.Width)
	m.voicePicker.SetWidth(min(msg.Width-8, 64))
	m.convPicker.SetWidth(min(msg.Width-8, 64))
	m.loginForm.SetWidth(min(msg.Width-8, 64))
	m.input.Width = msg.Width - 12

	viewportHeight := msg.Height - chromeHeight(m)
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(msg.Width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = viewportHeight
	}
	m.syncFromStore()
	return m, nil
}

// chromeHeight is the vertical space taken by everything except the
// transcript viewport.
func chromeHeight(m *Model) int {
	h := 3 + 3 + 1 // header, input area, status bar
	if m.errBanner.Visible() {
		h += 3
	}
	return h
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	switch m.overlay {
	case OverlayLogin:
		return m.handleLoginKey(msg)
	case OverlayVoices:
		return m.handlePickerKey(msg, m.voicePicker, m.applyVoiceSelection)
	case OverlayChats:
		return m.handlePickerKey(msg, m.convPicker, m.applyConversationSelection)
	}

	switch {
	case key.Matches(msg, m.keyMap.Cancel):
		m.errBanner.Clear()
		return m, nil

	case key.Matches(msg, m.keyMap.Voices):
		m.overlay = OverlayVoices
		return m, nil

	case key.Matches(msg, m.keyMap.Chats):
		m.overlay = OverlayChats
		return m, nil

	case key.Matches(msg, m.keyMap.NewChat):
		m.store.CreateConversation()
		m.syncFromStore()
		return m, nil

	case key.Matches(msg, m.keyMap.DeleteChat):
		if id := m.store.CurrentConversationID(); id != "" {
			m.store.DeleteConversation(id)
			m.syncFromStore()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.SignIn):
		if m.store.IsAuthenticated() {
			m.store.Logout()
			m.syncFromStore()
		}
		m.loginForm.Reset()
		m.overlay = OverlayLogin
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitInput()

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Cancel):
		// Dismissable only when already signed in (switching accounts).
		if m.store.IsAuthenticated() {
			m.overlay = OverlayNone
			m.input.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.NextField):
		m.loginForm.NextField()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		email, password := m.loginForm.Values()
		if email == "" || password == "" {
			m.loginForm.SetError("Email and password are required")
			return m, nil
		}
		m.loginForm.SetError("")
		m.loginForm.SetBusy(true)
		return m, loginCmd(m.store, email, password)
	}

	return m, m.loginForm.Update(msg)
}

func (m *Model) handlePickerKey(msg tea.KeyMsg, picker interface {
	MoveUp()
	MoveDown()
}, apply func() tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Cancel):
		m.overlay = OverlayNone
		return m, nil
	case key.Matches(msg, m.keyMap.Up):
		picker.MoveUp()
		return m, nil
	case key.Matches(msg, m.keyMap.Down):
		picker.MoveDown()
		return m, nil
	case key.Matches(msg, m.keyMap.Submit):
		cmd := apply()
		m.overlay = OverlayNone
		return m, cmd
	}
	return m, nil
}

func (m *Model) applyVoiceSelection() tea.Cmd {
	item := m.voicePicker.Selected()
	if item == nil {
		return nil
	}
	for _, v := range m.store.Voices() {
		if v.ID == item.ID {
			voice := v
			m.store.SelectVoice(&voice)
			break
		}
	}
	m.syncFromStore()
	return nil
}

func (m *Model) applyConversationSelection() tea.Cmd {
	item := m.convPicker.Selected()
	if item == nil {
		return nil
	}
	m.store.SelectConversation(item.ID)
	m.syncFromStore()
	return nil
}

// =============================================================================
// SUBMISSION
// =============================================================================

func (m *Model) submitInput() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	text := m.input.Value()
	if generate.Cost(text) == 0 {
		return m, nil
	}
	if !m.store.IsAuthenticated() {
		m.loginForm.Reset()
		m.overlay = OverlayLogin
		return m, nil
	}

	m.store.EnsureConversation()
	m.input.SetValue("")
	m.errBanner.Clear()
	m.generating = true
	m.syncFromStore()
	return m, generateCmd(m.workflow, text)
}

// =============================================================================
// RESULT HANDLING
// =============================================================================

func (m *Model) handleLoginResult(msg LoginResultMsg) (tea.Model, tea.Cmd) {
	m.loginForm.SetBusy(false)
	if msg.Err != nil {
		m.loginForm.SetError(api.Detail(msg.Err, "Sign-in failed, check your credentials"))
		return m, nil
	}
	m.loginForm.Reset()
	m.overlay = OverlayNone
	m.input.Focus()
	m.syncFromStore()
	return m, nil
}

func (m *Model) handleGenerationDone(msg GenerationDoneMsg) (tea.Model, tea.Cmd) {
	m.generating = false
	m.syncFromStore()

	if msg.Err == nil {
		return m, nil
	}

	switch {
	case errors.Is(msg.Err, api.ErrInsufficientCredits):
		m.errBanner.Show("Not enough credits", api.Detail(msg.Err, "Generation costs one credit per character"))
	case errors.Is(msg.Err, api.ErrUnauthorized):
		// The forced-logout path resets the view; nothing extra here.
	case errors.Is(msg.Err, generate.ErrTaskFailed):
		m.errBanner.Show("Generation failed", msg.Err.Error())
	default:
		m.errBanner.Show("Could not submit", msg.Err.Error())
	}
	return m, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

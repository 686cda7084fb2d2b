// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/voxchat-tui/internal/config"
	"github.com/jeranaias/voxchat-tui/internal/generate"
	"github.com/jeranaias/voxchat-tui/internal/store"
	"github.com/jeranaias/voxchat-tui/internal/ui/components"
	"github.com/jeranaias/voxchat-tui/internal/ui/styles"
)

// =============================================================================
// OVERLAY STATE
// =============================================================================

// Overlay identifies which modal surface, if any, is on top of the chat.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayLogin
	OverlayVoices
	OverlayChats
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options carries the configurable rendering and pacing knobs.
type Options struct {
	// ShowTimestamps toggles per-message relative times in the transcript.
	ShowTimestamps bool

	// CompactMode tightens the transcript to single-line message spacing.
	CompactMode bool

	// PollInterval paces the generation status polls. Zero keeps the
	// workflow default.
	PollInterval time.Duration
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{ShowTimestamps: true}
}

// OptionsFromConfig maps the loaded configuration onto chat options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		ShowTimestamps: cfg.UI.ShowTimestamps,
		CompactMode:    cfg.UI.CompactMode,
		PollInterval:   cfg.PollInterval(),
	}
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the voxchat view.
type Model struct {
	// Session state
	store    *store.Store
	workflow *generate.Workflow

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int
	ready  bool

	// Which modal is open
	overlay Overlay

	// UI components
	viewport    viewport.Model
	input       textinput.Model
	spinner     spinner.Model
	header      *components.Header
	statusBar   *components.StatusBar
	errBanner   *components.ErrorBanner
	loginForm   *components.LoginForm
	voicePicker *components.Picker
	convPicker  *components.Picker

	// Key bindings
	keyMap KeyMap

	// Rendering and pacing knobs
	opts Options

	// In-flight generation flag mirrored from the store for rendering
	generating bool
}

// New creates the chat model bound to the session store.
func New(s *store.Store, theme *styles.Theme, opts Options) *Model {
	input := textinput.New()
	input.Placeholder = "Type text to speak..."
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	wf := generate.New(s)
	if opts.PollInterval > 0 {
		wf = wf.WithPollInterval(opts.PollInterval)
	}

	m := &Model{
		store:       s,
		workflow:    wf,
		theme:       theme,
		input:       input,
		spinner:     sp,
		header:      components.NewHeader(theme),
		statusBar:   components.NewStatusBar(theme),
		errBanner:   components.NewErrorBanner(theme),
		loginForm:   components.NewLoginForm(theme),
		voicePicker: components.NewPicker("Pick a voice", theme),
		convPicker:  components.NewPicker("Conversations", theme),
		keyMap:      DefaultKeyMap(),
		opts:        opts,
	}

	if !s.IsAuthenticated() {
		m.overlay = OverlayLogin
	}
	return m
}

// Init starts the session refresh, the voice catalog fetch, and the
// cursor blink.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		refreshSessionCmd(m.store),
		loadVoicesCmd(m.store),
		textinput.Blink,
		m.spinner.Tick,
	)
}

// syncFromStore refreshes the render-side copies of store state.
func (m *Model) syncFromStore() {
	if user := m.store.User(); user != nil {
		m.header.SetUser(user.Name, user.Initial())
	} else {
		m.header.SetUser("", "")
	}
	m.statusBar.SetVoice(m.store.SelectedVoice())
	m.statusBar.SetCredits(m.store.Credits())
	m.voicePicker.SetItems(components.VoiceItems(m.store.Voices()))
	m.convPicker.SetItems(components.ConversationItems(m.store.Conversations()))
	if v := m.store.SelectedVoice(); v != nil {
		m.voicePicker.SelectID(v.ID)
	}
	if id := m.store.CurrentConversationID(); id != "" {
		m.convPicker.SelectID(id)
	}
	m.refreshTranscript()
}

// refreshTranscript re-renders the viewport content and follows the tail.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

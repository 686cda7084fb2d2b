// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/jeranaias/voxchat-tui/internal/api"
	"github.com/jeranaias/voxchat-tui/internal/model"
	"github.com/jeranaias/voxchat-tui/internal/storage"
)

// =============================================================================
// STORE
// =============================================================================

// Store is the mutex-guarded session state. It is safe for concurrent use;
// every mutating operation persists the durable subset before returning.
type Store struct {
	mu sync.Mutex

	client  *api.Client
	tokens  api.TokenStore
	persist *storage.SnapshotStore

	voices        []model.Voice
	selectedVoice *model.Voice
	credits       int
	user          *model.User

	conversations []*model.Conversation
	currentID     string

	generating bool
}

// New creates a store wired to the backend client, the token store, and
// the snapshot store. persist may be nil in tests that do not care about
// persistence.
func New(client *api.Client, tokens api.TokenStore, persist *storage.SnapshotStore) *Store {
	return &Store{
		client:  client,
		tokens:  tokens,
		persist: persist,
	}
}

// save persists the durable subset. Callers must hold s.mu. Persistence
// failures are logged, not propagated; losing a snapshot write must not
// fail the user-visible operation that triggered it.
func (s *Store) save() {
	if s.persist == nil {
		return
	}
	snap := &storage.Snapshot{
		Conversations:         s.conversations,
		CurrentConversationID: s.currentID,
		SelectedVoice:         s.selectedVoice,
		User:                  s.user,
	}
	if err := s.persist.Save(snap); err != nil {
		log.Printf("store: failed to persist state: %v", err)
	}
}

// =============================================================================
// STARTUP
// =============================================================================

// Rehydrate loads persisted state and, when a user is present, refreshes
// the profile and credit balance from the backend. A refresh failure is
// treated as an implicit logout: the token and user are cleared but the
// conversation history survives.
func (s *Store) Rehydrate(ctx context.Context) error {
	if s.persist != nil {
		snap, err := s.persist.Load()
		if err != nil {
			return fmt.Errorf("failed to load persisted state: %w", err)
		}
		s.mu.Lock()
		s.conversations = snap.Conversations
		s.currentID = snap.CurrentConversationID
		s.selectedVoice = snap.SelectedVoice
		s.user = snap.User
		s.sortConversations()
		s.mu.Unlock()
	}

	s.mu.Lock()
	hasUser := s.user != nil
	s.mu.Unlock()

	if hasUser {
		if err := s.RefreshUser(ctx); err != nil {
			log.Printf("store: session refresh failed, signed out: %v", err)
		}
	}
	return nil
}

// =============================================================================
// VOICES
// =============================================================================

// LoadVoices fetches the voice catalog. On success the list is replaced
// and, when nothing is selected yet, the first voice becomes the
// selection. On failure existing state is untouched.
func (s *Store) LoadVoices(ctx context.Context) error {
	voices, err := s.client.Voices(ctx)
	if err != nil {
		log.Printf("store: failed to load voices: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.voices = voices
	if s.selectedVoice == nil && len(voices) > 0 {
		v := voices[0]
		s.selectedVoice = &v
		s.save()
	}
	return nil
}

// Voices returns the cached voice catalog.
func (s *Store) Voices() []model.Voice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Voice, len(s.voices))
	copy(out, s.voices)
	return out
}

// SelectVoice replaces the selected voice. nil clears the selection.
func (s *Store) SelectVoice(v *model.Voice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedVoice = v
	s.save()
}

// SelectedVoice returns the current voice selection, or nil.
func (s *Store) SelectedVoice() *model.Voice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedVoice
}

// =============================================================================
// CREDITS
// =============================================================================

// Credits returns the cached credit balance.
func (s *Store) Credits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credits
}

// SetCredits replaces the cached balance.
func (s *Store) SetCredits(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credits = n
}

// DeductCredits subtracts n from the cached balance, flooring at zero.
func (s *Store) DeductCredits(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credits -= n
	if s.credits < 0 {
		s.credits = 0
	}
}

// AddCredits adds n to the cached balance.
func (s *Store) AddCredits(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credits += n
}

// =============================================================================
// AUTH
// =============================================================================

// Login persists the token, then fetches the user profile and balance.
// When either fetch fails the token is removed again and the error is
// returned; the store ends up signed out, exactly as before the call.
func (s *Store) Login(ctx context.Context, token string) error {
	if err := s.tokens.Set(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	if err := s.fetchUser(ctx); err != nil {
		if clearErr := s.tokens.Clear(); clearErr != nil {
			log.Printf("store: failed to clear token after login failure: %v", clearErr)
		}
		return err
	}
	return nil
}

// Logout removes the token, clears the user, and zeroes credits. The
// conversation history is left intact.
func (s *Store) Logout() {
	if err := s.tokens.Clear(); err != nil {
		log.Printf("store: failed to clear token: %v", err)
	}
	s.clearSession()
}

// HandleForcedLogout resets session state after the client observed a 401
// and already cleared the token. Wired to api.Client.OnLogout.
func (s *Store) HandleForcedLogout() {
	s.clearSession()
}

func (s *Store) clearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.credits = 0
	s.save()
}

// RefreshUser re-fetches the profile and balance with the stored token.
// A failure clears both the token and the user (implicit logout).
func (s *Store) RefreshUser(ctx context.Context) error {
	if s.tokens.Token() == "" {
		s.clearSession()
		return nil
	}

	if err := s.fetchUser(ctx); err != nil {
		if clearErr := s.tokens.Clear(); clearErr != nil {
			log.Printf("store: failed to clear token: %v", clearErr)
		}
		s.clearSession()
		return err
	}
	return nil
}

// fetchUser populates the user and credits from /auth/me and
// /credits/balance.
func (s *Store) fetchUser(ctx context.Context) error {
	profile, err := s.client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	balance, err := s.client.Balance(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = model.NewUser(profile.ID, profile.Email, profile.Plan, profile.Avatar)
	s.credits = balance.Balance
	s.save()
	return nil
}

// RefreshCredits re-fetches only the balance from the backend.
func (s *Store) RefreshCredits(ctx context.Context) error {
	balance, err := s.client.Balance(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}
	s.SetCredits(balance.Balance)
	return nil
}

// SetUser replaces the signed-in user directly. Login and RefreshUser are
// the usual paths; this exists for callers that already hold a profile.
func (s *Store) SetUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.save()
}

// User returns the signed-in user, or nil.
func (s *Store) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

// =============================================================================
// CONVERSATIONS
// =============================================================================

// sortConversations orders by UpdatedAt descending. Callers hold s.mu.
func (s *Store) sortConversations() {
	sort.SliceStable(s.conversations, func(i, j int) bool {
		return s.conversations[i].UpdatedAt.After(s.conversations[j].UpdatedAt)
	})
}

// CreateConversation inserts a new empty conversation at the front of the
// list, makes it active, and returns its id.
func (s *Store) CreateConversation() string {
	conv := model.NewConversation()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = append([]*model.Conversation{conv}, s.conversations...)
	s.currentID = conv.ID
	s.save()
	return conv.ID
}

// SelectConversation sets the active conversation id. Existence is not
// validated here; selecting an unknown id is a caller error.
func (s *Store) SelectConversation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = id
	s.save()
}

// UpdateConversationMessages replaces the message list of the named
// conversation, recomputes its title, bumps its timestamp, and re-sorts
// the collection. Unknown ids are ignored.
func (s *Store) UpdateConversationMessages(id string, messages []*model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conv := range s.conversations {
		if conv.ID == id {
			conv.SetMessages(messages)
			s.sortConversations()
			s.save()
			return
		}
	}
}

// AppendMessage appends one message to the named conversation and re-sorts.
func (s *Store) AppendMessage(id string, msg *model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conv := range s.conversations {
		if conv.ID == id {
			conv.AddMessage(msg)
			s.sortConversations()
			s.save()
			return
		}
	}
}

// DeleteConversation removes the conversation. When the active one is
// deleted, the most recently updated remaining conversation becomes
// active, or none if the list is empty.
func (s *Store) DeleteConversation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.conversations[:0]
	found := false
	for _, conv := range s.conversations {
		if conv.ID == id {
			found = true
			continue
		}
		kept = append(kept, conv)
	}
	if !found {
		return
	}
	s.conversations = kept

	if s.currentID == id {
		s.currentID = ""
		if len(s.conversations) > 0 {
			// List is kept sorted by UpdatedAt descending.
			s.currentID = s.conversations[0].ID
		}
	}
	s.save()
}

// CurrentConversation returns the active conversation, or nil.
func (s *Store) CurrentConversation() *model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentID == "" {
		return nil
	}
	for _, conv := range s.conversations {
		if conv.ID == s.currentID {
			return conv
		}
	}
	return nil
}

// CurrentConversationID returns the active conversation id, or "".
func (s *Store) CurrentConversationID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// Conversations returns the conversation list, most recently updated
// first.
func (s *Store) Conversations() []*model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// EnsureConversation returns the active conversation id, creating a fresh
// conversation when none is active.
func (s *Store) EnsureConversation() string {
	s.mu.Lock()
	if s.currentID != "" {
		for _, conv := range s.conversations {
			if conv.ID == s.currentID {
				id := s.currentID
				s.mu.Unlock()
				return id
			}
		}
	}
	s.mu.Unlock()
	return s.CreateConversation()
}

// =============================================================================
// LOADING FLAGS
// =============================================================================

// SetGenerating marks whether a TTS task is in flight.
func (s *Store) SetGenerating(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = v
}

// Generating reports whether a TTS task is in flight.
func (s *Store) Generating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating
}

// Client exposes the backend client for workflow code built on the store.
func (s *Store) Client() *api.Client {
	return s.client
}

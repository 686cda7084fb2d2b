// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeranaias/voxchat-tui/internal/api"
	"github.com/jeranaias/voxchat-tui/internal/model"
	"github.com/jeranaias/voxchat-tui/internal/storage"
)

type memTokens struct {
	token string
}

func (m *memTokens) Token() string      { return m.token }
func (m *memTokens) Set(t string) error { m.token = t; return nil }
func (m *memTokens) Clear() error       { m.token = ""; return nil }

// fakeBackend serves the minimal endpoint set the store touches.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Not authenticated"}`))
			return
		}
		w.Write([]byte(`{"id": "u1", "email": "alice@example.com", "plan": "Free"}`))
	})
	mux.HandleFunc("/credits/balance", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"balance": 500, "user_id": "u1"}`))
	})
	mux.HandleFunc("/voices/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": "v1", "name": "Marcus", "category": "male"},
			{"id": "v2", "name": "Elena", "category": "female"}
		]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestStore(t *testing.T) (*Store, *memTokens) {
	t.Helper()
	srv := fakeBackend(t)
	tokens := &memTokens{}
	client := api.NewClient(srv.URL, tokens)
	persist, err := storage.NewSnapshotStoreWithPath(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("snapshot store: %v", err)
	}
	return New(client, tokens, persist), tokens
}

// =============================================================================
// CREDITS
// =============================================================================

func TestDeductCreditsFloorsAtZero(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetCredits(10)
	s.DeductCredits(25)
	if got := s.Credits(); got != 0 {
		t.Errorf("Credits = %d, want 0", got)
	}
	s.AddCredits(7)
	if got := s.Credits(); got != 7 {
		t.Errorf("Credits = %d, want 7", got)
	}
}

// =============================================================================
// CONVERSATIONS
// =============================================================================

func TestCreateConversationUniqueAndActive(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	var last string
	for i := 0; i < 20; i++ {
		id := s.CreateConversation()
		if seen[id] {
			t.Fatalf("duplicate conversation id %q", id)
		}
		seen[id] = true
		last = id
	}
	if s.CurrentConversationID() != last {
		t.Errorf("active id = %q, want last created %q", s.CurrentConversationID(), last)
	}
	if len(s.Conversations()) != 20 {
		t.Errorf("got %d conversations, want 20", len(s.Conversations()))
	}
}

func TestDeleteConversationReassignsActive(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.CreateConversation()
	second := s.CreateConversation()
	third := s.CreateConversation()

	// Touch the first so it becomes the most recently updated.
	s.UpdateConversationMessages(first, []*model.Message{model.NewUserMessage("hello")})

	s.SelectConversation(third)
	s.DeleteConversation(third)
	if got := s.CurrentConversationID(); got != first {
		t.Errorf("active after delete = %q, want most recently updated %q", got, first)
	}

	// Deleting an inactive conversation leaves the active id alone.
	s.DeleteConversation(second)
	if got := s.CurrentConversationID(); got != first {
		t.Errorf("active = %q, want %q", got, first)
	}

	s.DeleteConversation(first)
	if got := s.CurrentConversationID(); got != "" {
		t.Errorf("active after deleting all = %q, want empty", got)
	}
	if s.CurrentConversation() != nil {
		t.Error("CurrentConversation should be nil with no conversations")
	}
}

func TestUpdateConversationMessagesRetitlesAndResorts(t *testing.T) {
	s, _ := newTestStore(t)

	older := s.CreateConversation()
	time.Sleep(5 * time.Millisecond)
	newer := s.CreateConversation()

	convs := s.Conversations()
	if convs[0].ID != newer {
		t.Fatalf("expected newest first, got %q", convs[0].ID)
	}

	s.UpdateConversationMessages(older, []*model.Message{
		model.NewUserMessage("Please read this paragraph aloud"),
	})

	convs = s.Conversations()
	if convs[0].ID != older {
		t.Errorf("updated conversation should sort first, got %q", convs[0].ID)
	}
	if convs[0].Title != "Please read this paragraph aloud" {
		t.Errorf("Title = %q", convs[0].Title)
	}
}

func TestEnsureConversation(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.EnsureConversation()
	if id == "" {
		t.Fatal("EnsureConversation returned empty id")
	}
	if s.EnsureConversation() != id {
		t.Error("EnsureConversation created a second conversation while one is active")
	}

	s.DeleteConversation(id)
	if s.EnsureConversation() == id {
		t.Error("EnsureConversation reused a deleted id")
	}
}

// =============================================================================
// VOICES
// =============================================================================

func TestLoadVoicesDefaultsSelection(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.LoadVoices(context.Background()); err != nil {
		t.Fatalf("LoadVoices failed: %v", err)
	}
	if len(s.Voices()) != 2 {
		t.Fatalf("got %d voices", len(s.Voices()))
	}
	sel := s.SelectedVoice()
	if sel == nil || sel.ID != "v1" {
		t.Errorf("SelectedVoice = %+v, want first voice", sel)
	}

	// An existing selection is not overwritten by a reload.
	v2 := s.Voices()[1]
	s.SelectVoice(&v2)
	if err := s.LoadVoices(context.Background()); err != nil {
		t.Fatalf("LoadVoices failed: %v", err)
	}
	if s.SelectedVoice().ID != "v2" {
		t.Errorf("reload overwrote selection: %+v", s.SelectedVoice())
	}
}

// =============================================================================
// AUTH
// =============================================================================

func TestLoginPopulatesUserAndCredits(t *testing.T) {
	s, tokens := newTestStore(t)

	if err := s.Login(context.Background(), "good-token"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tokens.Token() != "good-token" {
		t.Errorf("token = %q", tokens.Token())
	}
	user := s.User()
	if user == nil || user.Email != "alice@example.com" {
		t.Fatalf("User = %+v", user)
	}
	if user.Name != "alice" {
		t.Errorf("Name = %q, want local-part alice", user.Name)
	}
	if s.Credits() != 500 {
		t.Errorf("Credits = %d, want 500", s.Credits())
	}
}

func TestLoginFailureRemovesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "boom"}`))
	}))
	defer srv.Close()

	tokens := &memTokens{}
	s := New(api.NewClient(srv.URL, tokens), tokens, nil)

	if err := s.Login(context.Background(), "some-token"); err == nil {
		t.Fatal("expected login error")
	}
	if tokens.Token() != "" {
		t.Errorf("token %q not removed after failed login", tokens.Token())
	}
	if s.User() != nil {
		t.Error("user set after failed login")
	}
}

func TestLogoutKeepsConversations(t *testing.T) {
	s, tokens := newTestStore(t)

	if err := s.Login(context.Background(), "good-token"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	id := s.CreateConversation()

	s.Logout()
	if tokens.Token() != "" {
		t.Error("token survives logout")
	}
	if s.User() != nil {
		t.Error("user survives logout")
	}
	if s.Credits() != 0 {
		t.Errorf("Credits = %d after logout", s.Credits())
	}
	if len(s.Conversations()) != 1 || s.Conversations()[0].ID != id {
		t.Error("conversations must survive logout")
	}
}

func TestRefreshUserFailureIsImplicitLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}))
	defer srv.Close()

	tokens := &memTokens{token: "stale"}
	s := New(api.NewClient(srv.URL, tokens), tokens, nil)

	if err := s.RefreshUser(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if tokens.Token() != "" {
		t.Errorf("token %q not cleared", tokens.Token())
	}
	if s.User() != nil {
		t.Error("user not cleared")
	}
}

// =============================================================================
// REHYDRATION
// =============================================================================

func TestRehydrateRestoresStateAndRefreshesCredits(t *testing.T) {
	srv := fakeBackend(t)
	path := filepath.Join(t.TempDir(), "state.json")

	// First session: sign in, create state, let it persist.
	{
		tokens := &memTokens{}
		persist, err := storage.NewSnapshotStoreWithPath(path)
		if err != nil {
			t.Fatalf("snapshot store: %v", err)
		}
		s := New(api.NewClient(srv.URL, tokens), tokens, persist)
		if err := s.Login(context.Background(), "good-token"); err != nil {
			t.Fatalf("Login: %v", err)
		}
		id := s.CreateConversation()
		s.UpdateConversationMessages(id, []*model.Message{model.NewUserMessage("persist me")})
		v := model.Voice{ID: "v2", Name: "Elena", Category: model.CategoryFemale}
		s.SelectVoice(&v)
	}

	// Second session against the same snapshot.
	tokens := &memTokens{token: "good-token"}
	persist, err := storage.NewSnapshotStoreWithPath(path)
	if err != nil {
		t.Fatalf("snapshot store: %v", err)
	}
	s := New(api.NewClient(srv.URL, tokens), tokens, persist)
	if err := s.Rehydrate(context.Background()); err != nil {
		t.Fatalf("Rehydrate failed: %v", err)
	}

	convs := s.Conversations()
	if len(convs) != 1 {
		t.Fatalf("got %d conversations after rehydrate", len(convs))
	}
	if convs[0].Title != "persist me" {
		t.Errorf("Title = %q", convs[0].Title)
	}
	if s.CurrentConversationID() != convs[0].ID {
		t.Error("active conversation id not restored")
	}
	if sel := s.SelectedVoice(); sel == nil || sel.ID != "v2" {
		t.Errorf("SelectedVoice = %+v", sel)
	}
	// Credits are not persisted; they come fresh from the backend.
	if s.Credits() != 500 {
		t.Errorf("Credits = %d, want refreshed 500", s.Credits())
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// memTokens is an in-memory TokenStore for tests.
type memTokens struct {
	token string
}

func (m *memTokens) Token() string        { return m.token }
func (m *memTokens) Set(t string) error   { m.token = t; return nil }
func (m *memTokens) Clear() error         { m.token = ""; return nil }

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *memTokens) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := &memTokens{token: token}
	return NewClient(srv.URL, tokens).WithHTTPClient(srv.Client()), tokens
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"balance": 42, "user_id": "u1"}`))
	}), "secret-token")

	balance, err := client.Balance(context.Background())
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret-token")
	}
	if balance.Balance != 42 {
		t.Errorf("Balance = %d, want 42", balance.Balance)
	}
}

func TestClientNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}), "")

	if _, err := client.Voices(context.Background()); err != nil {
		t.Fatalf("Voices failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClientUnauthorizedClearsTokenAndNotifies(t *testing.T) {
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}), "stale-token")

	var loggedOut bool
	client.OnLogout(func() { loggedOut = true })

	_, err := client.Me(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if tokens.Token() != "" {
		t.Errorf("token not cleared after 401, got %q", tokens.Token())
	}
	if !loggedOut {
		t.Error("logout listener not invoked after 401")
	}
}

func TestClientInsufficientCredits(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"detail": "Insufficient credits. Required: 120"}`))
	}), "tok")

	_, err := client.Generate(context.Background(), "hello", "voice-1")
	if !errors.Is(err, ErrInsufficientCredits) {
		t.Fatalf("err = %v, want ErrInsufficientCredits", err)
	}
	if got := Detail(err, "fallback"); got != "Insufficient credits. Required: 120" {
		t.Errorf("Detail = %q", got)
	}
}

func TestClientGenericAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Text must not be empty"}`))
	}), "tok")

	_, err := client.Generate(context.Background(), "", "voice-1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
	if apiErr.Detail != "Text must not be empty" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
}

func TestClientLoginFormEncoded(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if r.PostForm.Get("username") != "user@example.com" {
			t.Errorf("username = %q", r.PostForm.Get("username"))
		}
		if r.PostForm.Get("password") != "hunter2" {
			t.Errorf("password = %q", r.PostForm.Get("password"))
		}
		w.Write([]byte(`{"access_token": "fresh-token", "token_type": "bearer"}`))
	}), "")

	resp, err := client.Login(context.Background(), "user@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.AccessToken != "fresh-token" {
		t.Errorf("AccessToken = %q", resp.AccessToken)
	}
}

func TestClientLoginDoesNotStoreToken(t *testing.T) {
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "fresh-token", "token_type": "bearer"}`))
	}), "")

	if _, err := client.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tokens.Token() != "" {
		t.Errorf("Login persisted token %q; persistence is the store's job", tokens.Token())
	}
}

func TestClientVoices(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voices/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": "v1", "name": "Marcus", "category": "male", "preview_url": "/static/previews/v1.wav"},
			{"id": "v2", "name": "Elena", "category": "female", "preview_url": "/static/previews/v2.wav"}
		]`))
	}), "tok")

	voices, err := client.Voices(context.Background())
	if err != nil {
		t.Fatalf("Voices failed: %v", err)
	}
	if len(voices) != 2 {
		t.Fatalf("got %d voices, want 2", len(voices))
	}
	if voices[0].Name != "Marcus" || voices[1].ID != "v2" {
		t.Errorf("unexpected voices: %+v", voices)
	}
}

func TestClientGenerateAndStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tts/generate":
			w.Write([]byte(`{"task_id": "t-123", "status": "queued", "cost": 11}`))
		case "/tts/status/t-123":
			w.Write([]byte(`{"task_id": "t-123", "status": "completed", "output_url": "/static/outputs/t-123.wav"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}), "tok")

	gen, err := client.Generate(context.Background(), "hello world", "v1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if gen.TaskID != "t-123" || gen.Status != TaskQueued {
		t.Errorf("unexpected generate response: %+v", gen)
	}

	status, err := client.TaskStatus(context.Background(), gen.TaskID)
	if err != nil {
		t.Fatalf("TaskStatus failed: %v", err)
	}
	if status.Status != TaskCompleted {
		t.Errorf("Status = %q, want completed", status.Status)
	}
	if !status.Status.IsTerminal() {
		t.Error("completed should be terminal")
	}
}

func TestClientAudioURL(t *testing.T) {
	client := NewClient("http://backend:33000", &memTokens{})
	tests := []struct {
		in, want string
	}{
		{"/static/outputs/t.wav", "http://backend:33000/static/outputs/t.wav"},
		{"https://cdn.example.com/t.wav", "https://cdn.example.com/t.wav"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := client.AudioURL(tt.in); got != tt.want {
			t.Errorf("AudioURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

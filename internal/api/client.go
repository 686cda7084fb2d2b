// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the voxchat backend.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/voxchat-tui/internal/model"
)

// Configuration constants for the backend API.
const (
	// DefaultBaseURL is the direct backend address used when no proxy or
	// config override is present.
	DefaultBaseURL = "http://localhost:33000"

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit

	userAgent = "voxchat/0.1.0"
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP client with connection pooling for all backend requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
	Timeout: DefaultTimeout,
}

// =============================================================================
// TOKEN STORE
// =============================================================================

// TokenStore abstracts where the bearer token lives. The file-backed
// implementation is in the storage package; tests supply in-memory stores.
type TokenStore interface {
	// Token returns the current token, or "" when signed out.
	Token() string

	// Set persists a new token.
	Set(token string) error

	// Clear removes the stored token.
	Clear() error
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the voxchat backend. Every request carries the bearer
// token from the token store when one is present; any 401 response clears
// the token and notifies logout listeners exactly once per broadcast.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore

	mu              sync.Mutex
	logoutListeners []func()
}

// NewClient creates a backend client with the given base URL and token
// store. An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, tokens TokenStore) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		tokens:     tokens,
	}
}

// WithTimeout sets the request timeout on a dedicated HTTP client.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	transport := sharedHTTPClient.Transport
	c.httpClient = &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
	return c
}

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsAuthenticated returns true if a bearer token is stored.
func (c *Client) IsAuthenticated() bool {
	return c.tokens != nil && c.tokens.Token() != ""
}

// OnLogout registers a listener invoked when a 401 response forces a
// logout. Components use this to reset their own state (dropping the user
// from the store, reopening the login view).
func (c *Client) OnLogout(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logoutListeners = append(c.logoutListeners, fn)
}

// broadcastLogout clears the stored token and notifies listeners.
func (c *Client) broadcastLogout() {
	if c.tokens != nil {
		if err := c.tokens.Clear(); err != nil {
			log.Printf("api: failed to clear token: %v", err)
		}
	}

	c.mu.Lock()
	listeners := make([]func(), len(c.logoutListeners))
	copy(listeners, c.logoutListeners)
	c.mu.Unlock()

	// Listeners run outside the lock; they may call back into the client.
	for _, fn := range listeners {
		fn()
	}
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// logRequest logs an API request without exposing sensitive data.
// Headers (auth) and bodies (user text) are never logged.
func (c *Client) logRequest(req *http.Request) {
	log.Printf("API Request: %s %s", req.Method, req.URL.Path)
}

// logResponse logs the status code and duration, never the body.
func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("API Response: %d %s (%v)", resp.StatusCode, resp.Status, duration)
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// do executes one request against the backend: token attachment, error
// mapping, limited body read, and JSON decoding into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logRequest(req)
	start := time.Now()
	resp, err := c.httpClient.Do(req)

	// SECURITY: Drop the Authorization header immediately after the request
	// so the token cannot leak through later logging of the request object.
	req.Header.Del("Authorization")

	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(start))

	respBody, err := readResponse(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return c.handleErrorResponse(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// doJSON marshals body as JSON and executes the request.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, reader, "application/json", out)
}

// errorDetail is the backend's error envelope: {"detail": "..."}.
type errorDetail struct {
	Detail string `json:"detail"`
}

// handleErrorResponse converts HTTP error responses to typed Go errors.
// A 401 triggers the logout broadcast before returning.
func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	var envelope errorDetail
	_ = json.Unmarshal(body, &envelope)
	detail := envelope.Detail

	switch statusCode {
	case http.StatusUnauthorized:
		c.broadcastLogout()
		if detail != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
		}
		return ErrUnauthorized
	case http.StatusPaymentRequired:
		if detail != "" {
			return fmt.Errorf("%w: %s", ErrInsufficientCredits, detail)
		}
		return ErrInsufficientCredits
	case http.StatusNotFound:
		if detail != "" {
			return fmt.Errorf("%w: %s", ErrNotFound, detail)
		}
		return ErrNotFound
	default:
		if detail == "" {
			detail = strings.TrimSpace(string(body))
		}
		return &APIError{Status: statusCode, Detail: detail}
	}
}

// =============================================================================
// AUTH ENDPOINTS
// =============================================================================

// registerRequest is the wire body of POST /auth/register.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns its profile.
func (c *Client) Register(ctx context.Context, email, password string) (*UserProfile, error) {
	var profile UserProfile
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", registerRequest{Email: email, Password: password}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Login exchanges credentials for an access token. The backend follows the
// OAuth2 password flow, so the body is form-encoded with the email in the
// username field. The token is returned to the caller, not stored; the
// store's Login operation decides whether to persist it.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var loginResp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &loginResp)
	if err != nil {
		return nil, err
	}
	return &loginResp, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, "", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Balance fetches the authenticated user's credit balance.
func (c *Client) Balance(ctx context.Context) (*BalanceResponse, error) {
	var balance BalanceResponse
	if err := c.do(ctx, http.MethodGet, "/credits/balance", nil, "", &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// =============================================================================
// VOICE CATALOG
// =============================================================================

// Voices fetches the voice catalog.
func (c *Client) Voices(ctx context.Context) ([]model.Voice, error) {
	var voices []model.Voice
	if err := c.do(ctx, http.MethodGet, "/voices/", nil, "", &voices); err != nil {
		return nil, err
	}
	return voices, nil
}

// =============================================================================
// TTS TASKS
// =============================================================================

// generateRequest is the wire body of POST /tts/generate.
type generateRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
}

// Generate submits a TTS generation task and returns its identifier along
// with the charged cost.
func (c *Client) Generate(ctx context.Context, text, voiceID string) (*GenerateResponse, error) {
	var gen GenerateResponse
	err := c.doJSON(ctx, http.MethodPost, "/tts/generate", generateRequest{Text: text, VoiceID: voiceID}, &gen)
	if err != nil {
		return nil, err
	}
	return &gen, nil
}

// TaskStatus polls the status of a generation task.
func (c *Client) TaskStatus(ctx context.Context, taskID string) (*TaskStatusResponse, error) {
	var status TaskStatusResponse
	if err := c.do(ctx, http.MethodGet, "/tts/status/"+url.PathEscape(taskID), nil, "", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// History lists the authenticated user's recent generation tasks.
func (c *Client) History(ctx context.Context, limit int) ([]TaskHistoryItem, error) {
	path := "/tts/history"
	if limit > 0 {
		path += "?limit=" + url.QueryEscape(fmt.Sprintf("%d", limit))
	}
	var items []TaskHistoryItem
	if err := c.do(ctx, http.MethodGet, path, nil, "", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AudioURL resolves a backend-relative output location (e.g.
// "/static/outputs/task.wav") against the base URL for playback or download.
func (c *Client) AudioURL(outputURL string) string {
	if outputURL == "" || strings.Contains(outputURL, "://") {
		return outputURL
	}
	return c.baseURL + outputURL
}

// =============================================================================
// FEEDBACK
// =============================================================================

// feedbackRequest is the wire body of POST /feedback.
type feedbackRequest struct {
	Message string `json:"message"`
	Contact string `json:"contact,omitempty"`
}

// SubmitFeedback sends a feedback message as the authenticated user.
func (c *Client) SubmitFeedback(ctx context.Context, message, contact string) (*FeedbackResponse, error) {
	var fb FeedbackResponse
	err := c.doJSON(ctx, http.MethodPost, "/feedback", feedbackRequest{Message: message, Contact: contact}, &fb)
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

// =============================================================================
// MONITORING
// =============================================================================

// SystemStatus fetches backend host resource usage.
func (c *Client) SystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.do(ctx, http.MethodGet, "/monitor/system", nil, "", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ServiceStatus fetches backend service health flags.
func (c *Client) ServiceStatus(ctx context.Context) (*ServiceStatus, error) {
	var status ServiceStatus
	if err := c.do(ctx, http.MethodGet, "/monitor/services", nil, "", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"github.com/jeranaias/voxchat-tui/internal/api"
	"github.com/jeranaias/voxchat-tui/internal/model"
	"github.com/jeranaias/voxchat-tui/internal/store"
)

// DefaultPollInterval is the delay between task status polls.
const DefaultPollInterval = 1 * time.Second

// Precondition errors. The UI maps these to user-facing messages.
var (
	ErrEmptyText       = errors.New("text must not be empty")
	ErrNoVoiceSelected = errors.New("no voice selected")
	ErrNoConversation  = errors.New("no active conversation")
	ErrTaskFailed      = errors.New("generation task failed")
)

// Cost returns the credit cost of generating the given text: one credit
// per character of the trimmed input, counted in runes.
func Cost(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text))
}

// Result describes a completed generation.
type Result struct {
	TaskID    string
	AudioURL  string
	VoiceName string
	Cost      int
}

// Workflow orchestrates TTS generation against the session store.
type Workflow struct {
	store        *store.Store
	client       *api.Client
	pollInterval time.Duration
}

// New creates a workflow with the default poll interval.
func New(s *store.Store) *Workflow {
	return &Workflow{
		store:        s,
		client:       s.Client(),
		pollInterval: DefaultPollInterval,
	}
}

// WithPollInterval overrides the poll interval (tests use a short one).
func (w *Workflow) WithPollInterval(d time.Duration) *Workflow {
	w.pollInterval = d
	return w
}

// PollInterval reports the configured status-poll pacing.
func (w *Workflow) PollInterval() time.Duration {
	return w.pollInterval
}

// Run executes one generation end to end:
//
//  1. Check preconditions and the cached balance.
//  2. Append the user message and clear the generating flag's inverse.
//  3. Re-check credits against a freshly fetched balance.
//  4. Submit the task and poll until a terminal status.
//  5. On completion, append the assistant message and refresh the balance.
//
// The user message stays in the transcript even when generation fails;
// the user typed it and can retry.
func (w *Workflow) Run(ctx context.Context, text string) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}

	voice := w.store.SelectedVoice()
	if voice == nil {
		return nil, ErrNoVoiceSelected
	}

	convID := w.store.CurrentConversationID()
	if convID == "" {
		return nil, ErrNoConversation
	}

	cost := Cost(trimmed)

	// Optimistic check against the cached balance. Cheap, catches the
	// obvious case before any state changes.
	if cost > w.store.Credits() {
		return nil, fmt.Errorf("%w: need %d credits, have %d", api.ErrInsufficientCredits, cost, w.store.Credits())
	}

	w.store.AppendMessage(convID, model.NewUserMessage(text))
	w.store.SetGenerating(true)
	defer w.store.SetGenerating(false)

	// The cached balance may be stale between keystroke and submit, so
	// re-validate against a fresh fetch before spending anything.
	if err := w.store.RefreshCredits(ctx); err != nil {
		return nil, fmt.Errorf("failed to verify balance: %w", err)
	}
	if cost > w.store.Credits() {
		return nil, fmt.Errorf("%w: need %d credits, have %d", api.ErrInsufficientCredits, cost, w.store.Credits())
	}

	gen, err := w.client.Generate(ctx, trimmed, voice.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to submit task: %w", err)
	}

	status, err := w.poll(ctx, gen.TaskID)
	if err != nil {
		return nil, err
	}

	audioURL := w.client.AudioURL(status.OutputURL)
	w.store.AppendMessage(convID, model.NewAssistantMessage(audioURL, voice.Name))

	// The backend is authoritative on what the task actually cost.
	if err := w.store.RefreshCredits(ctx); err != nil {
		log.Printf("generate: failed to refresh balance: %v", err)
		w.store.DeductCredits(gen.Cost)
	}

	return &Result{
		TaskID:    gen.TaskID,
		AudioURL:  audioURL,
		VoiceName: voice.Name,
		Cost:      gen.Cost,
	}, nil
}

// poll queries task status at a fixed interval until a terminal state.
// There is no attempt cap; cancellation comes from ctx. A single failed
// poll is logged and retried, except authentication failures, which can
// never recover within this loop.
func (w *Workflow) poll(ctx context.Context, taskID string) (*api.TaskStatusResponse, error) {
	limiter := rate.NewLimiter(rate.Every(w.pollInterval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("polling cancelled: %w", err)
		}

		status, err := w.client.TaskStatus(ctx, taskID)
		if err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				return nil, err
			}
			log.Printf("generate: poll for task %s failed, retrying: %v", taskID, err)
			continue
		}

		switch status.Status {
		case api.TaskCompleted:
			return status, nil
		case api.TaskFailed:
			msg := status.Error
			if msg == "" {
				msg = "audio generation failed"
			}
			return nil, fmt.Errorf("%w: %s", ErrTaskFailed, msg)
		default:
			// queued or processing, keep going.
		}
	}
}

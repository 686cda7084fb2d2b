// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Shared wiring for CLI command handlers.
package cli

import (
	"context"
	"fmt"

	"github.com/jeranaias/voxchat-tui/internal/api"
	"github.com/jeranaias/voxchat-tui/internal/config"
	"github.com/jeranaias/voxchat-tui/internal/storage"
	"github.com/jeranaias/voxchat-tui/internal/store"
)

// App bundles the session dependencies a command handler needs.
type App struct {
	Config *config.Config
	Client *api.Client
	Store  *store.Store
	Tokens *storage.FileTokenStore
}

// NewApp loads configuration and wires the client, token store, snapshot
// store, and session store together.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	tokens, err := storage.NewFileTokenStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	snapshots, err := storage.NewSnapshotStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, tokens).WithTimeout(cfg.RequestTimeout())
	s := store.New(client, tokens, snapshots)
	client.OnLogout(s.HandleForcedLogout)

	return &App{
		Config: cfg,
		Client: client,
		Store:  s,
		Tokens: tokens,
	}, nil
}

// NewAppWithSession builds the app and rehydrates persisted state,
// refreshing the session when a user was signed in.
func NewAppWithSession(ctx context.Context) (*App, error) {
	app, err := NewApp()
	if err != nil {
		return nil, err
	}
	if err := app.Store.Rehydrate(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

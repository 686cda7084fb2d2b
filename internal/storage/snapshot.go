// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jeranaias/voxchat-tui/internal/model"
	"github.com/jeranaias/voxchat-tui/internal/util"
)

// SnapshotFile is the state file name under the voxchat directory.
const SnapshotFile = "state.json"

// =============================================================================
// SNAPSHOT TYPE
// =============================================================================

// Snapshot is the persisted subset of application state. Transient fields
// (loading flags, error banners, credits) are deliberately excluded;
// credits are refreshed from the backend at startup.
type Snapshot struct {
	Conversations         []*model.Conversation `json:"conversations"`
	CurrentConversationID string                `json:"current_conversation_id,omitempty"`
	SelectedVoice         *model.Voice          `json:"selected_voice,omitempty"`
	User                  *model.User           `json:"user,omitempty"`
}

// Empty returns a snapshot with no state.
func Empty() *Snapshot {
	return &Snapshot{}
}

// =============================================================================
// SNAPSHOT STORE
// =============================================================================

// SnapshotStore persists application state to a single JSON file.
type SnapshotStore struct {
	// Path is the state file location. Default: ~/.voxchat/state.json
	Path string
}

// NewSnapshotStore creates a snapshot store rooted in the user's home
// directory.
func NewSnapshotStore() (*SnapshotStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Join(homeDir, ".voxchat")
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &SnapshotStore{Path: filepath.Join(baseDir, SnapshotFile)}, nil
}

// NewSnapshotStoreWithPath creates a store writing to a specific file.
func NewSnapshotStoreWithPath(path string) (*SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &SnapshotStore{Path: path}, nil
}

// Save writes the snapshot atomically.
func (s *SnapshotStore) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Load reads the snapshot from disk. A missing file yields an empty
// snapshot; a corrupt file is logged and also yields an empty snapshot so
// a bad write never wedges startup.
func (s *SnapshotStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Empty(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("storage: corrupt state file %s, starting fresh: %v", s.Path, err)
		return Empty(), nil
	}
	return &snap, nil
}

// Clear removes the state file. Missing files are not an error.
func (s *SnapshotStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}

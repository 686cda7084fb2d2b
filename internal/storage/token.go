// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jeranaias/voxchat-tui/internal/util"
)

// TokenFile is the bearer token file name under the voxchat directory.
const TokenFile = "token"

// FileTokenStore keeps the bearer token in a 0600 file so a login survives
// process restarts. It satisfies the api.TokenStore interface.
type FileTokenStore struct {
	path string

	mu    sync.RWMutex
	token string
}

// NewFileTokenStore creates a token store rooted in the user's home
// directory and loads any existing token.
func NewFileTokenStore() (*FileTokenStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Join(homeDir, ".voxchat")
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return NewFileTokenStoreWithPath(filepath.Join(baseDir, TokenFile))
}

// NewFileTokenStoreWithPath creates a token store at a specific file.
func NewFileTokenStoreWithPath(path string) (*FileTokenStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	s := &FileTokenStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	// SECURITY: Tighten permissions on tokens written by older builds.
	if info, statErr := os.Stat(path); statErr == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return nil, fmt.Errorf("failed to fix token file permissions: %w", err)
		}
	}

	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the cached token, or "" when signed out.
func (s *FileTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set persists a new token with owner-only permissions.
func (s *FileTokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := util.AtomicWriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	s.token = token
	return nil
}

// Clear removes the token from memory and disk.
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the session state for voxchat: the voice catalog,
// the selected voice, the credit balance, the signed-in user, and the
// conversation list. It is the single source of truth; the TUI and CLI
// both read and mutate state only through it.
//
// A subset of the state (conversations, active conversation, selected
// voice, user) is persisted after every mutating operation and rehydrated
// at startup. Transient values like loading flags and the credit balance
// are not persisted; credits come fresh from the backend.
package store

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides on-disk persistence for voxchat.
//
// Two artifacts live under ~/.voxchat/:
//   - state.json: a snapshot of conversations, the active conversation,
//     the selected voice, and the signed-in user
//   - token: the bearer token, written with 0600 permissions
//
// All writes are atomic (temp file, fsync, rename) so a crash mid-write
// never corrupts the previous snapshot.
package storage

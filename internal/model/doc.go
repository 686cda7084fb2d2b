// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for voices, conversations,
// messages, and users.
//
// These types are shared by the state store, the generation workflow, and
// the UI. Voices are immutable catalog entries fetched from the backend.
// Conversations hold an append-only ordered message list and derive their
// title from the first user message. Users are created on successful
// authentication and cleared on logout.
package model

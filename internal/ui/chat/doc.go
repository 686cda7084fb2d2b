// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main TUI view for voxchat: the transcript
// viewport, the text input, the voice picker, the conversation list, and
// the sign-in overlay. It follows the Bubble Tea model/update/view
// pattern; all backend work runs in commands so the event loop never
// blocks on the network.
package chat

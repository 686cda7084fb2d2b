// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the voxchat
// TUI: the header, status bar, message bubbles, the voice picker, the
// conversation list, the login form, and error display. Components render
// to strings; the chat model composes them.
package components

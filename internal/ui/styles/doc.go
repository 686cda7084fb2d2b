// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the voxchat TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark
// detection; the Theme aggregates ready-to-use styles so components never
// construct colors ad hoc.
package styles

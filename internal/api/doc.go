// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the voxchat backend.
//
// The client centralizes request construction and two cross-cutting
// behaviors: attaching the bearer token from the token store to every
// outgoing request, and reacting to a 401 response by clearing the token
// and notifying registered logout listeners so other components can reset
// their state. It is not a retry layer; a failed request is returned to
// the caller as-is.
package api

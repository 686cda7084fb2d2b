// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for voxchat.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - $VOXCHAT_CONFIG (explicit path override)
//   - ~/.voxchat/config.toml
//   - Built-in defaults
//
// Environment overrides:
//   - VOXCHAT_API_URL overrides api.base_url
package config

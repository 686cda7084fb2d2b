// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes conversation transcripts to files.
//
// Three formats are supported:
//
//   - JSON: the complete conversation structure, re-importable
//   - Markdown: human-readable transcript with audio links
//   - HTML: standalone page with inline audio players
//
// # Usage
//
//	path, err := export.ExportMarkdown(conv, opts)
package export

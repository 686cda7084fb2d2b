// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for voices, conversations,
// messages, and users.
package model

// =============================================================================
// VOICE CATEGORY
// =============================================================================

// VoiceCategory classifies a voice in the catalog.
type VoiceCategory string

const (
	CategoryMale   VoiceCategory = "male"
	CategoryFemale VoiceCategory = "female"
)

// String returns the string representation of the category.
func (c VoiceCategory) String() string {
	return string(c)
}

// DisplayName returns a human-readable name for the category.
func (c VoiceCategory) DisplayName() string {
	switch c {
	case CategoryMale:
		return "Male"
	case CategoryFemale:
		return "Female"
	default:
		return string(c)
	}
}

// =============================================================================
// VOICE TYPE
// =============================================================================

// Voice is a selectable synthetic speaker profile. Voices are fetched from
// the backend catalog and are read-only in the client; the JSON tags match
// the wire format of GET /voices/.
type Voice struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Category   VoiceCategory `json:"category"`
	PreviewURL string        `json:"preview_url"`
	Transcript string        `json:"transcript,omitempty"`
}

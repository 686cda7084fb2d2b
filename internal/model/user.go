// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for voices, conversations,
// messages, and users.
package model

import "strings"

// DefaultPlan is assumed when the backend reports no plan tier.
const DefaultPlan = "Free"

// =============================================================================
// USER TYPE
// =============================================================================

// User is the authenticated account. Created on successful login, cleared on
// logout or token invalidation.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Plan   string `json:"plan"`
	Avatar string `json:"avatar,omitempty"`
}

// NewUser builds a User from profile fields, deriving the display name from
// the email local-part and defaulting the plan tier.
func NewUser(id, email, plan, avatar string) *User {
	if plan == "" {
		plan = DefaultPlan
	}
	return &User{
		ID:     id,
		Name:   DisplayNameFromEmail(email),
		Email:  email,
		Plan:   plan,
		Avatar: avatar,
	}
}

// DisplayNameFromEmail derives a display name from the local-part of an
// email address ("ada@example.com" -> "ada").
func DisplayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// Initial returns a single-character avatar fallback.
func (u *User) Initial() string {
	if u == nil || u.Name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(u.Name)[0]))
}

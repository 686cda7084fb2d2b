// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
)

// Error variables for common backend errors.
var (
	// ErrUnauthorized indicates the request was rejected with HTTP 401.
	// The client has already cleared the stored token and broadcast a
	// logout when this is returned.
	ErrUnauthorized = errors.New("not authenticated")

	// ErrInsufficientCredits indicates the account balance cannot cover
	// the request (HTTP 402).
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrNotFound indicates the requested resource does not exist (HTTP 404).
	ErrNotFound = errors.New("not found")
)

// APIError represents an error response from the backend. The backend wraps
// error details as {"detail": "..."}.
type APIError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend error (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend error (HTTP %d)", e.Status)
}

// Detail extracts the backend-provided detail string from an error chain,
// or returns the fallback when none is present.
func Detail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

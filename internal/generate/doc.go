// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package generate drives one text-to-speech request from submission to a
// playable result: precondition checks, a two-stage credit check, task
// submission, and fixed-interval status polling until a terminal state.
//
// Polling has no attempt cap; a stuck backend task means the loop runs
// until the context is cancelled. Transient poll errors are logged and
// retried on the next tick.
package generate

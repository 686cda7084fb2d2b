// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

// =============================================================================
// AUTH / ACCOUNT TYPES
// =============================================================================

// UserProfile is the wire representation of GET /auth/me and the register
// response.
type UserProfile struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Provider       string `json:"provider,omitempty"`
	Plan           string `json:"plan,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
	CreditsBalance int    `json:"credits_balance"`
	IsAdmin        bool   `json:"is_admin,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// LoginResponse is the wire representation of POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// BalanceResponse is the wire representation of GET /credits/balance.
type BalanceResponse struct {
	Balance int    `json:"balance"`
	UserID  string `json:"user_id"`
}

// =============================================================================
// TTS TASK TYPES
// =============================================================================

// TaskState is the backend-reported lifecycle state of a generation task.
type TaskState string

const (
	TaskQueued     TaskState = "queued"
	TaskProcessing TaskState = "processing"
	TaskCompleted  TaskState = "completed"
	TaskFailed     TaskState = "failed"
)

// IsTerminal returns true when no further polling is needed.
func (s TaskState) IsTerminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// GenerateResponse is the wire representation of POST /tts/generate.
type GenerateResponse struct {
	TaskID string    `json:"task_id"`
	Status TaskState `json:"status"`
	Cost   int       `json:"cost"`
}

// TaskStatusResponse is the wire representation of GET /tts/status/{task_id}.
type TaskStatusResponse struct {
	TaskID    string    `json:"task_id"`
	Status    TaskState `json:"status"`
	OutputURL string    `json:"output_url,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// TaskHistoryItem is one entry of GET /tts/history.
type TaskHistoryItem struct {
	TaskID      string    `json:"task_id"`
	Status      TaskState `json:"status"`
	Cost        int       `json:"cost"`
	VoiceID     string    `json:"voice_id"`
	TextExcerpt string    `json:"text_excerpt"`
	OutputURL   string    `json:"output_url,omitempty"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   string    `json:"created_at"`
	CompletedAt string    `json:"completed_at,omitempty"`
}

// =============================================================================
// FEEDBACK TYPES
// =============================================================================

// FeedbackResponse is the wire representation of POST /feedback.
type FeedbackResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	Contact   string `json:"contact,omitempty"`
	CreatedAt string `json:"created_at"`
}

// =============================================================================
// MONITORING TYPES
// =============================================================================

// SystemStatus is the wire representation of GET /monitor/system.
type SystemStatus struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsedGB  float64 `json:"memory_used_gb"`
	MemoryTotalGB float64 `json:"memory_total_gb"`
	DiskPercent   float64 `json:"disk_percent"`
	DiskUsedGB    float64 `json:"disk_used_gb"`
	DiskTotalGB   float64 `json:"disk_total_gb"`
	GPUAvailable  bool    `json:"gpu_available"`

	GPUInfo []GPUInfo `json:"gpu_info,omitempty"`
}

// GPUInfo describes one GPU reported by the backend.
type GPUInfo struct {
	Index         int     `json:"index"`
	Name          string  `json:"name"`
	Temperature   float64 `json:"temperature"`
	Utilization   float64 `json:"utilization"`
	MemoryUsedMB  float64 `json:"memory_used_mb"`
	MemoryTotalMB float64 `json:"memory_total_mb"`
}

// ServiceStatus is the wire representation of GET /monitor/services.
type ServiceStatus struct {
	Backend   bool `json:"backend"`
	Frontend  bool `json:"frontend"`
	TTSEngine bool `json:"tts_engine"`
	Database  bool `json:"database"`
}

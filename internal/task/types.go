package task

import (
	"task-assistant/pkg/retry"
)

// ChatInput is one user turn.
type ChatInput struct {
	Message  string
	Username string
	// Controller is the group that owns the task. Defaults to Username.
	Controller string
	// Timezone is an IANA name. Defaults to Config.DefaultTimezone.
	Timezone string
	Debug    bool
}

// ChatOutput is the assistant's answer to a turn.
type ChatOutput struct {
	Reply       string
	InstanceID  int64
	InstanceIDs []int64
	// Error is set instead of Reply when a debug batch created nothing.
	Error string
	Debug map[string]any
}

// BatchItem is the outcome of one task of a batch.
type BatchItem struct {
	TaskName   string `json:"task_name"`
	InstanceID int64  `json:"instance_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Config tunes the task use case.
type Config struct {
	DefaultTimezone string
	// DatabaseRetry wraps store reads and priority list writes. Task
	// creation itself is never retried.
	DatabaseRetry retry.Policy
}

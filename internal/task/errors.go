package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyMessage  = errors.New("no message provided")
	ErrEmptyUsername = errors.New("no user provided")
)

// Replies used by the task use case.
const (
	MsgBatchAllFailed = "Failed to create any tasks from the batch"
	MsgNoInstanceID   = "Task creation failed - no instance ID returned"
	MsgBatchItemEmpty = "Task name is empty"
)

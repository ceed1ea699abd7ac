package directory

import (
	"time"

	"task-assistant/pkg/retry"
)

// GroupLookup is the result of resolving a controller or assignee group.
type GroupLookup struct {
	Exists  bool
	Name    string
	Similar []string
}

// Config tunes the directory use case.
type Config struct {
	CacheTTL time.Duration
	Retry    retry.Policy
}

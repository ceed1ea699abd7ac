package repository

import "context"

// Repository is the composed interface for the downstream task store.
type Repository interface {
	TaskRepository
	PriorityListRepository
}

// TaskRepository creates and looks up task instances.
type TaskRepository interface {
	// CreateTask calls the store's task creation routine. It is not
	// idempotent. A zero id with a nil error means the store did not report one.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (int64, error)
	// FindTaskByName returns the newest instance of the named task, or 0.
	FindTaskByName(ctx context.Context, name string) (int64, error)
}

// PriorityListRepository adds created tasks to users' priority lists.
type PriorityListRepository interface {
	// GetActiveChecklistID returns 0 when the instance has no active checklist.
	GetActiveChecklistID(ctx context.Context, instanceID int64) (int64, error)
	ListGroupUserIDs(ctx context.Context, group string) ([]int64, error)
	AddToPriorityList(ctx context.Context, opt AddToPriorityListOptions) error
}

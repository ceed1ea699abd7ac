package repository

import "context"

// Repository is the composed interface for directory reads.
type Repository interface {
	GroupRepository
	UserRepository
}

// GroupRepository reads groups.
type GroupRepository interface {
	// GetGroupName returns the stored name, or "" when the group does not exist.
	GetGroupName(ctx context.Context, name string) (string, error)
	ListGroups(ctx context.Context, opt ListGroupsOptions) ([]string, error)
}

// UserRepository reads users.
type UserRepository interface {
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]string, error)
	CountUsers(ctx context.Context) (int, error)
}

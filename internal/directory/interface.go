package directory

import "context"

// UseCase answers questions about groups and users of the task store.
type UseCase interface {
	GroupExists(ctx context.Context, name string) (bool, error)
	// SimilarGroups returns up to five groups sharing the first word of name.
	SimilarGroups(ctx context.Context, name string) ([]string, error)
	// LookupGroup resolves name and, when it is unknown, suggests similar groups.
	LookupGroup(ctx context.Context, name string) (GroupLookup, error)
	// ActiveUsers lists every non-deleted user.
	ActiveUsers(ctx context.Context) ([]string, error)
	// ConfiguredUsers lists active users that also have a personal group.
	ConfiguredUsers(ctx context.Context) ([]string, error)
	IsActiveUser(ctx context.Context, name string) bool
	// IsUnconfiguredUser reports an active user without a personal group.
	IsUnconfiguredUser(ctx context.Context, name string) bool
	InvalidateCache()
}

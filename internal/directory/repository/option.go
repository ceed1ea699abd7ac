package repository

// ListGroupsOptions filters groups by a LIKE pattern.
type ListGroupsOptions struct {
	Pattern string
	Limit   int
}

// ListUsersOptions filters active users.
type ListUsersOptions struct {
	// ConfiguredOnly keeps users that also exist as a group.
	ConfiguredOnly bool
}

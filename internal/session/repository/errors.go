package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get session")
	ErrFailedToUpsert = errors.New("failed to save session")
	ErrFailedToDelete = errors.New("failed to delete session")
)

package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert translation metadata")
	ErrFailedToGet    = errors.New("failed to get translation metadata")
	ErrFailedToUpdate = errors.New("failed to link translation metadata")
)

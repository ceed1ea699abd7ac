package repository

import (
	"context"

	"task-assistant/internal/translation"
)

// Repository is the composed interface for the translation audit store.
type Repository interface {
	MetadataRepository
}

// MetadataRepository persists encodings next to the tasks that use them.
type MetadataRepository interface {
	CreateMetadata(ctx context.Context, opt CreateMetadataOptions) (int64, error)
	LinkMetadata(ctx context.Context, opt LinkMetadataOptions) error
	// GetMetadataByInstance returns a zero Info when nothing was recorded.
	GetMetadataByInstance(ctx context.Context, instanceID int64) (translation.Info, error)
}

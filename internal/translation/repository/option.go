package repository

import "task-assistant/internal/translation"

// CreateMetadataOptions holds the encoding to record.
type CreateMetadataOptions struct {
	Metadata  translation.Metadata
	CreatedBy string
	Notes     string
}

// LinkMetadataOptions ties a stored encoding to a task instance.
type LinkMetadataOptions struct {
	ID         int64
	InstanceID int64
}

package translation

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/pkg/schedule"
)

// Translator remaps monthly day 15..31 bitmasks into a range the task store
// accepts, and back.
type Translator interface {
	NeedsTranslation(rec schedule.Record) bool
	// Encode replaces FreqRecurrance with its compressed value. A bitmask that
	// is not a single day 15..31 fails with *model.ValidationError.
	Encode(params model.TaskParameters) (model.TaskParameters, Metadata, error)
	Decode(params model.TaskParameters, md Metadata) model.TaskParameters
	Stats() Stats
	ValidateIntegrity() bool
}

// UseCase is the Translator plus its audit trail in the task store.
type UseCase interface {
	Translator
	// StoreMetadata records an encoding and returns its id. Failures are
	// logged and reported as id 0.
	StoreMetadata(ctx context.Context, input StoreInput) int64
	// LinkToTask attaches a stored encoding to the created instance. Best effort.
	LinkToTask(ctx context.Context, id, instanceID int64)
	GetInfo(ctx context.Context, instanceID int64) (Info, error)
}

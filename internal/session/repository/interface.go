package repository

import (
	"context"
	"time"

	"task-assistant/internal/session"
)

// Repository stores pending sessions keyed by username.
type Repository interface {
	// GetSession returns a zero PendingSession when none is stored.
	GetSession(ctx context.Context, username string) (session.PendingSession, error)
	UpsertSession(ctx context.Context, s session.PendingSession) error
	DeleteSession(ctx context.Context, username string) error
	DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int, error)
}

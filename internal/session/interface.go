package session

import (
	"context"
	"time"

	"task-assistant/internal/model"
)

// UseCase manages pending sessions. Turns from the same user are not
// serialized; the last writer wins.
type UseCase interface {
	// Manage loads or creates the user's session. Unless message continues
	// the previous conversation the session is reset; reset reports that.
	Manage(ctx context.Context, username, message string) (s *PendingSession, reset bool, err error)
	Save(ctx context.Context, s *PendingSession) error
	Delete(ctx context.Context, username string) error
	// PreserveOnError saves the session after a failed turn, keeping history
	// when it is given.
	PreserveOnError(ctx context.Context, s *PendingSession, history []model.Message)
	Summary(s *PendingSession) Summary
	// Cleanup deletes sessions not updated within olderThan.
	Cleanup(ctx context.Context, olderThan time.Duration) (int, error)
}

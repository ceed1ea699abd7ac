package errtrack

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"task-assistant/internal/model"
	"task-assistant/pkg/log"
)

// Tracker assigns tracking ids to failures and keeps counters.
type Tracker struct {
	l log.Logger

	mu          sync.Mutex
	counts      map[string]int
	workarounds map[Workaround]WorkaroundStats
}

// New creates a Tracker.
func New(l log.Logger) *Tracker {
	return &Tracker{
		l:           l,
		counts:      map[string]int{},
		workarounds: map[Workaround]WorkaroundStats{},
	}
}

// NewTrackingID returns a fresh id of the form ERR_<uuid>.
func NewTrackingID() string {
	return "ERR_" + uuid.NewString()
}

// Track logs err with its context and returns the tracking id.
func (t *Tracker) Track(ctx context.Context, err error, user string, keysAndValues ...any) string {
	id := NewTrackingID()
	kind := TypeName(err)

	t.mu.Lock()
	t.counts[kind]++
	t.mu.Unlock()

	fields := append([]any{
		"tracking_id", id,
		"error_type", kind,
		"error", err.Error(),
		"user", user,
	}, keysAndValues...)
	t.l.Error(ctx, append([]any{fmt.Sprintf("error tracked [%s]", id)}, fields...)...)
	return id
}

// Attempt counts one try of w.
func (t *Tracker) Attempt(w Workaround) {
	t.mu.Lock()
	s := t.workarounds[w]
	s.Attempts++
	t.workarounds[w] = s
	t.mu.Unlock()
}

// Succeed counts one successful w.
func (t *Tracker) Succeed(w Workaround) {
	t.mu.Lock()
	s := t.workarounds[w]
	s.Successes++
	t.workarounds[w] = s
	t.mu.Unlock()
}

// Stats returns a copy of the counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Stats{
		ErrorCounts:     make(map[string]int, len(t.counts)),
		WorkaroundStats: make(map[Workaround]WorkaroundStats, len(t.workarounds)),
	}
	for k, v := range t.counts {
		s.ErrorCounts[k] = v
		s.TotalErrors += v
	}
	for k, v := range t.workarounds {
		s.WorkaroundStats[k] = v
	}
	return s
}

// TypeName names the taxonomy type of err.
func TypeName(err error) string {
	switch err.(type) {
	case *model.ValidationError:
		return "ValidationError"
	case *model.DatabaseError:
		return "DatabaseError"
	case *model.AIServiceError:
		return "AIServiceError"
	case *model.TaskCreationError:
		return "TaskCreationError"
	}
	var dbErr *model.DatabaseError
	if errors.As(err, &dbErr) {
		return "DatabaseError"
	}
	return "Error"
}

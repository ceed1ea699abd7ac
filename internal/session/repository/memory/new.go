package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-assistant/internal/model"
	"task-assistant/internal/session"
	"task-assistant/internal/session/repository"
)

const (
	DefaultSize = 10000
	DefaultTTL  = 30 * time.Minute
)

type implRepository struct {
	sessions *expirable.LRU[string, session.PendingSession]
}

// New creates an in-memory session store. Entries expire ttl after their
// last write.
func New(size int, ttl time.Duration) repository.Repository {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, session.PendingSession](size, nil, ttl),
	}
}

func (r *implRepository) GetSession(ctx context.Context, username string) (session.PendingSession, error) {
	s, _ := r.sessions.Get(username)
	return s, nil
}

func (r *implRepository) UpsertSession(ctx context.Context, s session.PendingSession) error {
	s.History = append([]model.Message(nil), s.History...)
	s.Parameters.BatchTasks = append([]string(nil), s.Parameters.BatchTasks...)
	r.sessions.Add(s.Username, s)
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, username string) error {
	r.sessions.Remove(username)
	return nil
}

func (r *implRepository) DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n := 0
	for _, key := range r.sessions.Keys() {
		s, ok := r.sessions.Peek(key)
		if ok && s.UpdatedAt.Before(cutoff) {
			r.sessions.Remove(key)
			n++
		}
	}
	return n, nil
}

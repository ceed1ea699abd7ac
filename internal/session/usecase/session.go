package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/session"
)

var continuationRe = regexp.MustCompile(`\b(?:more|continue|what else|anything else|also|and)\b`)

// IsContinuation reports whether message carries on the previous turn
// instead of asking for a new task.
func IsContinuation(message string) bool {
	return continuationRe.MatchString(strings.ToLower(message))
}

func (uc *implUseCase) Manage(ctx context.Context, username, message string) (*session.PendingSession, bool, error) {
	if username == "" {
		return nil, false, session.ErrEmptyUsername
	}

	stored, err := uc.repo.GetSession(ctx, username)
	if err != nil {
		return nil, false, err
	}

	now := uc.now()
	s := &stored
	if s.Username == "" {
		s = &session.PendingSession{Username: username, CreatedAt: now, UpdatedAt: now}
		uc.l.Infof(ctx, "session.usecase.Manage: new session for %s", username)
	}

	if message == "" || IsContinuation(message) {
		return s, false, nil
	}

	s.Reset()
	if err := uc.Save(ctx, s); err != nil {
		return nil, false, err
	}
	uc.l.Debugf(ctx, "session.usecase.Manage: cleared session for new request from %s", username)
	return s, true, nil
}

func (uc *implUseCase) Save(ctx context.Context, s *session.PendingSession) error {
	s.UpdatedAt = uc.now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = s.UpdatedAt
	}
	return uc.repo.UpsertSession(ctx, *s)
}

func (uc *implUseCase) Delete(ctx context.Context, username string) error {
	if err := uc.repo.DeleteSession(ctx, username); err != nil {
		return err
	}
	uc.l.Debugf(ctx, "session.usecase.Delete: deleted session for %s", username)
	return nil
}

func (uc *implUseCase) PreserveOnError(ctx context.Context, s *session.PendingSession, history []model.Message) {
	if s == nil {
		return
	}
	if history != nil {
		s.History = history
	}
	if err := uc.Save(ctx, s); err != nil {
		uc.l.Errorf(ctx, "session.usecase.PreserveOnError: user %s: %v", s.Username, err)
	}
}

func (uc *implUseCase) Summary(s *session.PendingSession) session.Summary {
	return session.Summary{
		User:          s.Username,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		HasParams:     !s.Parameters.IsEmpty(),
		HistoryCount:  len(s.History),
		HasLastPrompt: s.LastPrompt != "",
	}
}

func (uc *implUseCase) Cleanup(ctx context.Context, olderThan time.Duration) (int, error) {
	n, err := uc.repo.DeleteSessionsBefore(ctx, uc.now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	uc.l.Infof(ctx, "session.usecase.Cleanup: removed %d sessions older than %s", n, olderThan)
	return n, nil
}

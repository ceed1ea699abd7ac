package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"task-assistant/internal/session"
	repo "task-assistant/internal/session/repository"
)

func (r *implRepository) GetSession(ctx context.Context, username string) (session.PendingSession, error) {
	const query = `
		SELECT username, parameters, history, last_prompt, created_at, updated_at
		FROM pending_sessions WHERE username = ?`

	var (
		s               session.PendingSession
		params, history string
	)
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&s.Username, &params, &history, &s.LastPrompt, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return session.PendingSession{}, nil
	}
	if err == nil {
		err = decode(params, history, &s)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return session.PendingSession{}, repo.ErrFailedToGet
	}
	return s, nil
}

func (r *implRepository) UpsertSession(ctx context.Context, s session.PendingSession) error {
	const query = `
		INSERT INTO pending_sessions (username, parameters, history, last_prompt, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET
			parameters = excluded.parameters,
			history = excluded.history,
			last_prompt = excluded.last_prompt,
			updated_at = excluded.updated_at`

	params, err := json.Marshal(s.Parameters)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal params: %v", r.dsn("UpsertSession"), err)
		return repo.ErrFailedToUpsert
	}
	history, err := json.Marshal(s.History)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal history: %v", r.dsn("UpsertSession"), err)
		return repo.ErrFailedToUpsert
	}

	if _, err := r.db.ExecContext(ctx, query,
		s.Username, string(params), string(history), s.LastPrompt, s.CreatedAt.UTC(), s.UpdatedAt.UTC(),
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSession"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, username string) error {
	const query = `DELETE FROM pending_sessions WHERE username = ?`

	if _, err := r.db.ExecContext(ctx, query, username); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	const query = `DELETE FROM pending_sessions WHERE updated_at < ?`

	res, err := r.db.ExecContext(ctx, query, cutoff.UTC())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSessionsBefore"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return int(n), nil
}

func decode(params, history string, s *session.PendingSession) error {
	if err := json.Unmarshal([]byte(params), &s.Parameters); err != nil {
		return errors.Wrap(err, "decode parameters")
	}
	if err := json.Unmarshal([]byte(history), &s.History); err != nil {
		return errors.Wrap(err, "decode history")
	}
	return nil
}

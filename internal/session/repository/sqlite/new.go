package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"task-assistant/internal/session/repository"
	"task-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS pending_sessions (
	username    TEXT PRIMARY KEY,
	parameters  TEXT NOT NULL DEFAULT '{}',
	history     TEXT NOT NULL DEFAULT '[]',
	last_prompt TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pending_sessions_updated_at ON pending_sessions (updated_at);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the session database at path.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", path)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create session schema")
	}
	return db, nil
}

// New creates a SQLite-backed session repository. The schema must exist; see Open.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("session/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/sqlite.%s", method)
}

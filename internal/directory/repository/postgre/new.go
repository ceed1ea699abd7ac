package postgre

import (
	"database/sql"
	"fmt"

	"task-assistant/internal/directory/repository"
	"task-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed directory repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("directory/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("directory/repository/postgre.%s", method)
}

package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "task-assistant/internal/directory/repository"
)

const defaultGroupLimit = 5

func (r *implRepository) GetGroupName(ctx context.Context, name string) (string, error) {
	const query = `SELECT name FROM groups WHERE name = $1 LIMIT 1`

	var found string
	err := r.db.QueryRowContext(ctx, query, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetGroupName"), err)
		return "", repo.ErrFailedToGet
	}
	return found, nil
}

func (r *implRepository) ListGroups(ctx context.Context, opt repo.ListGroupsOptions) ([]string, error) {
	const query = `SELECT name FROM groups WHERE name LIKE $1 ORDER BY name LIMIT $2`

	limit := opt.Limit
	if limit <= 0 {
		limit = defaultGroupLimit
	}
	names, err := r.queryNames(ctx, query, opt.Pattern, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListGroups"), err)
		return nil, repo.ErrFailedToList
	}
	return names, nil
}

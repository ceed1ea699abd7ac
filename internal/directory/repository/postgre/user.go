package postgre

import (
	"context"

	repo "task-assistant/internal/directory/repository"
)

func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]string, error) {
	query := `
		SELECT full_name FROM users
		WHERE is_deleted = FALSE
		ORDER BY full_name`
	if opt.ConfiguredOnly {
		query = `
			SELECT DISTINCT u.full_name FROM users u
			INNER JOIN groups g ON u.full_name = g.name
			WHERE u.is_deleted = FALSE
			ORDER BY u.full_name`
	}

	names, err := r.queryNames(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return names, nil
}

func (r *implRepository) CountUsers(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users WHERE is_deleted = FALSE`

	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountUsers"), err)
		return 0, repo.ErrFailedToGet
	}
	return total, nil
}

func (r *implRepository) queryNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

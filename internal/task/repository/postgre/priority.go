package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "task-assistant/internal/task/repository"
)

func (r *implRepository) GetActiveChecklistID(ctx context.Context, instanceID int64) (int64, error) {
	const query = `SELECT id FROM active_checklists WHERE instance_id = $1 LIMIT 1`

	var id int64
	err := r.db.QueryRowContext(ctx, query, instanceID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetActiveChecklistID"), err)
		return 0, classify(repo.ErrFailedToGet, err)
	}
	return id, nil
}

func (r *implRepository) ListGroupUserIDs(ctx context.Context, group string) ([]int64, error) {
	const query = `
		SELECT DISTINCT u.id
		FROM users u
		INNER JOIN group_memberships gm ON u.id = gm.user_id
		INNER JOIN groups g ON gm.group_id = g.id
		WHERE g.name = $1 AND u.is_deleted = FALSE`

	rows, err := r.db.QueryContext(ctx, query, group)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListGroupUserIDs"), err)
		return nil, classify(repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListGroupUserIDs"), err)
			return nil, classify(repo.ErrFailedToList, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(repo.ErrFailedToList, err)
	}
	return ids, nil
}

func (r *implRepository) AddToPriorityList(ctx context.Context, opt repo.AddToPriorityListOptions) error {
	const query = `SELECT priority_list_add_task($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.ActiveChecklistID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddToPriorityList"), err)
		return classify(repo.ErrFailedToUpdate, err)
	}
	return nil
}

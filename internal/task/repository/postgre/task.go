package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "task-assistant/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (int64, error) {
	const query = `
		SELECT create_task_through_chatbot(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)`

	var id sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, opt.Args()...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		r.l.Warnf(ctx, "%s: no instance id returned for %q", r.dsn("CreateTask"), opt.TaskName)
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return 0, classify(repo.ErrFailedToCreate, err)
	}
	if !id.Valid {
		r.l.Warnf(ctx, "%s: no instance id returned for %q", r.dsn("CreateTask"), opt.TaskName)
		return 0, nil
	}
	return id.Int64, nil
}

func (r *implRepository) FindTaskByName(ctx context.Context, name string) (int64, error) {
	const query = `
		SELECT ci.id
		FROM checklist_instances ci
		INNER JOIN checklists c ON ci.checklist_id = c.id
		WHERE c.name = $1
		ORDER BY ci.id DESC
		LIMIT 1`

	var id int64
	err := r.db.QueryRowContext(ctx, query, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindTaskByName"), err)
		return 0, classify(repo.ErrFailedToGet, err)
	}
	return id, nil
}

package postgre

import (
	"context"
	"database/sql"
	"errors"

	"task-assistant/internal/translation"
	repo "task-assistant/internal/translation/repository"
)

// CreateMetadata inserts an encoding row and returns its id.
func (r *implRepository) CreateMetadata(ctx context.Context, opt repo.CreateMetadataOptions) (int64, error) {
	const query = `
		INSERT INTO translation_metadata
			(task_name, encoding_method, original_bitmask, encoded_value, day, created_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id`

	md := opt.Metadata
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		md.TaskName, int(md.Method), md.OriginalBitmask, md.EncodedValue, md.Day, opt.CreatedBy, opt.Notes,
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMetadata"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

// LinkMetadata records the instance and its checklist on an encoding row.
func (r *implRepository) LinkMetadata(ctx context.Context, opt repo.LinkMetadataOptions) error {
	const query = `
		UPDATE translation_metadata
		SET instance_id = $1,
			checklist_id = (SELECT checklist_id FROM checklist_instances WHERE id = $1)
		WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, opt.InstanceID, opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LinkMetadata"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// GetMetadataByInstance returns the encoding linked to an instance.
func (r *implRepository) GetMetadataByInstance(ctx context.Context, instanceID int64) (translation.Info, error) {
	const query = `
		SELECT encoding_method, original_bitmask, encoded_value, day, task_name, created_at
		FROM translation_metadata
		WHERE instance_id = $1
		ORDER BY id DESC
		LIMIT 1`

	var (
		info   translation.Info
		method int
	)
	err := r.db.QueryRowContext(ctx, query, instanceID).Scan(
		&method, &info.OriginalBitmask, &info.EncodedValue, &info.Day, &info.TaskName, &info.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return translation.Info{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMetadataByInstance"), err)
		return translation.Info{}, repo.ErrFailedToGet
	}
	info.Method = translation.Method(method)
	return info, nil
}

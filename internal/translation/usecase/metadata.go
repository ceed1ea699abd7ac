package usecase

import (
	"context"
	"fmt"

	"task-assistant/internal/translation"
	repo "task-assistant/internal/translation/repository"
)

func (uc *implUseCase) StoreMetadata(ctx context.Context, input translation.StoreInput) int64 {
	if !input.Metadata.Encoded() {
		return 0
	}
	id, err := uc.repo.CreateMetadata(ctx, repo.CreateMetadataOptions{
		Metadata:  input.Metadata,
		CreatedBy: input.CreatedBy,
		Notes:     fmt.Sprintf("Automatic translation for day %d", input.Metadata.Day),
	})
	if err != nil {
		uc.l.Warnf(ctx, "translation.usecase.StoreMetadata: %v", err)
		return 0
	}
	uc.l.Infof(ctx, "translation.usecase.StoreMetadata: stored id=%d day=%d value=%d",
		id, input.Metadata.Day, input.Metadata.EncodedValue)
	return id
}

func (uc *implUseCase) LinkToTask(ctx context.Context, id, instanceID int64) {
	if id == 0 || instanceID == 0 {
		return
	}
	if err := uc.repo.LinkMetadata(ctx, repo.LinkMetadataOptions{ID: id, InstanceID: instanceID}); err != nil {
		uc.l.Warnf(ctx, "translation.usecase.LinkToTask: id=%d instance=%d: %v", id, instanceID, err)
	}
}

func (uc *implUseCase) GetInfo(ctx context.Context, instanceID int64) (translation.Info, error) {
	info, err := uc.repo.GetMetadataByInstance(ctx, instanceID)
	if err != nil {
		uc.l.Errorf(ctx, "translation.usecase.GetInfo: %v", err)
		return translation.Info{}, err
	}
	if !info.Encoded() {
		return translation.Info{}, translation.ErrNotFound
	}
	return info, nil
}

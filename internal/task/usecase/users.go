package usecase

import (
	"context"
)

// ListUsers returns the active users that have a personal group and can
// therefore own tasks.
func (uc *implUseCase) ListUsers(ctx context.Context) ([]string, error) {
	users, err := uc.directory.ConfiguredUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ListUsers: %v", err)
		return nil, err
	}
	return users, nil
}

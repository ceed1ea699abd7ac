package usecase

import (
	"context"
	"slices"

	repo "task-assistant/internal/directory/repository"
	"task-assistant/pkg/retry"
)

func (uc *implUseCase) ActiveUsers(ctx context.Context) ([]string, error) {
	return uc.users(ctx, keyAllUsers, repo.ListUsersOptions{})
}

func (uc *implUseCase) ConfiguredUsers(ctx context.Context) ([]string, error) {
	return uc.users(ctx, keyConfiguredUsers, repo.ListUsersOptions{ConfiguredOnly: true})
}

func (uc *implUseCase) IsActiveUser(ctx context.Context, name string) bool {
	users, err := uc.ActiveUsers(ctx)
	if err != nil {
		return false
	}
	return slices.Contains(users, name)
}

func (uc *implUseCase) IsUnconfiguredUser(ctx context.Context, name string) bool {
	all, err := uc.ActiveUsers(ctx)
	if err != nil || !slices.Contains(all, name) {
		return false
	}
	configured, err := uc.ConfiguredUsers(ctx)
	if err != nil {
		return false
	}
	return !slices.Contains(configured, name)
}

func (uc *implUseCase) InvalidateCache() {
	uc.cache.Purge()
}

// users serves a user list from the cache. Concurrent misses share one query.
func (uc *implUseCase) users(ctx context.Context, key string, opt repo.ListUsersOptions) ([]string, error) {
	if users, ok := uc.cache.Get(key); ok {
		return users, nil
	}

	v, err, _ := uc.group.Do(key, func() (any, error) {
		users, err := retry.DoValue(ctx, uc.policy, func(ctx context.Context) ([]string, error) {
			return uc.repo.ListUsers(ctx, opt)
		})
		if err != nil {
			return nil, err
		}
		uc.cache.Add(key, users)
		if opt.ConfiguredOnly {
			uc.logConfigurationRate(ctx, len(users))
		}
		return users, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "directory.usecase.users %s: %v", key, err)
		return nil, err
	}
	return v.([]string), nil
}

func (uc *implUseCase) logConfigurationRate(ctx context.Context, configured int) {
	total, err := uc.repo.CountUsers(ctx)
	if err != nil || total == 0 {
		return
	}
	uc.l.Info(ctx, "directory user configuration rate",
		"configured", configured,
		"total", total,
		"rate_pct", float64(configured)/float64(total)*100,
	)
}

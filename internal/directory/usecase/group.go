package usecase

import (
	"context"
	"strings"

	"task-assistant/internal/directory"
	repo "task-assistant/internal/directory/repository"
	"task-assistant/pkg/retry"
)

func (uc *implUseCase) GroupExists(ctx context.Context, name string) (bool, error) {
	found, err := uc.groupName(ctx, name)
	if err != nil {
		return false, err
	}
	return found != "", nil
}

func (uc *implUseCase) SimilarGroups(ctx context.Context, name string) ([]string, error) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return nil, directory.ErrEmptyName
	}

	groups, err := retry.DoValue(ctx, uc.policy, func(ctx context.Context) ([]string, error) {
		return uc.repo.ListGroups(ctx, repo.ListGroupsOptions{Pattern: "%" + fields[0] + "%"})
	})
	if err != nil {
		uc.l.Errorf(ctx, "directory.usecase.SimilarGroups: %v", err)
		return nil, err
	}
	return groups, nil
}

func (uc *implUseCase) LookupGroup(ctx context.Context, name string) (directory.GroupLookup, error) {
	if strings.TrimSpace(name) == "" {
		return directory.GroupLookup{}, directory.ErrEmptyName
	}

	found, err := uc.groupName(ctx, name)
	if err != nil {
		return directory.GroupLookup{}, err
	}
	if found != "" {
		return directory.GroupLookup{Exists: true, Name: found}, nil
	}

	similar, err := uc.SimilarGroups(ctx, name)
	if err != nil {
		return directory.GroupLookup{}, err
	}
	return directory.GroupLookup{Similar: similar}, nil
}

func (uc *implUseCase) groupName(ctx context.Context, name string) (string, error) {
	found, err := retry.DoValue(ctx, uc.policy, func(ctx context.Context) (string, error) {
		return uc.repo.GetGroupName(ctx, name)
	})
	if err != nil {
		uc.l.Errorf(ctx, "directory.usecase.groupName %q: %v", name, err)
		return "", err
	}
	return found, nil
}

package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/directory"
	repo "task-assistant/internal/directory/repository"
	"task-assistant/internal/directory/usecase"
	"task-assistant/pkg/log"
	"task-assistant/pkg/retry"
)

type mockRepo struct {
	mu         sync.Mutex
	groups     []string
	all        []string
	configured []string
	listErr    error
	failFirst  int
	listCalls  int
	patterns   []string
}

func (m *mockRepo) GetGroupName(ctx context.Context, name string) (string, error) {
	for _, g := range m.groups {
		if g == name {
			return g, nil
		}
	}
	return "", nil
}

func (m *mockRepo) ListGroups(ctx context.Context, opt repo.ListGroupsOptions) ([]string, error) {
	m.patterns = append(m.patterns, opt.Pattern)
	return []string{"Finance Team", "Finance Ops"}, nil
}

func (m *mockRepo) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.failFirst > 0 {
		m.failFirst--
		return nil, repo.ErrFailedToList
	}
	if m.listErr != nil {
		return nil, m.listErr
	}
	if opt.ConfiguredOnly {
		return m.configured, nil
	}
	return m.all, nil
}

func (m *mockRepo) CountUsers(ctx context.Context) (int, error) {
	return len(m.all), nil
}

func newUseCase(r *mockRepo) directory.UseCase {
	return usecase.New(log.NewNop(), r, directory.Config{
		CacheTTL: time.Minute,
		Retry:    retry.Policy{Attempts: 2},
	})
}

func TestLookupGroup(t *testing.T) {
	r := &mockRepo{groups: []string{"Jane Doe"}}
	uc := newUseCase(r)
	ctx := context.Background()

	got, err := uc.LookupGroup(ctx, "Jane Doe")
	require.NoError(t, err)
	assert.True(t, got.Exists)
	assert.Equal(t, "Jane Doe", got.Name)

	got, err = uc.LookupGroup(ctx, "Finance Crew")
	require.NoError(t, err)
	assert.False(t, got.Exists)
	assert.Equal(t, []string{"Finance Team", "Finance Ops"}, got.Similar)
	assert.Equal(t, []string{"%Finance%"}, r.patterns)

	_, err = uc.LookupGroup(ctx, "  ")
	assert.ErrorIs(t, err, directory.ErrEmptyName)
}

func TestUsers_CachedAndRetried(t *testing.T) {
	r := &mockRepo{
		all:        []string{"Jane Doe", "John Smith"},
		configured: []string{"Jane Doe"},
		failFirst:  1,
	}
	uc := newUseCase(r)
	ctx := context.Background()

	users, err := uc.ActiveUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "John Smith"}, users)
	assert.Equal(t, 2, r.listCalls)

	_, err = uc.ActiveUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, r.listCalls)

	uc.InvalidateCache()
	_, err = uc.ActiveUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, r.listCalls)
}

func TestUserClassification(t *testing.T) {
	r := &mockRepo{
		all:        []string{"Jane Doe", "John Smith"},
		configured: []string{"Jane Doe"},
	}
	uc := newUseCase(r)
	ctx := context.Background()

	assert.True(t, uc.IsActiveUser(ctx, "John Smith"))
	assert.False(t, uc.IsActiveUser(ctx, "Nobody"))
	assert.True(t, uc.IsUnconfiguredUser(ctx, "John Smith"))
	assert.False(t, uc.IsUnconfiguredUser(ctx, "Jane Doe"))
	assert.False(t, uc.IsUnconfiguredUser(ctx, "Nobody"))
}

func TestUsers_ErrorIsNotCached(t *testing.T) {
	r := &mockRepo{listErr: errors.New("connection refused")}
	uc := newUseCase(r)
	ctx := context.Background()

	_, err := uc.ActiveUsers(ctx)
	require.Error(t, err)
	assert.False(t, uc.IsActiveUser(ctx, "Jane Doe"))

	r.listErr = nil
	r.all = []string{"Jane Doe"}
	assert.True(t, uc.IsActiveUser(ctx, "Jane Doe"))
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/model"
	"task-assistant/internal/session"
	"task-assistant/internal/session/repository/memory"
	"task-assistant/pkg/log"
)

func newTestUseCase(now *time.Time) *implUseCase {
	uc := New(log.NewNop(), memory.New(0, time.Hour))
	uc.now = func() time.Time { return *now }
	return uc
}

func TestIsContinuation(t *testing.T) {
	tests := map[string]bool{
		"also add Jane Doe":               true,
		"And make it weekly":              true,
		"what else do you need":           true,
		"Create a task to pay rent":       false,
		"remind me tomorrow":              false, // "more" inside "tomorrow"
		"Ask Sandra to review the budget": false,
	}
	for msg, want := range tests {
		assert.Equal(t, want, IsContinuation(msg), msg)
	}
}

func TestManage(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&now)
	ctx := context.Background()

	s, reset, err := uc.Manage(ctx, "jdoe", "Create a task to pay rent")
	require.NoError(t, err)
	assert.True(t, reset)
	assert.Equal(t, "jdoe", s.Username)

	s.Parameters.TaskName = "Pay rent"
	s.AddMessage(model.RoleUser, "Create a task to pay rent")
	s.AddMessage(model.RoleAssistant, "Who should be assigned?")
	require.NoError(t, uc.Save(ctx, s))

	s, reset, err = uc.Manage(ctx, "jdoe", "also assign it to Jane Doe")
	require.NoError(t, err)
	assert.False(t, reset)
	assert.Equal(t, "Pay rent", s.Parameters.TaskName)
	assert.Len(t, s.History, 2)

	sum := uc.Summary(s)
	assert.True(t, sum.HasParams)
	assert.True(t, sum.HasLastPrompt)
	assert.Equal(t, 2, sum.HistoryCount)

	s, reset, err = uc.Manage(ctx, "jdoe", "Create a task to file taxes")
	require.NoError(t, err)
	assert.True(t, reset)
	assert.Empty(t, s.Parameters.TaskName)
	assert.Empty(t, s.History)

	_, _, err = uc.Manage(ctx, "", "hello")
	assert.ErrorIs(t, err, session.ErrEmptyUsername)
}

func TestPreserveOnErrorAndDelete(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&now)
	ctx := context.Background()

	s, _, err := uc.Manage(ctx, "jdoe", "Create a task")
	require.NoError(t, err)

	history := []model.Message{{Role: model.RoleUser, Content: "Create a task"}}
	uc.PreserveOnError(ctx, s, history)

	s, _, err = uc.Manage(ctx, "jdoe", "and call it Budget")
	require.NoError(t, err)
	assert.Equal(t, history, s.History)

	require.NoError(t, uc.Delete(ctx, "jdoe"))
	s, _, err = uc.Manage(ctx, "jdoe", "and more")
	require.NoError(t, err)
	assert.Empty(t, s.History)
}

func TestCleanup(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&now)
	ctx := context.Background()

	old, _, _ := uc.Manage(ctx, "old", "Create a task")
	require.NoError(t, uc.Save(ctx, old))

	now = now.Add(48 * time.Hour)
	fresh, _, _ := uc.Manage(ctx, "fresh", "Create a task")
	require.NoError(t, uc.Save(ctx, fresh))

	n, err := uc.Cleanup(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

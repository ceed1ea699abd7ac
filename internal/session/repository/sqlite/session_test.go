package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/model"
	"task-assistant/internal/session"
	"task-assistant/internal/session/repository/sqlite"
	"task-assistant/pkg/log"
	"task-assistant/pkg/schedule"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	r := sqlite.New(db, log.NewNop())

	got, err := r.GetSession(ctx, "jdoe")
	require.NoError(t, err)
	assert.Empty(t, got.Username)

	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s := session.PendingSession{
		Username: "jdoe",
		Parameters: model.TaskParameters{
			TaskName:     "Close books",
			Confidential: true,
			BatchTasks:   []string{"A", "B"},
			Record:       schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1 << 19, FreqInterval: 1},
		},
		History:    []model.Message{{Role: model.RoleUser, Content: "close books on the 20th"}},
		LastPrompt: "Who should be assigned?",
		CreatedAt:  created,
		UpdatedAt:  created,
	}
	require.NoError(t, r.UpsertSession(ctx, s))

	s.LastPrompt = ""
	s.UpdatedAt = created.Add(time.Hour)
	require.NoError(t, r.UpsertSession(ctx, s))

	got, err = r.GetSession(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, s.Parameters, got.Parameters)
	assert.Equal(t, s.History, got.History)
	assert.Empty(t, got.LastPrompt)
	assert.True(t, got.UpdatedAt.Equal(s.UpdatedAt))

	n, err := r.DeleteSessionsBefore(ctx, created.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, r.DeleteSession(ctx, "jdoe"))
}

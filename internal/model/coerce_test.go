package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"task-assistant/internal/model"
	"task-assistant/pkg/schedule"
)

func TestParametersFromJSON(t *testing.T) {
	raw := map[string]any{
		"TaskName":            " Quarterly audit ",
		"Assignees":           []any{"Ann Lee", "Bob Ray"},
		"DueDate":             "2024-06-30",
		"DueTime":             "null",
		"IsRecurring":         "yes",
		"FreqType":            "monthly",
		"FreqRecurrance":      float64(1 << 29),
		"FreqInterval":        "3",
		"BusinessDayBehavior": "sometimes",
		"AddToPriorityList":   "priority",
		"Items":               "a,b",
	}

	p := model.ParametersFromJSON(raw)
	assert.Equal(t, "Quarterly audit", p.TaskName)
	assert.Equal(t, "Ann Lee,Bob Ray", p.Assignees)
	assert.Empty(t, p.DueTime)
	assert.Equal(t, 1, p.IsRecurring)
	assert.Equal(t, schedule.FreqMonthly, p.FreqType)
	assert.Equal(t, 1<<29, p.FreqRecurrance)
	assert.Equal(t, 3, p.FreqInterval)
	assert.Equal(t, 0, p.BusinessDayBehavior)
	assert.Equal(t, 1, p.AddToPriorityList)
	assert.Equal(t, "a,b", p.Items)
}

func TestParametersFromJSONFallbacks(t *testing.T) {
	p := model.ParametersFromJSON(map[string]any{
		"FreqType":       "fortnightly",
		"FreqRecurrance": "lots",
		"FreqInterval":   true,
		"IsReminder":     "maybe",
	})
	assert.Equal(t, schedule.FreqDaily, p.FreqType)
	assert.Equal(t, 1, p.FreqRecurrance)
	assert.Equal(t, 1, p.FreqInterval)
	assert.Equal(t, 1, p.IsReminder)

	empty := model.ParametersFromJSON(map[string]any{})
	assert.True(t, empty.IsEmpty())
}

func TestPriorityFlag(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{"yes", 1},
		{true, 1},
		{float64(1), 1},
		{"Priority", 1},
		{"no", 0},
		{"whenever", 0},
		{float64(2), 0},
		{nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, model.PriorityFlag(tt.in), "%v", tt.in)
	}
}

func TestTaskCreationErrorTracking(t *testing.T) {
	cause := errors.New("connection refused")
	err := model.NewTaskCreationError("Something went wrong", "", cause).WithTrackingID("ERR_1")

	assert.Equal(t, model.CodeTaskCreationFailed, err.Code)
	assert.Equal(t, "ERR_1", err.TrackingID())
	assert.ErrorIs(t, err, cause)

	var target *model.TaskCreationError
	assert.True(t, errors.As(error(err), &target))
}

package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/completion"
	"task-assistant/internal/completion/usecase"
	"task-assistant/internal/model"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/log"
	"task-assistant/pkg/schedule"
)

type mockGenerator struct {
	content string
	err     error
	lastReq *llmprovider.Request
	calls   int
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.TextMessage("assistant", m.content),
		ProviderName: "groq",
		ModelName:    "llama3-70b-8192",
		Usage:        &llmprovider.Usage{InputTokens: 1000, OutputTokens: 100, TotalTokens: 1100},
	}, nil
}

var today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func newUseCase(gen llmprovider.Generator) completion.UseCase {
	return usecase.New(log.NewNop(), gen, completion.Config{Model: usecase.DefaultModel})
}

func TestExtract_MergesWithPreExtracted(t *testing.T) {
	gen := &mockGenerator{content: "I'll create it.\n```json\n" +
		`{"TaskName":"Weekly report","Assignees":"","IsRecurring":1,"FreqType":2,"FreqRecurrance":4,"FreqInterval":1,"AddToPriorityList":0}` +
		"\n```"}
	uc := newUseCase(gen)

	pre := model.TaskParameters{
		Assignees:         "John Smith",
		AddToPriorityList: 1,
		Confidential:      true,
		Record:            schedule.Record{IsRecurring: 1, FreqType: schedule.FreqWeekly, FreqRecurrance: 2, FreqInterval: 1},
	}

	out, err := uc.Extract(context.Background(), completion.ExtractInput{
		Message:        "Weekly report every Monday for John Smith, urgent, confidential",
		MainController: "Jane Doe",
		Today:          today,
		QuarterEnd:     time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Pre:            pre,
	})
	require.NoError(t, err)
	require.True(t, out.Parsed)

	assert.Equal(t, "Weekly report", out.Params.TaskName)
	assert.Equal(t, "John Smith", out.Params.Assignees)
	assert.Equal(t, 2, out.Params.FreqRecurrance, "recurring pre-extracted schedule wins")
	assert.Equal(t, 1, out.Params.AddToPriorityList)
	assert.True(t, out.Params.Confidential)

	require.NotNil(t, gen.lastReq.SystemInstruction)
	system := gen.lastReq.SystemInstruction.Text()
	assert.Contains(t, system, "Today is 2024-05-01")
	assert.Contains(t, system, "2024-06-30")
	assert.Contains(t, system, "HINT: I already detected:")
	assert.Equal(t, 1024, gen.lastReq.MaxTokens)
	assert.InDelta(t, 0.1, gen.lastReq.Temperature, 1e-9)
	require.Len(t, gen.lastReq.Messages, 1, "empty history falls back to the message")
}

func TestExtract_ProseReply(t *testing.T) {
	gen := &mockGenerator{content: "Who should be assigned to this task?"}

	out, err := newUseCase(gen).Extract(context.Background(), completion.ExtractInput{
		Message: "Create a task",
		Today:   today,
		History: []model.Message{{Role: model.RoleUser, Content: "Create a task"}},
	})
	require.NoError(t, err)
	assert.False(t, out.Parsed)
	assert.Equal(t, "Who should be assigned to this task?", out.Content)
}

func TestExtract_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		msg  string
	}{
		{"timeout", llmprovider.ErrProviderTimeout, model.CodeAITimeout, "Request timeout - please try again"},
		{"deadline", context.DeadlineExceeded, model.CodeAITimeout, "Request timeout - please try again"},
		{"rate limited", llmprovider.ErrProviderRateLimited, model.CodeAIRateLimited, "LLM error: rate limit exceeded"},
		{"other", errors.New("boom"), model.CodeAIRequestError, "Failed to communicate with AI service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(&mockGenerator{err: tt.err}).Extract(context.Background(), completion.ExtractInput{Message: "x", Today: today})

			var aiErr *model.AIServiceError
			require.True(t, errors.As(err, &aiErr))
			assert.Equal(t, tt.code, aiErr.Code)
			assert.Equal(t, tt.msg, aiErr.Message)
		})
	}
}

func TestMerge(t *testing.T) {
	t.Run("pre fills empty fields only", func(t *testing.T) {
		llm := model.TaskParameters{TaskName: "From model", DueTime: "10:00"}
		pre := model.TaskParameters{TaskName: "From regex", DueTime: "09:00", DueDate: "2024-05-02", Items: "a,b"}

		m := usecase.Merge(llm, pre, "anything")
		assert.Equal(t, "From model", m.TaskName)
		assert.Equal(t, "10:00", m.DueTime)
		assert.Equal(t, "2024-05-02", m.DueDate)
		assert.Equal(t, "a,b", m.Items)
	})

	t.Run("next weekday forces one-time", func(t *testing.T) {
		llm := model.TaskParameters{Record: schedule.Record{IsRecurring: 1, FreqType: schedule.FreqWeekly, FreqRecurrance: 32, FreqInterval: 1}}

		m := usecase.Merge(llm, model.TaskParameters{}, "Submit report next Friday")
		assert.Equal(t, 0, m.IsRecurring)
		assert.Equal(t, schedule.FreqNone, m.FreqType)
		assert.Equal(t, 0, m.FreqRecurrance)
		assert.Equal(t, 0, m.FreqInterval)
	})

	t.Run("model priority cannot be dropped", func(t *testing.T) {
		m := usecase.Merge(model.TaskParameters{AddToPriorityList: 0}, model.TaskParameters{AddToPriorityList: 1}, "urgent")
		assert.Equal(t, 1, m.AddToPriorityList)
	})
}

func TestMerge_Schedule(t *testing.T) {
	weeklyPre := schedule.Record{IsRecurring: 1, FreqType: schedule.FreqWeekly, FreqRecurrance: 2 | 8, FreqInterval: 2, BusinessDayBehavior: schedule.BusinessDayMove}

	tests := map[string]struct {
		llm     model.TaskParameters
		pre     model.TaskParameters
		message string
		want    schedule.Record
	}{
		"recurring pre replaces every schedule field": {
			llm: model.TaskParameters{Record: schedule.Record{
				IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1, FreqInterval: 1, BusinessDayBehavior: schedule.BusinessDaySkip,
			}},
			pre:     model.TaskParameters{Record: weeklyPre},
			message: "Team sync every other Monday and Wednesday",
			want:    weeklyPre,
		},
		"recurring pre turns a one-off model answer recurring": {
			llm:     model.TaskParameters{TaskName: "Sync"},
			pre:     model.TaskParameters{Record: weeklyPre},
			message: "Team sync every other Monday and Wednesday",
			want:    weeklyPre,
		},
		"non recurring pre keeps the model schedule": {
			llm: model.TaskParameters{Record: schedule.Record{
				IsRecurring: 1, FreqType: schedule.FreqDaily, FreqRecurrance: 1, FreqInterval: 1, BusinessDayBehavior: schedule.BusinessDaySkip,
			}},
			pre:     model.TaskParameters{},
			message: "Check balances daily",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqDaily, FreqRecurrance: 1, FreqInterval: 1, BusinessDayBehavior: schedule.BusinessDaySkip},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecase.Merge(tt.llm, tt.pre, tt.message)
			assert.Equal(t, tt.want.IsRecurring, m.IsRecurring)
			assert.Equal(t, tt.want.FreqType, m.FreqType)
			assert.Equal(t, tt.want.FreqRecurrance, m.FreqRecurrance)
			assert.Equal(t, tt.want.FreqInterval, m.FreqInterval)
			assert.Equal(t, tt.want.BusinessDayBehavior, m.BusinessDayBehavior)
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	tests := map[string]struct {
		llm     model.TaskParameters
		pre     model.TaskParameters
		message string
	}{
		"recurring pre": {
			llm: model.TaskParameters{TaskName: "Payroll", DueTime: "10:00",
				Record: schedule.Record{IsRecurring: 1, FreqType: schedule.FreqDaily, FreqRecurrance: 1, FreqInterval: 1}},
			pre: model.TaskParameters{DueDate: "2026-11-01", AddToPriorityList: 1, BatchTasks: []string{"a", "b"},
				Record: schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1, FreqInterval: 1}},
			message: "Run payroll monthly on the 1st",
		},
		"next weekday": {
			llm:     model.TaskParameters{Record: schedule.Record{IsRecurring: 1, FreqType: schedule.FreqWeekly, FreqRecurrance: 32, FreqInterval: 1}},
			pre:     model.TaskParameters{TaskName: "Submit report", DueDate: "2026-10-23"},
			message: "Submit report next Friday",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			once := usecase.Merge(tt.llm, tt.pre, tt.message)
			twice := usecase.Merge(once, tt.pre, tt.message)
			assert.Equal(t, once, twice)
		})
	}
}

func TestHint(t *testing.T) {
	assert.Empty(t, usecase.Hint(model.TaskParameters{}, "hello"))

	hint := usecase.Hint(model.TaskParameters{DueDate: "2024-05-03"}, "Call Bob next Friday")
	assert.True(t, strings.HasPrefix(hint, "\n\nHINT: I already detected: "))
	assert.Contains(t, hint, `"DueDate":"2024-05-03"`)
	assert.NotContains(t, hint, "IsRecurring", "zero values are not hinted")
	assert.Contains(t, hint, "ONE-TIME")
}

func TestParseJSON(t *testing.T) {
	got, ok := usecase.ParseJSON("Sure.\n```json\n{\"TaskName\": \"A\"}\n```")
	require.True(t, ok)
	assert.Equal(t, "A", got["TaskName"])

	got, ok = usecase.ParseJSON(`Here you go {"TaskName": "B"} thanks`)
	require.True(t, ok)
	assert.Equal(t, "B", got["TaskName"])

	_, ok = usecase.ParseJSON("What should the task be called?")
	assert.False(t, ok)

	_, ok = usecase.ParseJSON("{not json}")
	assert.False(t, ok)
}

func TestHasConditionalLogic(t *testing.T) {
	uc := newUseCase(&mockGenerator{})
	for _, msg := range []string{
		"If sales drop then email the team",
		"Ship the release after manager approval",
		"Escalate, it escalates if nobody answers",
		"This depends on the audit",
	} {
		assert.True(t, uc.HasConditionalLogic(msg), msg)
	}
	assert.False(t, uc.HasConditionalLogic("Send the weekly report every Monday"))
}

func TestTimeoutAndCost(t *testing.T) {
	assert.Equal(t, 30*time.Second, usecase.Timeout("short", model.TaskParameters{}))

	pre := model.TaskParameters{
		BatchTasks: []string{"a", "b"},
		Record:     schedule.Record{IsRecurring: 1, FreqType: schedule.FreqYearly, FreqRecurrance: 4, FreqInterval: 1},
	}
	assert.Equal(t, 75*time.Second, usecase.Timeout(strings.Repeat("x", 201), pre))

	assert.InDelta(t, 0.00059+0.000079, usecase.TokenCost("llama3-70b-8192", 1000, 100), 1e-12)
	assert.InDelta(t, 0.00005+0.00001, usecase.TokenCost("llama3-8b-8192", 1000, 100), 1e-12)
	assert.InDelta(t, usecase.TokenCost("llama3-70b", 10, 10), usecase.TokenCost("unknown", 10, 10), 1e-12)
}

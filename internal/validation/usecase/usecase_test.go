package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/directory"
	"task-assistant/internal/model"
	"task-assistant/internal/validation"
	"task-assistant/internal/validation/usecase"
	"task-assistant/pkg/log"
	"task-assistant/pkg/schedule"
)

type mockDirectory struct {
	active       []string
	unconfigured []string
	lookup       directory.GroupLookup
	lookupErr    error
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (m *mockDirectory) GroupExists(ctx context.Context, name string) (bool, error) {
	return m.lookup.Exists, m.lookupErr
}
func (m *mockDirectory) SimilarGroups(ctx context.Context, name string) ([]string, error) {
	return m.lookup.Similar, m.lookupErr
}
func (m *mockDirectory) LookupGroup(ctx context.Context, name string) (directory.GroupLookup, error) {
	return m.lookup, m.lookupErr
}
func (m *mockDirectory) ActiveUsers(ctx context.Context) ([]string, error)     { return m.active, nil }
func (m *mockDirectory) ConfiguredUsers(ctx context.Context) ([]string, error) { return m.active, nil }
func (m *mockDirectory) IsActiveUser(ctx context.Context, name string) bool {
	return contains(m.active, name)
}
func (m *mockDirectory) IsUnconfiguredUser(ctx context.Context, name string) bool {
	return contains(m.unconfigured, name)
}
func (m *mockDirectory) InvalidateCache() {}

func newUseCase(dir directory.UseCase) validation.UseCase {
	return usecase.New(log.NewNop(), dir)
}

func requireCode(t *testing.T, err error, code string) *model.ValidationError {
	t.Helper()
	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, code, vErr.Code)
	return vErr
}

func TestValidateMessage(t *testing.T) {
	uc := newUseCase(nil)

	tests := []struct {
		name    string
		message string
		code    string
	}{
		{"ok", "Create a task to review invoices", ""},
		{"empty", "   ", model.CodeEmptyMessage},
		{"too long", strings.Repeat("a ", 2501), model.CodeMessageTooLong},
		{"script", "<script>alert(1)</script>", model.CodeUnsafeContent},
		{"javascript scheme", "open JavaScript:void(0)", model.CodeUnsafeContent},
		{"event handler", `<img onerror = "x">`, model.CodeUnsafeContent},
		{"eval", "please eval (this)", model.CodeUnsafeContent},
		{"long word", "task " + strings.Repeat("x", 101), model.CodeUnsafeContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.ValidateMessage(tt.message)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			requireCode(t, err, tt.code)
		})
	}
}

func TestValidateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("active user bypasses lookup", func(t *testing.T) {
		uc := newUseCase(&mockDirectory{active: []string{"Jane Doe"}, lookupErr: errors.New("unused")})
		got, err := uc.ValidateGroup(ctx, "Jane Doe")
		require.NoError(t, err)
		assert.True(t, got.Exists)
	})

	t.Run("unconfigured user", func(t *testing.T) {
		uc := newUseCase(&mockDirectory{unconfigured: []string{"Bob Stone"}})
		_, err := uc.ValidateGroup(ctx, "Bob Stone")
		vErr := requireCode(t, err, model.CodeInvalidGroup)
		assert.Contains(t, vErr.Message, "is not configured for task creation")
	})

	t.Run("suggestions", func(t *testing.T) {
		uc := newUseCase(&mockDirectory{lookup: directory.GroupLookup{
			Similar: []string{"Finance A", "Finance B", "Finance C", "Finance D"},
		}})
		_, err := uc.ValidateGroup(ctx, "Finance")
		vErr := requireCode(t, err, model.CodeInvalidGroup)
		assert.Equal(t, `"Finance" is not a valid group. Did you mean one of these: Finance A, Finance B, Finance C?`, vErr.Message)
	})

	t.Run("not found", func(t *testing.T) {
		uc := newUseCase(&mockDirectory{})
		_, err := uc.ValidateGroup(ctx, "Nobody")
		vErr := requireCode(t, err, model.CodeInvalidGroup)
		assert.Contains(t, vErr.Message, "is not found in the system")
	})

	t.Run("lookup failure", func(t *testing.T) {
		uc := newUseCase(&mockDirectory{lookupErr: errors.New("connection refused")})
		_, err := uc.ValidateGroup(ctx, "Finance")
		vErr := requireCode(t, err, model.CodeInvalidGroup)
		assert.Equal(t, "Unable to validate group 'Finance'. Please try again.", vErr.Message)
	})
}

func TestValidateParameters(t *testing.T) {
	uc := newUseCase(nil)
	valid := model.TaskParameters{TaskName: "Review invoices", Assignees: "Jane Doe, John Smith"}

	require.NoError(t, uc.ValidateParameters(valid))

	p := valid
	p.TaskName = ""
	vErr := requireCode(t, uc.ValidateParameters(p), model.CodeMissingTaskName)
	assert.Equal(t, validation.MsgMissingTaskName, vErr.Message)

	p = valid
	p.Assignees = ""
	requireCode(t, uc.ValidateParameters(p), model.CodeMissingAssignees)

	p = valid
	p.TaskName = "Fix <b>"
	requireCode(t, uc.ValidateParameters(p), model.CodeInvalidTaskName)

	p = valid
	p.Assignees = "Jane Doe, J0hn"
	requireCode(t, uc.ValidateParameters(p), model.CodeInvalidAssignees)

	p = valid
	p.Record = schedule.Record{IsRecurring: 1, FreqRecurrance: 1, FreqInterval: 1}
	vErr = requireCode(t, uc.ValidateParameters(p), model.CodeMissingRecurring)
	assert.Contains(t, vErr.Message, "FreqType")

	p = valid
	p.Items = "step one, <script>x</script>"
	requireCode(t, uc.ValidateParameters(p), model.CodeUnsafeContent)
}

func TestValidateTaskName(t *testing.T) {
	uc := newUseCase(nil)

	assert.NoError(t, uc.ValidateTaskName("Pay"))
	requireCode(t, uc.ValidateTaskName("ab"), model.CodeInvalidTaskName)
	requireCode(t, uc.ValidateTaskName(strings.Repeat("a", 201)), model.CodeInvalidTaskName)

	vErr := requireCode(t, uc.ValidateTaskName(`Pay "rent" | now`), model.CodeInvalidTaskName)
	assert.Equal(t, `Task name contains invalid characters: ", |. Please remove these characters and try again.`, vErr.Message)
}

func TestValidateAssignees(t *testing.T) {
	uc := newUseCase(nil)

	names, err := uc.ValidateAssignees("Jane Doe, J. R. Smith-Jones,")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "J. R. Smith-Jones"}, names)

	requireCode(t, firstErr(uc.ValidateAssignees("A")), model.CodeInvalidAssignees)
	requireCode(t, firstErr(uc.ValidateAssignees(strings.Repeat("Al,", 11))), model.CodeInvalidAssignees)
	requireCode(t, firstErr(uc.ValidateAssignees(" ")), model.CodeMissingAssignees)
}

func firstErr(_ []string, err error) error { return err }

func TestValidateRecurring(t *testing.T) {
	uc := newUseCase(nil)
	rec := func(ft schedule.FreqType, mask, interval, bdb int) schedule.Record {
		return schedule.Record{IsRecurring: 1, FreqType: ft, FreqRecurrance: mask, FreqInterval: interval, BusinessDayBehavior: bdb}
	}

	tests := []struct {
		name string
		rec  schedule.Record
		ok   bool
	}{
		{"non recurring", schedule.Record{}, true},
		{"daily", rec(schedule.FreqDaily, 1, 1, 1), true},
		{"daily mask", rec(schedule.FreqDaily, 2, 1, 0), false},
		{"weekly", rec(schedule.FreqWeekly, 127, 2, 0), true},
		{"weekly overflow", rec(schedule.FreqWeekly, 128, 1, 0), false},
		{"monthly large", rec(schedule.FreqMonthly, 1<<30, 1, 0), true},
		{"yearly legacy overflow", rec(schedule.FreqYearlyLegacy, 4096, 1, 0), false},
		{"yearly", rec(schedule.FreqYearly, 4095, 1, 0), true},
		{"yearly overflow", rec(schedule.FreqYearly, 5000, 1, 0), false},
		{"annual date", rec(schedule.FreqAnnualDate, 1<<20, 1, 0), true},
		{"bad type", rec(7, 1, 1, 0), false},
		{"zero mask", rec(schedule.FreqMonthly, 0, 1, 0), false},
		{"interval", rec(schedule.FreqMonthly, 1, 366, 0), false},
		{"bdb", rec(schedule.FreqMonthly, 1, 1, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.ValidateRecurring(tt.rec)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			requireCode(t, err, model.CodeInvalidRecurring)
		})
	}
}

func TestValidateChecklist(t *testing.T) {
	uc := newUseCase(nil)

	items, err := uc.ValidateChecklist("gather receipts, file report ,")
	require.NoError(t, err)
	assert.Equal(t, []string{"gather receipts", "file report"}, items)

	requireCode(t, firstErr(uc.ValidateChecklist(strings.Repeat("x,", 51))), model.CodeInvalidChecklist)
	requireCode(t, firstErr(uc.ValidateChecklist(strings.Repeat("y", 201))), model.CodeInvalidChecklist)
}

func TestValidateDateAndTime(t *testing.T) {
	uc := newUseCase(nil)
	today := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want string
		code string
	}{
		{"2024-05-01", "2024-05-01", ""},
		{"5/20/2024", "2024-05-20", ""},
		{"05-20-2024", "2024-05-20", ""},
		{"25/12/2024", "2024-12-25", ""},
		{"2024-04-30", "", model.CodePastDate},
		{"next-ish", "", model.CodeInvalidDate},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := uc.ValidateDate(tt.in, today)
			if tt.code != "" {
				requireCode(t, err, tt.code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.NoError(t, uc.ValidateTime("14:30"))
	assert.NoError(t, uc.ValidateTime("9:05"))
	requireCode(t, uc.ValidateTime("25:00"), model.CodeInvalidTime)
	requireCode(t, uc.ValidateTime("3pm"), model.CodeInvalidTime)
}

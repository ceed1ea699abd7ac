package validation

import (
	"context"
	"time"

	"task-assistant/internal/directory"
	"task-assistant/internal/model"
	"task-assistant/pkg/schedule"
)

// UseCase checks user input and extracted parameters. Every failure is a
// *model.ValidationError whose message can be shown to the user as is.
type UseCase interface {
	// ValidateMessage checks length and content safety of a chat message.
	ValidateMessage(message string) error
	ValidateContentSafety(content string) error
	// ValidateGroup accepts active users directly and otherwise requires the
	// group to exist in the directory.
	ValidateGroup(ctx context.Context, name string) (directory.GroupLookup, error)

	// ValidateParameters runs the required-field, name, assignee, recurrence
	// and checklist checks in that order.
	ValidateParameters(params model.TaskParameters) error
	ValidateRequired(params model.TaskParameters) error
	ValidateTaskName(name string) error
	ValidateAssignees(assignees string) ([]string, error)
	ValidateRecurring(rec schedule.Record) error
	ValidateChecklist(items string) ([]string, error)

	// ValidateDate parses one of the accepted layouts, rejects days before
	// today and returns the date as YYYY-MM-DD.
	ValidateDate(date string, today time.Time) (string, error)
	ValidateTime(clock string) error
}

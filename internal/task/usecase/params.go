package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"task-assistant/internal/model"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/schedule"
)

const confidentialPrefix = "[CONFIDENTIAL]"

var (
	withNamesRe = regexp.MustCompile(`with\s+([A-Z][a-z]+\s+[A-Z][a-z]+)(?:\s+and\s+([A-Z][a-z]+\s+[A-Z][a-z]+))?`)
	forNameRe   = regexp.MustCompile(`for\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`)
	toNameRe    = regexp.MustCompile(`to\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`)
)

// overlay applies the parameters extracted this turn on top of those kept in
// the session. The schedule always comes from the latest extraction, which
// saw the whole conversation.
func overlay(base, upd model.TaskParameters) model.TaskParameters {
	out := base
	setStr := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}

	setStr(&out.TaskName, upd.TaskName)
	setStr(&out.MainController, upd.MainController)
	setStr(&out.Controllers, upd.Controllers)
	setStr(&out.Assignees, upd.Assignees)
	setStr(&out.DueDate, upd.DueDate)
	setStr(&out.LocalDueDate, upd.LocalDueDate)
	setStr(&out.Location, upd.Location)
	setStr(&out.DueTime, upd.DueTime)
	setStr(&out.SoftDueDate, upd.SoftDueDate)
	setStr(&out.FinalDueDate, upd.FinalDueDate)
	setStr(&out.Items, upd.Items)
	setStr(&out.ReminderDate, upd.ReminderDate)
	setInt(&out.Activate, upd.Activate)
	setInt(&out.IsReminder, upd.IsReminder)
	setInt(&out.AddToPriorityList, upd.AddToPriorityList)

	out.Record = upd.Record
	out.Confidential = upd.Confidential
	out.OverrideController = upd.OverrideController
	out.MultiControllers = upd.MultiControllers
	out.SourceTimezone = upd.SourceTimezone
	out.ReminderOffsetHours = upd.ReminderOffsetHours
	out.BatchTasks = upd.BatchTasks
	return out
}

// applySmartDefaults defaults the controllers and normalizes the schedule:
// one-time tasks carry no schedule, recurring ones repeat at least once per unit.
func applySmartDefaults(params model.TaskParameters, mainController string) model.TaskParameters {
	if params.Controllers == "" {
		params.Controllers = mainController
	}
	if params.IsRecurring != 1 {
		params.Record = schedule.Record{}
		return params
	}
	if params.FreqInterval == 0 {
		params.FreqInterval = 1
	}
	if params.FreqRecurrance == 0 {
		params.FreqRecurrance = 1
	}
	return params
}

// applyFallbackExtraction fills the assignees and the priority flag from the
// raw message when the model left them out.
func (uc *implUseCase) applyFallbackExtraction(ctx context.Context, params model.TaskParameters, message, mainController string) model.TaskParameters {
	lower := strings.ToLower(message)

	if params.Assignees == "" {
		if strings.Contains(lower, "remind me") {
			params.Assignees = mainController
			uc.l.Debugf(ctx, "task.usecase.applyFallbackExtraction: 'remind me' -> Assignees=%q", mainController)
		} else if names := fallbackAssignees(message); names != "" {
			params.Assignees = names
			uc.l.Debugf(ctx, "task.usecase.applyFallbackExtraction: Assignees=%q", names)
		}
	}

	if params.AddToPriorityList != 1 &&
		(strings.Contains(lower, "priority list") || strings.Contains(lower, "add to priority")) {
		params.AddToPriorityList = 1
	}
	return params
}

func fallbackAssignees(message string) string {
	if m := withNamesRe.FindStringSubmatch(message); m != nil {
		if m[2] != "" {
			return m[1] + "," + m[2]
		}
		return m[1]
	}
	for _, re := range []*regexp.Regexp{forNameRe, toNameRe} {
		if m := re.FindStringSubmatch(message); m != nil {
			return m[1]
		}
	}
	return ""
}

// applyBusinessRules applies what the pre-extraction detected beyond plain
// fields: confidentiality and controller substitutions.
func (uc *implUseCase) applyBusinessRules(ctx context.Context, params, pre model.TaskParameters) model.TaskParameters {
	if pre.Confidential && params.TaskName != "" && !strings.HasPrefix(params.TaskName, confidentialPrefix) {
		params.TaskName = confidentialPrefix + " " + params.TaskName
	}
	if pre.OverrideController != "" {
		params.Controllers = pre.OverrideController
	}
	if pre.MultiControllers != "" {
		params.Controllers = pre.MultiControllers
	}
	if pre.SourceTimezone != "" {
		uc.l.Debugf(ctx, "task.usecase.applyBusinessRules: source timezone %s noted, times are kept as given", pre.SourceTimezone)
	}
	params.ReminderOffsetHours = pre.ReminderOffsetHours
	return params
}

// processDatesAndTimes resolves natural-language dates and times, rejects
// malformed or past values and applies the due date/time defaults.
func (uc *implUseCase) processDatesAndTimes(params model.TaskParameters, t turn) (model.TaskParameters, error) {
	var err error
	if params.DueDate, err = uc.resolveDate(params.DueDate, t); err != nil {
		return params, err
	}
	if params.SoftDueDate, err = uc.resolveDate(params.SoftDueDate, t); err != nil {
		return params, err
	}
	if params.DueTime != "" {
		if clock, ok := t.parser.ParseTime(params.DueTime); ok {
			params.DueTime = clock
		} else if err := uc.validator.ValidateTime(params.DueTime); err != nil {
			return params, err
		}
	}

	d := t.parser.ApplyDefaults(params.TaskName, datemath.Defaults{
		DueDate:     params.DueDate,
		DueTime:     params.DueTime,
		SoftDueDate: params.SoftDueDate,
	})
	params.DueDate = d.DueDate
	params.DueTime = d.DueTime
	params.LocalDueDate = d.LocalDueDate
	params.SoftDueDate = d.SoftDueDate
	return params, nil
}

func (uc *implUseCase) resolveDate(date string, t turn) (string, error) {
	if date == "" {
		return "", nil
	}
	if parsed, ok := t.parser.ParseDate(date); ok {
		date = parsed
	}
	return uc.validator.ValidateDate(date, t.today)
}

// applyReminderOffset sets the reminder date from a "notification N hours
// before" request. It needs the resolved due date and time. Only the date
// moves; the reminder is stored at the due time, so offsets under a day
// remind on the due date.
func (uc *implUseCase) applyReminderOffset(ctx context.Context, params model.TaskParameters) model.TaskParameters {
	if params.ReminderOffsetHours <= 0 {
		return params
	}
	date, err := datemath.ReminderDate(params.DueDate, params.DueTime, params.ReminderOffsetHours)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.applyReminderOffset: %v", err)
		return params
	}
	params.ReminderDate = date
	params.IsReminder = 1
	return params
}

// setAutomaticFields fills the fields the user never provides.
func setAutomaticFields(params model.TaskParameters, timezone string, today time.Time) model.TaskParameters {
	tomorrow := today.AddDate(0, 0, 1).Format(datemath.DateLayout)

	params.Location = timezone
	params.Activate = 1
	if params.IsReminder == 0 {
		params.IsReminder = 1
	}
	if params.ReminderDate == "" {
		params.ReminderDate = tomorrow
		if due, err := time.Parse(datemath.DateLayout, params.DueDate); err == nil {
			params.ReminderDate = due.AddDate(0, 0, -1).Format(datemath.DateLayout)
		}
	}
	params.FinalDueDate = params.DueDate
	if params.FinalDueDate == "" {
		params.FinalDueDate = tomorrow
	}
	return params
}

// coerceFlags clamps the 0/1 fields.
func coerceFlags(params model.TaskParameters) model.TaskParameters {
	params.IsRecurring = flag(params.IsRecurring)
	params.IsReminder = flag(params.IsReminder)
	params.AddToPriorityList = flag(params.AddToPriorityList)
	if params.FreqType == schedule.FreqNone && params.IsRecurring == 1 {
		params.FreqType = schedule.FreqDaily
	}
	return params
}

func flag(n int) int {
	if n == 1 {
		return 1
	}
	return 0
}

package usecase

import (
	"task-assistant/internal/model"
	"task-assistant/pkg/schedule"
)

// Merge combines the model's parameters with the pre-extracted ones:
//   - a recurring pre-extracted schedule replaces the model's schedule fields;
//   - any other pre-extracted value fills a field the model left empty;
//   - a pre-extracted priority flag always wins;
//   - "next <weekday>" messages are forced to one-time.
//
// Extraction-only fields always come from pre.
func Merge(llm, pre model.TaskParameters, message string) model.TaskParameters {
	m := llm

	if pre.Recurring() {
		m.Record = pre.Record
	} else {
		m.IsRecurring = fillInt(m.IsRecurring, pre.IsRecurring)
		m.FreqType = schedule.FreqType(fillInt(int(m.FreqType), int(pre.FreqType)))
		m.FreqRecurrance = fillInt(m.FreqRecurrance, pre.FreqRecurrance)
		m.FreqInterval = fillInt(m.FreqInterval, pre.FreqInterval)
		m.BusinessDayBehavior = fillInt(m.BusinessDayBehavior, pre.BusinessDayBehavior)
	}

	m.TaskName = fillStr(m.TaskName, pre.TaskName)
	m.MainController = fillStr(m.MainController, pre.MainController)
	m.Controllers = fillStr(m.Controllers, pre.Controllers)
	m.Assignees = fillStr(m.Assignees, pre.Assignees)
	m.DueDate = fillStr(m.DueDate, pre.DueDate)
	m.LocalDueDate = fillStr(m.LocalDueDate, pre.LocalDueDate)
	m.Location = fillStr(m.Location, pre.Location)
	m.DueTime = fillStr(m.DueTime, pre.DueTime)
	m.SoftDueDate = fillStr(m.SoftDueDate, pre.SoftDueDate)
	m.FinalDueDate = fillStr(m.FinalDueDate, pre.FinalDueDate)
	m.Items = fillStr(m.Items, pre.Items)
	m.ReminderDate = fillStr(m.ReminderDate, pre.ReminderDate)
	m.Activate = fillInt(m.Activate, pre.Activate)
	m.IsReminder = fillInt(m.IsReminder, pre.IsReminder)

	if pre.AddToPriorityList == 1 {
		m.AddToPriorityList = 1
	}

	m.Confidential = pre.Confidential
	m.OverrideController = pre.OverrideController
	m.MultiControllers = pre.MultiControllers
	m.SourceTimezone = pre.SourceTimezone
	m.ReminderOffsetHours = pre.ReminderOffsetHours
	m.BatchTasks = pre.BatchTasks

	if mentionsNextWeekday(message) {
		m.IsRecurring = 0
		m.FreqType = schedule.FreqNone
		m.FreqRecurrance = 0
		m.FreqInterval = 0
	}

	return m
}

func fillStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func fillInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

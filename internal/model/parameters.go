package model

import (
	"task-assistant/pkg/schedule"
)

// TaskParameters accumulates everything known about the task being created in
// the current conversation. The zero value of every field means "not set".
type TaskParameters struct {
	TaskName       string `json:"TaskName,omitempty"`
	MainController string `json:"MainController,omitempty"`
	Controllers    string `json:"Controllers,omitempty"`
	Assignees      string `json:"Assignees,omitempty"`
	DueDate        string `json:"DueDate,omitempty"`
	LocalDueDate   string `json:"LocalDueDate,omitempty"`
	Location       string `json:"Location,omitempty"`
	DueTime        string `json:"DueTime,omitempty"`
	SoftDueDate    string `json:"SoftDueDate,omitempty"`
	FinalDueDate   string `json:"FinalDueDate,omitempty"`
	Items          string `json:"Items,omitempty"`

	schedule.Record

	Activate          int    `json:"Activate,omitempty"`
	IsReminder        int    `json:"IsReminder,omitempty"`
	ReminderDate      string `json:"ReminderDate,omitempty"`
	AddToPriorityList int    `json:"AddToPriorityList,omitempty"`

	// Extraction-only fields. They steer business rules and never reach the store.
	Confidential        bool     `json:"_is_confidential,omitempty"`
	OverrideController  string   `json:"_override_controller,omitempty"`
	MultiControllers    string   `json:"_multi_controllers,omitempty"`
	SourceTimezone      string   `json:"_source_timezone,omitempty"`
	ReminderOffsetHours float64  `json:"_reminder_offset_hours,omitempty"`
	BatchTasks          []string `json:"_batch_tasks,omitempty"`
}

// Schedule returns the embedded recurrence record.
func (p TaskParameters) Schedule() schedule.Record {
	return p.Record
}

// IsBatch reports whether several task names were requested at once.
func (p TaskParameters) IsBatch() bool {
	return len(p.BatchTasks) > 0
}

// IsEmpty reports whether nothing has been extracted yet.
func (p TaskParameters) IsEmpty() bool {
	return p.TaskName == "" && p.Assignees == "" && p.DueDate == "" && p.DueTime == "" &&
		p.Items == "" && p.Record == (schedule.Record{}) && p.AddToPriorityList == 0 &&
		p.IsReminder == 0 && !p.Confidential && p.OverrideController == "" &&
		p.MultiControllers == "" && p.SourceTimezone == "" && p.ReminderOffsetHours == 0 &&
		len(p.BatchTasks) == 0 && p.Controllers == "" && p.SoftDueDate == ""
}

// ToMap renders the store-facing fields, including zero values, for debug output.
func (p TaskParameters) ToMap() map[string]any {
	return map[string]any{
		"TaskName":            p.TaskName,
		"MainController":      p.MainController,
		"Controllers":         p.Controllers,
		"Assignees":           p.Assignees,
		"DueDate":             p.DueDate,
		"LocalDueDate":        p.LocalDueDate,
		"Location":            p.Location,
		"DueTime":             p.DueTime,
		"SoftDueDate":         p.SoftDueDate,
		"FinalDueDate":        p.FinalDueDate,
		"Items":               p.Items,
		"IsRecurring":         p.IsRecurring,
		"FreqType":            int(p.FreqType),
		"FreqRecurrance":      p.FreqRecurrance,
		"FreqInterval":        p.FreqInterval,
		"BusinessDayBehavior": p.BusinessDayBehavior,
		"Activate":            p.Activate,
		"IsReminder":          p.IsReminder,
		"ReminderDate":        p.ReminderDate,
		"AddToPriorityList":   p.AddToPriorityList,
	}
}

// Role of a conversation message.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn of the conversation kept in a pending session.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

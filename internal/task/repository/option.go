package repository

// CreateTaskOptions is the argument list of the store's task creation routine.
// Dates are "YYYY-MM-DD HH:MM:00"; DueTime is HH*100+MM.
type CreateTaskOptions struct {
	TaskName            string
	MainController      string
	Controllers         string
	Assignees           string
	DueDate             string
	LocalDueDate        string
	Location            string
	DueTime             int
	SoftDueDate         string
	FinalDueDate        string
	Items               string
	IsRecurring         int
	FreqType            int
	FreqRecurrance      int
	FreqInterval        int
	BusinessDayBehavior int
	Activate            int
	IsReminder          int
	ReminderDate        string
	AddToPriorityList   int
}

// Args returns the routine arguments in positional order.
func (o CreateTaskOptions) Args() []any {
	return []any{
		o.TaskName,
		o.MainController,
		o.Controllers,
		o.Assignees,
		o.DueDate,
		o.LocalDueDate,
		o.Location,
		o.DueTime,
		o.SoftDueDate,
		o.FinalDueDate,
		o.Items,
		o.IsRecurring,
		o.FreqType,
		o.FreqRecurrance,
		o.FreqInterval,
		o.BusinessDayBehavior,
		o.Activate,
		o.IsReminder,
		o.ReminderDate,
		o.AddToPriorityList,
	}
}

// AddToPriorityListOptions identifies a priority list entry.
type AddToPriorityListOptions struct {
	UserID            int64
	ActiveChecklistID int64
}

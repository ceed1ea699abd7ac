package validation

// User-facing messages without parameters.
const (
	MsgEmptyMessage     = "Please provide a message describing the task you'd like to create."
	MsgMissingTaskName  = "I need to know what task to create. What would you like to name this task?"
	MsgMissingAssignees = "Who should be assigned to this task? Please provide one or more names (comma-separated if multiple)."
	MsgUnsafeContent    = "Your message contains content that appears to be code or scripting. " +
		"Please provide a simple description of the task you'd like to create."
	MsgEmptyTaskName   = "Task name cannot be empty."
	MsgEmptyAssignees  = "At least one assignee must be specified."
	MsgEmptyGroup      = "Group name cannot be empty."
	MsgInvalidFreqType = "Invalid frequency type. Please specify one of: daily, weekly, monthly, yearly."
)

package errtrack

import (
	"errors"
	"fmt"

	"task-assistant/internal/model"
	repo "task-assistant/internal/task/repository"
)

// Messages shown to the user in place of internal failures.
const (
	MsgDatabaseConnection = "I'm having trouble connecting to the database right now. Please try again in a moment."
	MsgDatabaseGeneric    = "There was a problem with the database operation. " +
		"Please try again or contact support if the issue persists."
	MsgAITimeout     = "The AI service is taking longer than usual to respond. Please try again with a simpler request."
	MsgAIRateLimited = "I'm receiving too many requests right now. Please wait a moment and try again."
	MsgAIInvalid     = "I had trouble understanding your request. Could you please rephrase it more clearly?"
	MsgAIGeneric     = "I'm having trouble processing your request right now. Please try again in a moment."
	MsgGeneric       = "Something went wrong while processing your request. " +
		"Please try again or contact support if the issue persists."
)

// FormatUserError turns err into a message that is safe to show the user.
func FormatUserError(err error, fc FormatContext) string {
	switch e := err.(type) {
	case *model.ValidationError:
		return e.Message
	case *model.TaskCreationError:
		return e.Message
	}

	var aiErr *model.AIServiceError
	if errors.As(err, &aiErr) {
		return formatAIError(aiErr)
	}

	var (
		dbErr *model.DatabaseError
		rErr  *repo.Error
	)
	if errors.As(err, &dbErr) || errors.As(err, &rErr) {
		return formatDatabaseError(err, fc)
	}
	return MsgGeneric
}

func formatDatabaseError(err error, fc FormatContext) string {
	user := fc.UserFullName
	if user == "" {
		user = "Unknown User"
	}
	task := fc.TaskName
	if task == "" {
		task = "the task"
	}

	switch repo.KindOf(err) {
	case repo.KindManagerGroupMissing:
		return fmt.Sprintf("I'm sorry, but I couldn't create the task because the user account "+
			"'%s' isn't fully configured in the system. Please try one of these options:\n\n"+
			"• Use a different user account\n"+
			"• Specify who should be assigned the task (e.g., 'assign to John Smith')\n"+
			"• Contact your administrator to complete the setup for '%s'", user, user)
	case repo.KindDuplicateName:
		return fmt.Sprintf("A task named '%s' already exists. Please try:\n\n"+
			"• Using a different task name\n"+
			"• Adding more details to make it unique (e.g., 'follow up email - client ABC')\n"+
			"• Including a date or project name", task)
	case repo.KindConnection:
		return MsgDatabaseConnection
	case repo.KindMonthlyDayLimitation:
		return MonthlyDayLimitationMessage(fc.Day)
	default:
		return MsgDatabaseGeneric
	}
}

func formatAIError(err *model.AIServiceError) string {
	switch err.Code {
	case model.CodeAITimeout:
		return MsgAITimeout
	case model.CodeAIRateLimited:
		return MsgAIRateLimited
	case model.CodeAIInvalidFormat:
		return MsgAIInvalid
	default:
		return MsgAIGeneric
	}
}

// MonthlyDayLimitationMessage explains why a monthly task on day 15..31
// could not be stored and what to do instead.
func MonthlyDayLimitationMessage(day int) string {
	on := "that day"
	if day > 0 {
		on = fmt.Sprintf("'on the %dth'", day)
	}
	return fmt.Sprintf("I'm sorry, but there's currently a known limitation with monthly tasks scheduled "+
		"for days 15-31. Your request for %s cannot be processed at this time.\n\n"+
		"**Workaround options:**\n"+
		"1. Use 'every month' for a simple monthly schedule\n"+
		"2. Schedule for days 1-14 instead\n"+
		"3. Create separate tasks for different time periods\n\n"+
		"Our team is working on a permanent solution. Thank you for your understanding.", on)
}

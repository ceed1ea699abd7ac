package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"task-assistant/internal/model"
	"task-assistant/internal/validation"
	"task-assistant/pkg/schedule"
)

var (
	assigneeNameRe   = regexp.MustCompile(`^[a-zA-Z\s.\-]+$`)
	invalidNameChars = []string{"<", ">", `"`, "'", `\`, "|", "\x00"}
)

func (uc *implUseCase) ValidateParameters(params model.TaskParameters) error {
	if err := uc.ValidateRequired(params); err != nil {
		return err
	}
	if err := uc.ValidateTaskName(params.TaskName); err != nil {
		return err
	}
	if _, err := uc.ValidateAssignees(params.Assignees); err != nil {
		return err
	}
	if params.Recurring() {
		if err := uc.ValidateRecurring(params.Record); err != nil {
			return err
		}
	}
	if params.Items != "" {
		if _, err := uc.ValidateChecklist(params.Items); err != nil {
			return err
		}
	}
	return nil
}

func (uc *implUseCase) ValidateRequired(params model.TaskParameters) error {
	if strings.TrimSpace(params.TaskName) == "" {
		return model.NewValidationError(validation.MsgMissingTaskName, model.CodeMissingTaskName)
	}
	if strings.TrimSpace(params.Assignees) == "" {
		return model.NewValidationError(validation.MsgMissingAssignees, model.CodeMissingAssignees)
	}
	if !params.Recurring() {
		return nil
	}

	var missing []string
	if params.FreqType == schedule.FreqNone {
		missing = append(missing, "FreqType")
	}
	if params.FreqRecurrance == 0 {
		missing = append(missing, "FreqRecurrance")
	}
	if params.FreqInterval == 0 {
		missing = append(missing, "FreqInterval")
	}
	if len(missing) > 0 {
		return model.NewValidationError(
			"I need a bit more information for the recurring schedule: "+strings.Join(missing, ", "),
			model.CodeMissingRecurring,
		)
	}
	return nil
}

func (uc *implUseCase) ValidateTaskName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.NewValidationError(validation.MsgEmptyTaskName, model.CodeInvalidTaskName)
	}

	n := utf8.RuneCountInString(name)
	if n < validation.MinTaskNameLength {
		return model.NewValidationError(fmt.Sprintf(
			"Task name is too short. Please provide at least %d characters.", validation.MinTaskNameLength,
		), model.CodeInvalidTaskName)
	}
	if n > validation.MaxTaskNameLength {
		return model.NewValidationError(fmt.Sprintf(
			"Task name is too long (%d characters). Please keep it under %d characters.", n, validation.MaxTaskNameLength,
		), model.CodeInvalidTaskName)
	}

	var found []string
	for _, c := range invalidNameChars {
		if strings.Contains(name, c) {
			found = append(found, c)
		}
	}
	if len(found) > 0 {
		return model.NewValidationError(fmt.Sprintf(
			"Task name contains invalid characters: %s. Please remove these characters and try again.",
			strings.Join(found, ", "),
		), model.CodeInvalidTaskName)
	}
	return nil
}

func (uc *implUseCase) ValidateAssignees(assignees string) ([]string, error) {
	if strings.TrimSpace(assignees) == "" {
		return nil, model.NewValidationError(validation.MsgEmptyAssignees, model.CodeMissingAssignees)
	}

	names := splitList(assignees)
	if len(names) == 0 {
		return nil, model.NewValidationError("Please provide valid assignee names.", model.CodeInvalidAssignees)
	}
	if len(names) > validation.MaxAssignees {
		return nil, model.NewValidationError(fmt.Sprintf(
			"Too many assignees (%d). Maximum allowed is %d.", len(names), validation.MaxAssignees,
		), model.CodeInvalidAssignees)
	}

	for _, name := range names {
		n := utf8.RuneCountInString(name)
		switch {
		case n < validation.MinAssigneeLength:
			return nil, model.NewValidationError(
				fmt.Sprintf("Assignee name '%s' is too short.", name), model.CodeInvalidAssignees)
		case n > validation.MaxAssigneeLength:
			return nil, model.NewValidationError(
				fmt.Sprintf("Assignee name '%s' is too long.", name), model.CodeInvalidAssignees)
		case !assigneeNameRe.MatchString(name):
			return nil, model.NewValidationError(fmt.Sprintf(
				"Assignee name '%s' contains invalid characters. Please use only letters, spaces, periods, and hyphens.", name,
			), model.CodeInvalidAssignees)
		}
	}
	return names, nil
}

func (uc *implUseCase) ValidateRecurring(rec schedule.Record) error {
	if !rec.Recurring() {
		return nil
	}
	if rec.FreqType < schedule.FreqDaily || rec.FreqType > schedule.FreqYearly {
		return model.NewValidationError(validation.MsgInvalidFreqType, model.CodeInvalidRecurring)
	}

	mask := rec.FreqRecurrance
	if mask < 1 {
		return invalidRecurring("Frequency recurrence must be a positive integer. Got: %d", mask)
	}
	switch rec.FreqType {
	case schedule.FreqDaily:
		if mask != 1 {
			return invalidRecurring("Daily tasks must have FreqRecurrance = 1. Got: %d", mask)
		}
	case schedule.FreqWeekly:
		if mask > schedule.MaxWeeklyMask {
			return invalidRecurring("Weekly FreqRecurrance must be 1-127 (day bitmask). Got: %d", mask)
		}
	case schedule.FreqMonthly:
		if mask > schedule.MaxMonthlyMask {
			return invalidRecurring("Monthly FreqRecurrance must be valid day bitmask. Got: %d", mask)
		}
	case schedule.FreqYearlyLegacy, schedule.FreqYearly:
		if mask > schedule.MaxYearlyMask {
			return invalidRecurring("Yearly FreqRecurrance must be valid month bitmask (1-4095). Got: %d", mask)
		}
	}

	if rec.FreqInterval < 1 || rec.FreqInterval > validation.MaxFreqInterval {
		return invalidRecurring("Frequency interval must be between 1 and 365. Got: %d", rec.FreqInterval)
	}
	switch rec.BusinessDayBehavior {
	case schedule.BusinessDayIgnore, schedule.BusinessDaySkip, schedule.BusinessDayMove:
	default:
		return invalidRecurring(
			"Business day behavior must be 0 (ignore), 1 (skip), or 2 (move). Got: %d", rec.BusinessDayBehavior)
	}
	return nil
}

func (uc *implUseCase) ValidateChecklist(items string) ([]string, error) {
	list := splitList(items)
	if len(list) == 0 {
		return nil, nil
	}
	if len(list) > validation.MaxChecklistItems {
		return nil, model.NewValidationError(fmt.Sprintf(
			"Too many checklist items (%d). Please limit to %d items or fewer.", len(list), validation.MaxChecklistItems,
		), model.CodeInvalidChecklist)
	}

	for _, item := range list {
		if n := utf8.RuneCountInString(item); n > validation.MaxChecklistItemSize {
			return nil, model.NewValidationError(fmt.Sprintf(
				"Checklist item is too long (%d characters): '%s...'. Please keep items under %d characters.",
				n, string([]rune(item)[:50]), validation.MaxChecklistItemSize,
			), model.CodeInvalidChecklist)
		}
		if err := uc.ValidateContentSafety(item); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func invalidRecurring(format string, arg int) error {
	return model.NewValidationError(fmt.Sprintf(format, arg), model.CodeInvalidRecurring)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

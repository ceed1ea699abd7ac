package usecase

import (
	"fmt"
	"strings"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/validation"
	"task-assistant/pkg/datemath"
)

func (uc *implUseCase) ValidateDate(date string, today time.Time) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", nil
	}

	var (
		parsed time.Time
		ok     bool
	)
	for _, layout := range validation.DateLayouts {
		t, err := time.Parse(layout, date)
		if err == nil {
			parsed, ok = t, true
			break
		}
	}
	if !ok {
		return "", model.NewValidationError(fmt.Sprintf(
			"Invalid date format: '%s'. Please use formats like YYYY-MM-DD, MM/DD/YYYY, or MM-DD-YYYY.", date,
		), model.CodeInvalidDate)
	}

	y, m, d := today.Date()
	if parsed.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return "", model.NewValidationError(fmt.Sprintf(
			"Due date '%s' is in the past. Please provide a date that is today or in the future.", date,
		), model.CodePastDate)
	}
	return parsed.Format(datemath.DateLayout), nil
}

func (uc *implUseCase) ValidateTime(clock string) error {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return nil
	}
	if _, err := time.Parse(datemath.ClockLayout, clock); err != nil {
		return model.NewValidationError(fmt.Sprintf(
			"Invalid time format: '%s'. Please use HH:MM format (e.g., 14:30 for 2:30 PM).", clock,
		), model.CodeInvalidTime)
	}
	return nil
}

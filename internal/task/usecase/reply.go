package usecase

import (
	"fmt"
	"strings"
	"time"

	"task-assistant/internal/model"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/schedule"
)

// buildReply confirms a created task in plain language.
func buildReply(p model.TaskParameters, mainController string) string {
	name := p.TaskName
	if name == "" {
		name = "the task"
	}

	var assigned string
	if p.Assignees != "" && p.Assignees != mainController {
		assigned = ", assigned to " + joinNames(splitNames(p.Assignees))
	}

	var b strings.Builder
	if due, err := time.Parse(datemath.DateLayout, p.DueDate); err == nil {
		fmt.Fprintf(&b, "✓ I've created '%s' for %s", name, due.Format("Monday, Jan 02"))
		if p.DueTime != "" && p.DueTime != datemath.DefaultClock {
			b.WriteString(" at " + clockText(p.DueTime))
		}
	} else if p.DueDate != "" {
		fmt.Fprintf(&b, "✓ I've created '%s' for %s", name, p.DueDate)
	} else {
		fmt.Fprintf(&b, "✓ I've created '%s'", name)
	}
	b.WriteString(assigned + ".")

	if p.IsRecurring == 1 {
		fmt.Fprintf(&b, " This will repeat %s.", frequencyText(p.FreqType, p.FreqInterval))
	}
	return b.String()
}

func clockText(clock string) string {
	t, err := time.Parse(datemath.ClockLayout, clock)
	if err != nil {
		return clock
	}
	return strings.ToLower(t.Format("3:04 PM"))
}

// joinNames joins two names with "and" and three or more with an Oxford comma.
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

// frequencyText describes how often a task repeats.
func frequencyText(ft schedule.FreqType, interval int) string {
	if interval <= 1 {
		switch ft {
		case schedule.FreqDaily:
			return "daily"
		case schedule.FreqWeekly:
			return "weekly"
		case schedule.FreqMonthly:
			return "monthly"
		case schedule.FreqYearlyLegacy, schedule.FreqAnnualDate, schedule.FreqYearly:
			return "yearly"
		default:
			return "recurring"
		}
	}
	if ft == schedule.FreqWeekly && interval == 2 {
		return "every 2 weeks"
	}

	unit := "interval"
	switch ft {
	case schedule.FreqDaily:
		unit = "day"
	case schedule.FreqWeekly:
		unit = "week"
	case schedule.FreqMonthly:
		unit = "month"
	case schedule.FreqYearlyLegacy, schedule.FreqAnnualDate, schedule.FreqYearly:
		unit = "year"
	}
	return fmt.Sprintf("every %d %ss", interval, unit)
}

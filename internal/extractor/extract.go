package extractor

import (
	"strconv"
	"strings"
	"time"

	"task-assistant/internal/model"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/schedule"
)

// Extract runs the rules in a fixed order; later rules overwrite fields set
// by earlier ones. today must already be in the user's timezone.
func (e *implExtractor) Extract(message, mainController string, today time.Time) model.TaskParameters {
	var p model.TaskParameters
	lower := strings.ToLower(message)

	if strings.Contains(lower, "remind me") {
		p.Assignees = mainController
		p.IsReminder = 1
		p.TaskName = reminderName(message, lower)
	} else {
		p.Assignees = assignees(message)
	}

	if containsAny(lower, priorityWords) {
		p.AddToPriorityList = 1
	}
	if strings.Contains(lower, "confidential") {
		p.Confidential = true
	}
	if team := teamAssignee(message); team != "" {
		p.Assignees = team
	}
	if items := checklistItems(message); items != "" {
		p.Items = items
	}
	if clock := timeOfDay(lower); clock != "" {
		p.DueTime = clock
	}

	if m := nextDayRe.FindStringSubmatch(lower); m != nil {
		p.DueDate = datemath.NextWeekday(today, weekdays[m[1]]).Format(datemath.DateLayout)
		p.Record = schedule.Record{}
	} else if strings.Contains(lower, "tomorrow") {
		p.DueDate = today.AddDate(0, 0, 1).Format(datemath.DateLayout)
	}

	if m := overrideRe.FindStringSubmatch(message); m != nil {
		p.OverrideController = m[1]
	}
	if ctrls := multiControllers(message); ctrls != "" {
		p.MultiControllers = ctrls
	}
	if containsAny(lower, businessWords) {
		p.BusinessDayBehavior = schedule.BusinessDaySkip
	}
	if m := sourceTZRe.FindStringSubmatch(message); m != nil {
		p.SourceTimezone = strings.ToUpper(m[1])
	}
	if strings.Contains(lower, "template") && p.Assignees == "" {
		p.Assignees = mainController
	}
	if tasks := batchTasks(message, lower); len(tasks) > 0 {
		p.BatchTasks = tasks
	}
	if m := notifyRe.FindStringSubmatch(lower); m != nil {
		amount, _ := strconv.Atoi(m[1])
		p.IsReminder = 1
		p.ReminderOffsetHours = float64(amount)
		if m[2] == "minute" {
			p.ReminderOffsetHours = float64(amount) / 60
		}
	}

	e.applyRecurrence(&p, message, lower)

	if m := atTimeRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		p.DueTime = datemath.FormatClock(datemath.To24Hour(hour, m[3]), minute)
		if !containsAny(lower, dateMarkers) {
			p.DueDate = today.Format(datemath.DateLayout)
		}
	}

	return p
}

// applyRecurrence uses the schedule parser when one is configured and
// otherwise falls back to plain frequency keywords.
func (e *implExtractor) applyRecurrence(p *model.TaskParameters, message, lower string) {
	if e.parser != nil {
		rec := e.parser.Parse(message)
		if !rec.Recurring() {
			return
		}
		if rec.BusinessDayBehavior == schedule.BusinessDayIgnore {
			rec.BusinessDayBehavior = p.BusinessDayBehavior
		}
		p.Record = rec
		return
	}

	var ft schedule.FreqType
	switch {
	case containsAny(lower, dailyWords):
		ft = schedule.FreqDaily
	case containsAny(lower, weeklyWords):
		ft = schedule.FreqWeekly
	case containsAny(lower, monthlyWords):
		ft = schedule.FreqMonthly
	case containsAny(lower, yearlyWords):
		ft = schedule.FreqYearlyLegacy
	default:
		return
	}
	p.IsRecurring = 1
	p.FreqType = ft
	p.FreqRecurrance = 1
	p.FreqInterval = 1
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func reminderName(message, lower string) string {
	if m := quotedRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}
	m := remindToRe.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}
	name := strings.Trim(strings.TrimSpace(m[1]), `'"`)
	if rest, ok := strings.CutPrefix(name, "follow up on "); ok {
		name = strings.TrimSpace(rest)
	}
	return name
}

func assignees(message string) string {
	if m := withNamesRe.FindStringSubmatch(message); m != nil {
		var names []string
		for _, part := range nameSplitRe.Split(m[1], -1) {
			part = strings.TrimSpace(part)
			if fullNameRe.MatchString(part) {
				names = append(names, part)
			}
		}
		return strings.Join(names, ",")
	}
	if m := forNameRe.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	return ""
}

func teamAssignee(message string) string {
	for _, re := range teamRes {
		if m := re.FindStringSubmatch(message); m != nil {
			return m[1] + " Team"
		}
	}
	return ""
}

func checklistItems(message string) string {
	m := checklistRe.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	var items []string
	for _, item := range itemSplitRe.Split(m[1], -1) {
		item = strings.TrimSpace(item)
		if len(item) > 1 {
			items = append(items, item)
		}
	}
	return strings.Join(items, ",")
}

func timeOfDay(lower string) string {
	for _, r := range timeOfDayRules {
		if containsAny(lower, r.words) {
			return r.clock
		}
	}
	return ""
}

func multiControllers(message string) string {
	m := multiCtrlRe.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	ctrls := []string{m[1]}
	for _, sub := range andCtrlRe.FindAllStringSubmatch(m[2], -1) {
		ctrls = append(ctrls, sub[1])
	}
	return strings.Join(ctrls, ",")
}

func batchTasks(message, lower string) []string {
	if strings.Contains(lower, "tasks:") {
		if m := batchRe.FindStringSubmatch(message); m != nil {
			var raw []string
			if quoted := quotedRe.FindAllStringSubmatch(m[1], -1); len(quoted) > 0 {
				for _, q := range quoted {
					raw = append(raw, q[1])
				}
			} else {
				raw = batchSplitRe.Split(m[1], -1)
			}
			if tasks := cleanNames(raw); len(tasks) > 0 {
				return tasks
			}
		}
	}
	if strings.Contains(lower, "create tasks for:") {
		if m := batchForRe.FindStringSubmatch(message); m != nil {
			return cleanNames(strings.Split(m[1], ","))
		}
	}
	return nil
}

func cleanNames(raw []string) []string {
	var out []string
	for _, r := range raw {
		r = strings.Trim(strings.TrimSpace(r), `'"`)
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

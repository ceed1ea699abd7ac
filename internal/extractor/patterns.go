package extractor

import "regexp"

var (
	quotedRe     = regexp.MustCompile(`'([^']+)'`)
	remindToRe   = regexp.MustCompile(`remind\s+me.*?to\s+(.+?)(?:\s+at\s+|\s+by\s+|$)`)
	withNamesRe  = regexp.MustCompile(`with\s+((?:[A-Z][a-z]+\s+[A-Z][a-z]+(?:\s*,?\s*(?:and|&|plus)\s*)?)+)`)
	nameSplitRe  = regexp.MustCompile(`\s*,\s*|\s+and\s+|\s+&\s+|\s+plus\s+`)
	fullNameRe   = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+$`)
	forNameRe    = regexp.MustCompile(`for\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?(?:\s+(?:Team|Group|Department|Control))?)`)
	checklistRe  = regexp.MustCompile(`(?i)with\s+(?:checkboxes?|checklist|items)(?:\s+for)?[:\s]+(.+?)(?:\.|$)`)
	itemSplitRe  = regexp.MustCompile(`[,;]|\d+\.\s*`)
	nextDayRe    = regexp.MustCompile(`next\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	overrideRe   = regexp.MustCompile(`(?:managed|controlled)\s+by\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`)
	multiCtrlRe  = regexp.MustCompile(`controlled\s+by\s+(` + ctrlName + `)((?:\s+and\s+` + ctrlName + `)+)`)
	andCtrlRe    = regexp.MustCompile(`\s+and\s+(` + ctrlName + `)`)
	sourceTZRe   = regexp.MustCompile(`(?i)at\s+\d{1,2}(?::\d{2})?\s*(?:am|pm)?\s+(ET|EST|EDT|PT|PST|PDT|CT|CST|CDT|MT|MST|MDT)\b`)
	batchRe      = regexp.MustCompile(`(?i)(?:create\s+)?tasks:\s*(.+)`)
	batchForRe   = regexp.MustCompile(`(?i)create\s+tasks\s+for:\s*(.+)`)
	batchSplitRe = regexp.MustCompile(`[,;]`)
	notifyRe     = regexp.MustCompile(`(?:email\s+)?notification\s+(\d+)\s+(hour|minute)s?\s+before`)
	atTimeRe     = regexp.MustCompile(`\bat\s+(\d{1,2})\s*(?::(\d{2}))?\s*(am|pm)?`)

	teamRes = []*regexp.Regexp{
		regexp.MustCompile(`for\s+(\w+)\s+[Tt]eam`),
		regexp.MustCompile(`[Tt]eam\s+(\w+)\s+to`),
		regexp.MustCompile(`(\w+)\s+[Tt]eam\s+(?:to|should|will|must)`),
	}
)

const ctrlName = `[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?(?:\s+(?:Team|Group|Department))?`

var (
	priorityWords  = []string{"priority list", "add to priority", "urgent", "high priority", "critical"}
	businessWords  = []string{"skip weekend", "business day", "weekday"}
	dateMarkers    = []string{"tomorrow", "next", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	dailyWords     = []string{"daily", "every day", "each day"}
	weeklyWords    = []string{"weekly", "every week", "each week"}
	monthlyWords   = []string{"monthly", "every month", "each month"}
	yearlyWords    = []string{"yearly", "annually", "every year", "each year"}
	timeOfDayRules = []struct {
		words []string
		clock string
	}{
		{[]string{"morning"}, "09:00"},
		{[]string{"afternoon"}, "14:00"},
		{[]string{"evening", "night"}, "18:00"},
	}
)

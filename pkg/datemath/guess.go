package datemath

import "strings"

type timeRule struct {
	words []string
	clock string
}

// Checked in order; the first rule with a matching word wins.
var timeRules = []timeRule{
	{words: []string{"meeting", "standup", "sync", "huddle", "call"}, clock: "14:00"},
	{words: []string{"check email", "daily check", "morning"}, clock: "09:00"},
	{words: []string{"report", "review", "analysis", "summary"}, clock: "19:00"},
	{words: []string{"remind"}, clock: "10:00"},
}

var urgentWords = []string{"urgent", "asap", "immediately", "now"}

// GuessTime picks a due time from keywords in the task name.
func GuessTime(taskName string) string {
	name := strings.ToLower(taskName)
	for _, r := range timeRules {
		if containsAny(name, r.words) {
			return r.clock
		}
	}
	return DefaultClock
}

func isUrgent(taskName string) bool {
	return containsAny(strings.ToLower(taskName), urgentWords)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nextWeekdayRe = regexp.MustCompile(`next\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)

	explicitRes = []*regexp.Regexp{
		regexp.MustCompile(`recurring\s+(daily|weekly|bi-?weekly|monthly|quarterly|yearly|annually)`),
		regexp.MustCompile(`every\s+(day|week|month|quarter|year)\b`),
		regexp.MustCompile(`repeats?\s+(daily|weekly|monthly|quarterly|yearly)`),
	}

	quarterlyRes = []*regexp.Regexp{
		regexp.MustCompile(`quarter(ly)?`),
		regexp.MustCompile(`every\s+quarter`),
		regexp.MustCompile(`each\s+quarter`),
		regexp.MustCompile(`end\s+of\s+(each\s+)?quarter`),
		regexp.MustCompile(`quarter\s+end`),
	}
	annualRes = []*regexp.Regexp{
		regexp.MustCompile(`annual(ly)?`),
		regexp.MustCompile(`year(ly)?`),
		regexp.MustCompile(`every\s+year`),
		regexp.MustCompile(`each\s+year`),
		regexp.MustCompile(`once\s+a\s+year`),
	}
	monthlyRes = []*regexp.Regexp{
		regexp.MustCompile(`month(ly)?`),
		regexp.MustCompile(`every\s+month`),
		regexp.MustCompile(`each\s+month`),
		regexp.MustCompile(`once\s+a\s+month`),
	}
	dailyRes = []*regexp.Regexp{
		regexp.MustCompile(`\bdaily\b`),
		regexp.MustCompile(`every\s+day`),
		regexp.MustCompile(`each\s+day`),
		regexp.MustCompile(`every\s+weekday\b`),
	}
	weeklyRes = []*regexp.Regexp{
		regexp.MustCompile(`\bweek(ly)?\b`),
		regexp.MustCompile(`every\s+week\b`),
		regexp.MustCompile(`each\s+week\b`),
		regexp.MustCompile(`every\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
		regexp.MustCompile(`every\s+other\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
		regexp.MustCompile(`\bbi-?weekly\b`),
		regexp.MustCompile(`every\s+(?:2|two)\s+weeks?`),
		regexp.MustCompile(`every\s+second\s+week`),
	}
	biweeklyRes = []*regexp.Regexp{
		regexp.MustCompile(`\bbi-?weekly\b`),
		regexp.MustCompile(`every\s+(?:2|two)\s+weeks?`),
		regexp.MustCompile(`every\s+second\s+week`),
	}

	everyOtherRe      = regexp.MustCompile(`every\s+other\s+(\w+)`)
	ordinalRe         = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)`)
	ordinalOfMonthRe  = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)\s+of\s+(each\s+)?month`)
	quarterOrdinalRe  = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)\b(\s+quarter)?`)
	wordThenNumberRe  = regexp.MustCompile(`(\w+)\s+(\d{1,2})`)
	annualExclusions  = []string{"recurring monthly", "every month", "repeat monthly"}
	businessDayPhrase = []string{"business day", "weekday", "skip weekend"}
)

type unit int

const (
	unitNone unit = iota
	unitDaily
	unitWeekly
	unitMonthly
	unitQuarterly
	unitYearly
)

// Parser recognizes recurrence phrases and encodes them as a Record.
// It holds no state and is safe for concurrent use.
type Parser struct{}

// New returns a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse returns the schedule described by message. It never fails: anything it
// does not recognize is a non-recurring, all-zero record.
func (p *Parser) Parse(message string) Record {
	msg := strings.ToLower(message)

	// "next friday" is always a one-off, whatever else the message says.
	if nextWeekdayRe.MatchString(msg) {
		return Record{}
	}

	if u := explicitUnit(msg); u != unitNone {
		return parseUnit(u, msg)
	}

	switch {
	case anyMatch(msg, quarterlyRes):
		return parseQuarterly(msg)
	case isAnnual(msg):
		return parseAnnual(msg)
	case anyMatch(msg, monthlyRes):
		return parseMonthly(msg)
	case isDaily(msg):
		return parseDaily(msg)
	case isWeekly(msg):
		return parseWeekly(msg)
	}

	return Record{}
}

// IsNextWeekday reports whether message names a "next <weekday>" one-off.
func IsNextWeekday(message string) bool {
	return nextWeekdayRe.MatchString(strings.ToLower(message))
}

func explicitUnit(msg string) unit {
	for _, re := range explicitRes {
		m := re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		switch m[1] {
		case "day", "daily":
			return unitDaily
		case "week", "weekly", "bi-weekly", "biweekly":
			return unitWeekly
		case "month", "monthly":
			return unitMonthly
		case "quarter", "quarterly":
			return unitQuarterly
		case "year", "yearly", "annually":
			return unitYearly
		}
	}
	return unitNone
}

func parseUnit(u unit, msg string) Record {
	switch u {
	case unitDaily:
		return parseDaily(msg)
	case unitWeekly:
		return parseWeekly(msg)
	case unitMonthly:
		return parseMonthly(msg)
	case unitQuarterly:
		return parseQuarterly(msg)
	case unitYearly:
		return parseAnnual(msg)
	}
	return Record{}
}

func parseDaily(msg string) Record {
	r := Record{IsRecurring: 1, FreqType: FreqDaily, FreqRecurrance: 1, FreqInterval: 1}
	if containsAny(msg, businessDayPhrase) {
		r.BusinessDayBehavior = BusinessDaySkip
	}
	if strings.Contains(msg, "every other day") {
		r.FreqInterval = 2
	}
	return r
}

func parseWeekly(msg string) Record {
	r := Record{IsRecurring: 1, FreqType: FreqWeekly, FreqRecurrance: 2, FreqInterval: 1}

	switch {
	case anyMatch(msg, biweeklyRes):
		r.FreqInterval = 2
		if mask := orBits(msg, weekdayBits); mask > 0 {
			r.FreqRecurrance = mask
		}
	case everyOtherRe.MatchString(msg):
		r.FreqInterval = 2
		name := everyOtherRe.FindStringSubmatch(msg)[1]
		if bit, ok := weekdayByName[name]; ok {
			r.FreqRecurrance = bit
		}
	default:
		if mask := orBits(msg, weekdayBits); mask > 0 {
			r.FreqRecurrance = mask
		}
	}

	// "Monday and Thursday" style compound days.
	if strings.Contains(msg, " and ") {
		if mask := orBits(msg, weekdayBits); mask > 0 {
			r.FreqRecurrance = mask
		}
	}
	return r
}

func parseMonthly(msg string) Record {
	r := Record{IsRecurring: 1, FreqType: FreqMonthly, FreqRecurrance: 1, FreqInterval: 1}
	if strings.Contains(msg, "every other month") {
		r.FreqInterval = 2
	}
	if m := ordinalRe.FindStringSubmatch(msg); m != nil {
		if bit := DayOfMonthBit(atoi(m[1])); bit > 0 {
			r.FreqRecurrance = bit
		}
	}
	if strings.Contains(msg, "last day") {
		r.FreqRecurrance = LastDayOfMonth
	}
	return r
}

// Quarterly schedules are monthly schedules repeating every third month.
func parseQuarterly(msg string) Record {
	r := Record{IsRecurring: 1, FreqType: FreqMonthly, FreqRecurrance: QuarterEndDay, FreqInterval: 3}
	if m := ordinalOfMonthRe.FindStringSubmatch(msg); m != nil {
		if bit := DayOfMonthBit(atoi(m[1])); bit > 0 {
			r.FreqRecurrance = bit
		}
		return r
	}
	// A digit ordinal is a day of the month unless it names a quarter ("3rd quarter").
	for _, m := range quarterOrdinalRe.FindAllStringSubmatch(msg, -1) {
		if m[2] != "" {
			continue
		}
		if bit := DayOfMonthBit(atoi(m[1])); bit > 0 {
			r.FreqRecurrance = bit
			return r
		}
	}
	if mask := orBits(msg, quarterBits); mask > 0 {
		r.FreqRecurrance = mask
	}
	return r
}

func parseAnnual(msg string) Record {
	r := Record{IsRecurring: 1, FreqType: FreqYearly, FreqRecurrance: 1, FreqInterval: 1}
	if mask := orBits(msg, monthBits); mask > 0 {
		r.FreqRecurrance = mask
	}
	// "<Month> <Day>" keeps the month bit only; the day is not encoded.
	// Suspect: the day is silently dropped. Left as is until the store's
	// annual-date encoding (FreqAnnualDate) is confirmed.
	if m := wordThenNumberRe.FindStringSubmatch(msg); m != nil {
		if bit, ok := monthByName[m[1]]; ok {
			r.FreqRecurrance = bit
		}
	}
	return r
}

func isAnnual(msg string) bool {
	if containsAny(msg, annualExclusions) {
		return false
	}
	return anyMatch(msg, annualRes)
}

func isDaily(msg string) bool {
	if anyMatch(msg, dailyRes) {
		return true
	}
	for _, w := range strings.Fields(msg) {
		if w == "daily" {
			return true
		}
	}
	return strings.Contains(msg, "daily") && strings.Contains(msg, "skip")
}

func isWeekly(msg string) bool {
	if strings.Contains(msg, "end of week") || strings.Contains(msg, "end of the week") {
		return false
	}
	return anyMatch(msg, weeklyRes)
}

func anyMatch(msg string, res []*regexp.Regexp) bool {
	for _, re := range res {
		if re.MatchString(msg) {
			return true
		}
	}
	return false
}

func containsAny(msg string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

package schedule

// FreqType is the unit of a recurrence.
type FreqType int

const (
	FreqNone    FreqType = 0
	FreqDaily   FreqType = 1
	FreqWeekly  FreqType = 2
	FreqMonthly FreqType = 3
	// 4 and 5 are accepted by the downstream store but not produced by the parser.
	FreqYearlyLegacy FreqType = 4
	FreqAnnualDate   FreqType = 5
	FreqYearly       FreqType = 6
)

// Business-day behavior for occurrences that land on a weekend or holiday.
const (
	BusinessDayIgnore = 0
	BusinessDaySkip   = 1
	BusinessDayMove   = 2
)

const (
	// LastDayOfMonth is the monthly sentinel bit for "last day".
	LastDayOfMonth = 1 << 30
	// QuarterEndDay is the day-30 approximation used for quarter-end schedules.
	QuarterEndDay = 1 << 29
	// MaxWeeklyMask covers Sunday..Saturday.
	MaxWeeklyMask = 127
	// MaxYearlyMask covers January..December.
	MaxYearlyMask = 4095
	// MaxMonthlyMask is the largest value the store column can hold.
	MaxMonthlyMask = 1<<31 - 1
)

// Record is the canonical recurrence descriptor handed to the task store.
// When IsRecurring is 0 every other field is 0.
type Record struct {
	IsRecurring         int      `json:"IsRecurring"`
	FreqType            FreqType `json:"FreqType"`
	FreqRecurrance      int      `json:"FreqRecurrance"`
	FreqInterval        int      `json:"FreqInterval"`
	BusinessDayBehavior int      `json:"BusinessDayBehavior"`
}

// Recurring reports whether the record describes a repeating schedule.
func (r Record) Recurring() bool {
	return r.IsRecurring == 1
}

// Normalize zeroes the schedule fields of a non-recurring record.
func (r Record) Normalize() Record {
	if r.IsRecurring != 1 {
		return Record{}
	}
	return r
}

// Recognizer maps free text to a Record.
type Recognizer interface {
	Parse(message string) Record
}

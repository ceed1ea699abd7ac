package errtrack

// Workaround names a recovery path applied after a store failure.
type Workaround string

const (
	// WorkaroundPriorityList adds priority list entries the store skipped.
	WorkaroundPriorityList Workaround = "priority_list"
	// WorkaroundHolidaySchedule retries without business-day behavior.
	WorkaroundHolidaySchedule Workaround = "holiday_schedule"
)

// WorkaroundStats counts attempts and successes of one workaround.
type WorkaroundStats struct {
	Attempts  int `json:"attempts"`
	Successes int `json:"successes"`
}

// Stats is a snapshot of the tracker counters.
type Stats struct {
	ErrorCounts     map[string]int                 `json:"error_counts"`
	WorkaroundStats map[Workaround]WorkaroundStats `json:"workaround_stats"`
	TotalErrors     int                            `json:"total_errors"`
}

// FormatContext supplies names used in user-facing messages.
type FormatContext struct {
	UserFullName string
	TaskName     string
	// Day is the monthly day that hit the store limitation, if any.
	Day int
}

package datemath

// Layouts used across the assistant.
const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
	TimestampLayout = "2006-01-02 15:04:00"
)

// DefaultClock is the due time used when nothing more specific is known.
const DefaultClock = "19:00"

// DefaultClockInt is DefaultClock in the store's HHMM integer form.
const DefaultClockInt = 1900

// Defaults carries the smart due date/time values applied to a task.
type Defaults struct {
	DueDate      string
	DueTime      string
	LocalDueDate string
	SoftDueDate  string
}

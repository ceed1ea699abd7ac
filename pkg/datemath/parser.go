package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language dates and times relative to "now" in a
// fixed timezone.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// ParserFor is NewParser falling back to UTC for unknown timezones.
func ParserFor(timezone string) *Parser {
	p, err := NewParser(timezone)
	if err != nil {
		return &Parser{location: time.UTC, now: time.Now}
	}
	return p
}

// WithClock returns a copy of p that reads the current time from now.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	return &Parser{location: p.location, now: now}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns midnight of the current day in the parser's timezone.
func (p *Parser) Today() time.Time {
	return p.startOfDay(p.now())
}

var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var (
	inDaysRe = regexp.MustCompile(`^in (\d+) days?\b`)
	amPmRe   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
)

// ParseDate converts a natural-language date to YYYY-MM-DD. ok is false when
// the text is neither a recognized phrase nor already an ISO date.
func (p *Parser) ParseDate(text string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}
	today := p.Today()

	switch s {
	case "today":
		return format(today), true
	case "tomorrow", "tmrw":
		return format(today.AddDate(0, 0, 1)), true
	case "day after tomorrow", "day after tmrw":
		return format(today.AddDate(0, 0, 2)), true
	case "yesterday":
		return format(today.AddDate(0, 0, -1)), true
	}

	for i, name := range weekdayNames {
		if strings.Contains(s, "next "+name) {
			return format(NextWeekday(today, time.Weekday(i))), true
		}
	}
	for i, name := range weekdayNames {
		if strings.Contains(s, "this "+name) {
			ahead := (int(time.Weekday(i)) - int(today.Weekday()) + 7) % 7
			return format(today.AddDate(0, 0, ahead)), true
		}
	}

	switch {
	case strings.Contains(s, "end of week"), strings.Contains(s, "end of the week"):
		ahead := (int(time.Friday) - int(today.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return format(today.AddDate(0, 0, ahead)), true
	case strings.HasPrefix(s, "next week"):
		return format(today.AddDate(0, 0, 7)), true
	case strings.HasPrefix(s, "next month"):
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, p.location)
		return format(first.AddDate(0, 1, 0)), true
	case strings.HasPrefix(s, "this week"):
		sinceMonday := (int(today.Weekday()) + 6) % 7
		return format(today.AddDate(0, 0, -sinceMonday)), true
	case strings.HasPrefix(s, "this month"):
		return format(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, p.location)), true
	}

	if m := inDaysRe.FindStringSubmatch(s); m != nil {
		days, _ := strconv.Atoi(m[1])
		return format(today.AddDate(0, 0, days)), true
	}

	trimmed := strings.TrimSpace(text)
	if _, err := time.Parse(DateLayout, trimmed); err == nil {
		return trimmed, true
	}
	return "", false
}

// ParseTime converts a natural-language time of day to HH:MM.
func (p *Parser) ParseTime(text string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}

	switch s {
	case "morning", "early morning":
		return "09:00", true
	case "late morning":
		return "11:00", true
	case "noon", "midday":
		return "12:00", true
	case "afternoon", "early afternoon":
		return "14:00", true
	case "late afternoon", "before close", "before closing":
		return "16:00", true
	case "evening", "early evening":
		return "18:00", true
	case "late evening":
		return "20:00", true
	case "night", "late night":
		return "22:00", true
	case "midnight":
		return "00:00", true
	case "after close", "after closing":
		return "19:00", true
	}

	if m := amPmRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		return FormatClock(To24Hour(hour, m[3]), minute), true
	}

	trimmed := strings.TrimSpace(text)
	if _, err := time.Parse(ClockLayout, trimmed); err == nil {
		return trimmed, true
	}
	return "", false
}

// ApplyDefaults fills the due date (tomorrow, or today for urgent task names)
// and due time (GuessTime) when missing. LocalDueDate always mirrors the due
// date; SoftDueDate mirrors it unless already set.
func (p *Parser) ApplyDefaults(taskName string, d Defaults) Defaults {
	if d.DueDate == "" {
		today := p.Today()
		if isUrgent(taskName) {
			d.DueDate = format(today)
		} else {
			d.DueDate = format(today.AddDate(0, 0, 1))
		}
	}
	if d.DueTime == "" {
		d.DueTime = GuessTime(taskName)
	}
	d.LocalDueDate = d.DueDate
	if d.SoftDueDate == "" {
		d.SoftDueDate = d.DueDate
	}
	return d
}

// NextQuarterEnd returns the last day of the quarter containing today.
func (p *Parser) NextQuarterEnd() time.Time {
	today := p.Today()
	endMonth := time.Month(((int(today.Month())-1)/3 + 1) * 3)
	return time.Date(today.Year(), endMonth+1, 0, 0, 0, 0, 0, p.location)
}

// NextWeekday returns the next strictly-future occurrence of target.
func NextWeekday(from time.Time, target time.Weekday) time.Time {
	ahead := (int(target) - int(from.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return from.AddDate(0, 0, ahead)
}

// To24Hour converts a 12-hour clock value with an am/pm marker. An empty
// marker leaves the hour unchanged.
func To24Hour(hour int, meridian string) int {
	switch strings.ToLower(meridian) {
	case "pm":
		if hour != 12 {
			return hour + 12
		}
	case "am":
		if hour == 12 {
			return 0
		}
	}
	return hour
}

// FormatClock renders HH:MM.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ClockInt converts HH:MM to the HHMM integer form, DefaultClockInt when
// the value cannot be read.
func ClockInt(clock string) int {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(clock))
	if err != nil {
		return DefaultClockInt
	}
	return t.Hour()*100 + t.Minute()
}

// Timestamp joins a date and a clock into the store's timestamp layout.
// An unreadable clock falls back to DefaultClock.
func Timestamp(date, clock string) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	c, err := time.Parse(ClockLayout, strings.TrimSpace(clock))
	if err != nil {
		c, _ = time.Parse(ClockLayout, DefaultClock)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC).Format(TimestampLayout), nil
}

// ReminderDate subtracts offsetHours from date+clock and returns the
// resulting calendar date. The time of day is dropped, so an offset that stays
// within the due day yields the due date itself.
func ReminderDate(date, clock string, offsetHours float64) (string, error) {
	ts, err := Timestamp(date, clock)
	if err != nil {
		return "", err
	}
	t, _ := time.Parse(TimestampLayout, ts)
	return t.Add(-time.Duration(offsetHours * float64(time.Hour))).Format(DateLayout), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

func format(t time.Time) string {
	return t.Format(DateLayout)
}

package schedule

import "regexp"

type namedBit struct {
	re  *regexp.Regexp
	bit int
}

// Names are matched as whole words so that "mon" does not fire inside "month"
// and "mar" does not fire inside "market".
var weekdayBits = []namedBit{
	{regexp.MustCompile(`\bsun(?:day)?\b`), 1},
	{regexp.MustCompile(`\bmon(?:day)?\b`), 2},
	{regexp.MustCompile(`\btue(?:s|sday)?\b`), 4},
	{regexp.MustCompile(`\bwed(?:nesday)?\b`), 8},
	{regexp.MustCompile(`\bthu(?:r|rs|rsday)?\b`), 16},
	{regexp.MustCompile(`\bfri(?:day)?\b`), 32},
	{regexp.MustCompile(`\bsat(?:urday)?\b`), 64},
}

var monthBits = []namedBit{
	{regexp.MustCompile(`\bjan(?:uary)?\b`), 1},
	{regexp.MustCompile(`\bfeb(?:ruary)?\b`), 2},
	{regexp.MustCompile(`\bmar(?:ch)?\b`), 4},
	{regexp.MustCompile(`\bapr(?:il)?\b`), 8},
	{regexp.MustCompile(`\bmay\b`), 16},
	{regexp.MustCompile(`\bjune?\b`), 32},
	{regexp.MustCompile(`\bjuly?\b`), 64},
	{regexp.MustCompile(`\baug(?:ust)?\b`), 128},
	{regexp.MustCompile(`\bsep(?:t|tember)?\b`), 256},
	{regexp.MustCompile(`\boct(?:ober)?\b`), 512},
	{regexp.MustCompile(`\bnov(?:ember)?\b`), 1024},
	{regexp.MustCompile(`\bdec(?:ember)?\b`), 2048},
}

var quarterBits = []namedBit{
	{regexp.MustCompile(`\b(?:q1|first|1st)\b`), 1},
	{regexp.MustCompile(`\b(?:q2|second|2nd)\b`), 2},
	{regexp.MustCompile(`\b(?:q3|third|3rd)\b`), 4},
	{regexp.MustCompile(`\b(?:q4|fourth|4th)\b`), 8},
}

var weekdayByName = map[string]int{
	"sunday": 1, "sun": 1,
	"monday": 2, "mon": 2,
	"tuesday": 4, "tue": 4, "tues": 4,
	"wednesday": 8, "wed": 8,
	"thursday": 16, "thu": 16, "thur": 16, "thurs": 16,
	"friday": 32, "fri": 32,
	"saturday": 64, "sat": 64,
}

var monthByName = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 4, "mar": 4,
	"april": 8, "apr": 8,
	"may":  16,
	"june": 32, "jun": 32,
	"july": 64, "jul": 64,
	"august": 128, "aug": 128,
	"september": 256, "sep": 256, "sept": 256,
	"october": 512, "oct": 512,
	"november": 1024, "nov": 1024,
	"december": 2048, "dec": 2048,
}

func orBits(msg string, table []namedBit) int {
	mask := 0
	for _, nb := range table {
		if nb.re.MatchString(msg) {
			mask |= nb.bit
		}
	}
	return mask
}

// WeekdayMask ORs the bits of the given day names. Unknown names are ignored.
func WeekdayMask(days ...string) int {
	mask := 0
	for _, d := range days {
		mask |= weekdayByName[normalizeName(d)]
	}
	return mask
}

// MonthMask ORs the bits of the given month names. Unknown names are ignored.
func MonthMask(months ...string) int {
	mask := 0
	for _, m := range months {
		mask |= monthByName[normalizeName(m)]
	}
	return mask
}

// DayOfMonthBit returns the monthly bit for day (1..31), or 0 when out of range.
func DayOfMonthBit(day int) int {
	if day < 1 || day > 31 {
		return 0
	}
	return 1 << (day - 1)
}

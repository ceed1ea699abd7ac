package schedule_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"task-assistant/pkg/schedule"
)

func TestParse(t *testing.T) {
	p := schedule.New()

	tests := []struct {
		name    string
		message string
		want    schedule.Record
	}{
		{
			name:    "daily skipping weekends",
			message: "Check balances daily, skip weekends",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqDaily, FreqRecurrance: 1, FreqInterval: 1, BusinessDayBehavior: 1},
		},
		{
			name:    "weekly on a named day",
			message: "Team standup every Monday",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqWeekly, FreqRecurrance: 2, FreqInterval: 1},
		},
		{
			name:    "compound weekdays",
			message: "Sync every Monday and Thursday",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqWeekly, FreqRecurrance: 2 | 16, FreqInterval: 1},
		},
		{
			name:    "every other weekday name",
			message: "Payroll every other Tuesday",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqWeekly, FreqRecurrance: 4, FreqInterval: 2},
		},
		{
			name:    "biweekly with day",
			message: "Biweekly retro on Friday",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqWeekly, FreqRecurrance: 32, FreqInterval: 2},
		},
		{
			name:    "weekly default monday",
			message: "Send the weekly digest",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqWeekly, FreqRecurrance: 2, FreqInterval: 1},
		},
		{
			name:    "monthly ordinal via explicit marker",
			message: "Report due on the 20th of every month",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1 << 19, FreqInterval: 1},
		},
		{
			name:    "monthly ordinal 15th",
			message: "Reconcile on the 15th of each month",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1 << 14, FreqInterval: 1},
		},
		{
			name:    "monthly last day",
			message: "Pay rent on the last day of each month",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: schedule.LastDayOfMonth, FreqInterval: 1},
		},
		{
			name:    "every other month",
			message: "Board pack every other month",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1, FreqInterval: 2},
		},
		{
			name:    "monthly does not pick up monday",
			message: "Monthly sync on the 3rd",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 4, FreqInterval: 1},
		},
		{
			name:    "quarterly default",
			message: "Quarterly review",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: schedule.QuarterEndDay, FreqInterval: 3},
		},
		{
			name:    "quarterly with day of month",
			message: "Quarterly filing on the 1st of each month",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1, FreqInterval: 3},
		},
		{
			name:    "quarterly named quarters",
			message: "Quarterly report for Q1 and Q3",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1 | 4, FreqInterval: 3},
		},
		{
			name:    "quarterly bare ordinal is a day of month",
			message: "Quarterly review on the 15th",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1 << 14, FreqInterval: 3},
		},
		{
			name:    "quarterly bare ordinal is not a quarter",
			message: "Quarterly VAT return on the 5th",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 1 << 4, FreqInterval: 3},
		},
		{
			name:    "quarterly ordinal quarter name",
			message: "Quarterly planning for the 2nd quarter",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqMonthly, FreqRecurrance: 2, FreqInterval: 3},
		},
		{
			name:    "every weekday is daily on business days",
			message: "Send status every weekday",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqDaily, FreqRecurrance: 1, FreqInterval: 1, BusinessDayBehavior: schedule.BusinessDaySkip},
		},
		{
			name:    "skip weekends stays daily",
			message: "Check balances daily, skip weekends",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqDaily, FreqRecurrance: 1, FreqInterval: 1, BusinessDayBehavior: schedule.BusinessDaySkip},
		},
		{
			name:    "weekend alone is not weekly",
			message: "Clean the garage this weekend",
			want:    schedule.Record{},
		},
		{
			name:    "yearly month",
			message: "Renew license every year in March",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqYearly, FreqRecurrance: 4, FreqInterval: 1},
		},
		{
			name:    "yearly month and day keeps month only",
			message: "Annual audit on December 15",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqYearly, FreqRecurrance: 2048, FreqInterval: 1},
		},
		{
			name:    "yearly default january",
			message: "Annual compliance training",
			want:    schedule.Record{IsRecurring: 1, FreqType: schedule.FreqYearly, FreqRecurrance: 1, FreqInterval: 1},
		},
		{
			name:    "next weekday short circuit",
			message: "Weekly report next Friday",
			want:    schedule.Record{},
		},
		{
			name:    "end of week is not weekly",
			message: "Close out the sprint by end of week",
			want:    schedule.Record{},
		},
		{
			name:    "plain one-off",
			message: "Buy printer paper",
			want:    schedule.Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.message))
		})
	}
}

func TestParse_NextWeekdayNeverRecurring(t *testing.T) {
	p := schedule.New()
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	cues := []string{"daily", "every week", "monthly", "quarterly", "every year", "recurring weekly"}

	for _, d := range days {
		for _, c := range cues {
			r := p.Parse(c + " starting next " + d)
			assert.Equal(t, schedule.Record{}, r, "%s next %s", c, d)
		}
	}
}

func TestParse_CompoundDaysAreBitwiseOr(t *testing.T) {
	p := schedule.New()
	names := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	for i := range names {
		for j := i + 1; j < len(names); j++ {
			r := p.Parse("every " + names[i] + " and " + names[j])
			want := schedule.WeekdayMask(names[i]) | schedule.WeekdayMask(names[j])
			assert.Equal(t, want, r.FreqRecurrance, "%s and %s", names[i], names[j])
			assert.Equal(t, schedule.FreqWeekly, r.FreqType)
		}
	}
}

func TestParse_MonthlyOrdinals(t *testing.T) {
	p := schedule.New()
	for day := 1; day <= 31; day++ {
		r := p.Parse("every month on the " + ordinal(day))
		assert.Equal(t, 1<<(day-1), r.FreqRecurrance, "day %d", day)
	}
}

func TestNormalize(t *testing.T) {
	r := schedule.Record{FreqType: schedule.FreqWeekly, FreqRecurrance: 2, FreqInterval: 1}
	assert.Equal(t, schedule.Record{}, r.Normalize())

	rec := schedule.Record{IsRecurring: 1, FreqType: schedule.FreqDaily, FreqRecurrance: 1, FreqInterval: 1}
	assert.Equal(t, rec, rec.Normalize())
}

func TestMasks(t *testing.T) {
	assert.Equal(t, 2|32, schedule.WeekdayMask("Monday", "fri"))
	assert.Equal(t, 0, schedule.WeekdayMask("someday"))
	assert.Equal(t, 1|2048, schedule.MonthMask("jan", "December"))
	assert.Equal(t, 0, schedule.DayOfMonthBit(32))
	assert.Equal(t, 1<<14, schedule.DayOfMonthBit(15))
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

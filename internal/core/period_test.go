package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRange(t *testing.T) {
	// Saturday, mid-month reference.
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period Period
		start  string
		end    string
	}{
		{"today", PeriodToday, "2024-06-15", "2024-06-15"},
		{"week is sunday through saturday", PeriodWeek, "2024-06-09", "2024-06-15"},
		{"current month", PeriodCurrentMonth, "2024-06-01", "2024-06-30"},
		{"last month", PeriodLastMonth, "2024-05-01", "2024-05-31"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := ResolveRange(tc.period, now)
			require.False(t, r.Unbounded())
			assert.Equal(t, tc.start, r.Start.String())
			assert.Equal(t, tc.end, r.End.String())
			assert.False(t, r.Start.After(r.End.Time), "start must not exceed end")
		})
	}
}

func TestResolveRangeUnbounded(t *testing.T) {
	now := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, ResolveRange(PeriodAll, now).Unbounded())
	// Unrecognized tokens degrade to "no filter" instead of failing.
	assert.True(t, ResolveRange(Period("quarter"), now).Unbounded())
	assert.True(t, ResolveRange(Period(""), now).Unbounded())
}

func TestResolveRangeMonthEdges(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		period Period
		start  string
		end    string
	}{
		{
			"leap february",
			time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			PeriodCurrentMonth, "2024-02-01", "2024-02-29",
		},
		{
			"last month across a year boundary",
			time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			PeriodLastMonth, "2024-12-01", "2024-12-31",
		},
		{
			"week spanning two months",
			time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), // Monday
			PeriodWeek, "2024-06-30", "2024-07-06",
		},
		{
			"today on a sunday",
			time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC),
			PeriodToday, "2024-06-09", "2024-06-09",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := ResolveRange(tc.period, tc.now)
			assert.Equal(t, tc.start, r.Start.String())
			assert.Equal(t, tc.end, r.End.String())
		})
	}
}

func TestResolveRangeStartsOnDayOne(t *testing.T) {
	// Property: currentMonth always starts on the first, whatever "now" is.
	for month := 1; month <= 12; month++ {
		now := time.Date(2024, time.Month(month), 17, 8, 0, 0, 0, time.UTC)
		r := ResolveRange(PeriodCurrentMonth, now)
		assert.Equal(t, 1, r.Start.Day())
	}
}

func TestDateRangeContains(t *testing.T) {
	r := CustomRange(NewDate(2024, 6, 1), NewDate(2024, 6, 30))

	assert.True(t, r.Contains(NewDate(2024, 6, 1)), "inclusive start")
	assert.True(t, r.Contains(NewDate(2024, 6, 30)), "inclusive end")
	assert.False(t, r.Contains(NewDate(2024, 5, 31)))
	assert.False(t, r.Contains(NewDate(2024, 7, 1)))
	assert.False(t, r.Contains(Date{}), "zero date excluded while bounded")

	all := DateRange{}
	assert.True(t, all.Contains(NewDate(1999, 1, 1)))
	assert.True(t, all.Contains(Date{}), "zero date passes when unbounded")
}

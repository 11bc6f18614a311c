package core

import "time"

const (
	PeriodToday        Period = "today"
	PeriodWeek         Period = "week"
	PeriodCurrentMonth Period = "currentMonth"
	PeriodLastMonth    Period = "lastMonth"
	PeriodAll          Period = "all"
	PeriodCustom       Period = "custom"
)

// Period is a named aggregation window resolved against a reference instant.
type Period string

// DateRange is an inclusive pair of calendar dates. The zero value is the
// unbounded range: no filtering, every transaction passes.
type DateRange struct {
	Start Date
	End   Date
}

// Unbounded reports whether the range filters nothing.
func (r DateRange) Unbounded() bool {
	return r.Start.IsZero() || r.End.IsZero()
}

// Contains reports whether d falls within the range. Under an unbounded range
// everything passes, including records with no usable date; under a bounded
// one a zero date is excluded rather than compared.
func (r DateRange) Contains(d Date) bool {
	if r.Unbounded() {
		return true
	}
	if d.IsZero() {
		return false
	}
	return !d.Before(r.Start.Time) && !d.After(r.End.Time)
}

// CustomRange builds a range from explicit boundaries, used verbatim in place
// of named-period resolution.
func CustomRange(start, end Date) DateRange {
	return DateRange{Start: start, End: end}
}

// ResolveRange computes the inclusive boundaries for a named period relative
// to the reference instant's calendar date. Weeks run Sunday through Saturday;
// this is a fixed product convention. PeriodAll and any unrecognized token
// resolve to the unbounded range, so bad input degrades to "no filter" rather
// than failing.
func ResolveRange(p Period, now time.Time) DateRange {
	ref := DateOf(now)
	switch p {
	case PeriodToday:
		return DateRange{Start: ref, End: ref}
	case PeriodWeek:
		start := ref.AddDays(-int(ref.Weekday()))
		return DateRange{Start: start, End: start.AddDays(6)}
	case PeriodCurrentMonth:
		return DateRange{
			Start: NewDate(ref.Year(), int(ref.Month()), 1),
			End:   NewDate(ref.Year(), int(ref.Month())+1, 0),
		}
	case PeriodLastMonth:
		return DateRange{
			Start: NewDate(ref.Year(), int(ref.Month())-1, 1),
			End:   NewDate(ref.Year(), int(ref.Month()), 0),
		}
	default:
		return DateRange{}
	}
}

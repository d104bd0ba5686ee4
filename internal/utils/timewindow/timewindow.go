// Package timewindow resolves the calendar date ranges that the aggregation
// queries run over. A Period anchors to "now" (or an explicit end) and picks
// a default start; a View anchors to a selected date and snaps to calendar
// boundaries. All math stays in the reference time's location.
package timewindow

import (
	"fmt"
	"time"
)

// Period is a named default window granularity for analytics.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// View is a calendar-aligned snapshot window anchored to a selected date.
type View string

const (
	Today View = "today"
	Week  View = "week"
	Month View = "month"
	Year  View = "year"
)

// DayKeyFormat is the date-only key used for trend bucketing.
const DayKeyFormat = "2006-01-02"

// DayKey truncates a timestamp to its date-only trend bucket key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResolvePeriod returns the inclusive [start, end] range for an analytics
// request. Explicit bounds win when both are present; otherwise the period
// derives a default start from the reference end (explicit end or now):
// daily starts at the reference end's midnight, weekly seven days back
// (not calendar-aligned), monthly at the first of the month, yearly at
// January 1. Unrecognized periods behave as monthly.
func ResolvePeriod(period Period, explicitStart, explicitEnd *time.Time, now time.Time) (time.Time, time.Time) {
	if explicitStart != nil && explicitEnd != nil {
		return *explicitStart, *explicitEnd
	}

	end := now
	if explicitEnd != nil {
		end = *explicitEnd
	}

	var start time.Time
	switch period {
	case Daily:
		start = midnight(end)
	case Weekly:
		start = end.AddDate(0, 0, -7)
	case Yearly:
		start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, end.Location())
	case Monthly:
		fallthrough
	default:
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	}

	if explicitStart != nil {
		start = *explicitStart
	}
	return start, end
}

// ResolveView returns the inclusive [start, end] range for a snapshot view
// anchored to the selected date. Weeks start on Sunday.
func ResolveView(view View, selected time.Time) (time.Time, time.Time, error) {
	loc := selected.Location()
	switch view {
	case Today:
		start := midnight(selected)
		end := time.Date(selected.Year(), selected.Month(), selected.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
		return start, end, nil
	case Week:
		start := midnight(selected).AddDate(0, 0, -int(selected.Weekday()))
		end := start.AddDate(0, 0, 6)
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, loc)
		return start, end, nil
	case Month:
		start := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, loc)
		// Day 0 of the next month is the last day of this one.
		last := time.Date(selected.Year(), selected.Month()+1, 0, 23, 59, 59, 0, loc)
		return start, last, nil
	case Year:
		start := time.Date(selected.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end := time.Date(selected.Year(), time.December, 31, 23, 59, 59, 0, loc)
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("invalid view type %q", view)
	}
}

// MonthWindow returns the inclusive [first instant, last second] range of a
// calendar month, used for budget spent computation.
func MonthWindow(month, year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, loc)
	return start, end
}

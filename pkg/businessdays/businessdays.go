// Package businessdays implements the weekday calendar used for due-date and
// delinquency math. Business days are Monday through Friday, no holiday calendar.
package businessdays

import "time"

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CountBetween returns the number of weekdays strictly after start up to and
// including end, moving forward. It returns 0 when start >= end. Both
// arguments are reduced to their calendar dates first, so a midnight-UTC
// value scanned from a DATE column and a local-midnight "today" compare by
// date, not by instant.
func CountBetween(start, end time.Time) int {
	start = Civil(start, time.UTC)
	end = Civil(end, time.UTC)
	if !start.Before(end) {
		return 0
	}
	count := 0
	for cur := start.AddDate(0, 0, 1); !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		if isWeekday(cur) {
			count++
		}
	}
	return count
}

// Add advances start by n weekdays, skipping Saturdays and Sundays. The result
// is always a weekday for n >= 1. For n <= 0 it returns start unchanged.
func Add(start time.Time, n int) time.Time {
	cur := Truncate(start)
	for added := 0; added < n; {
		cur = cur.AddDate(0, 0, 1)
		if isWeekday(cur) {
			added++
		}
	}
	return cur
}

// NextWeekday rolls t forward to the next weekday if it falls on a weekend.
func NextWeekday(t time.Time) time.Time {
	cur := Truncate(t)
	for !isWeekday(cur) {
		cur = cur.AddDate(0, 0, 1)
	}
	return cur
}

// Truncate drops the time-of-day component, keeping the civil date in t's
// location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Civil rebuilds t's calendar date at midnight in loc. DATE columns scan as
// midnight UTC while "today" is midnight in the library's zone; as instants
// those differ by the zone offset, which shifts every date comparison by a
// day. Comparisons against today must put both sides through this first.
func Civil(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Today returns the current civil date in loc. All due-date comparisons run
// against this value, not UTC, so date boundaries match the library's wall
// clock.
func Today(loc *time.Location) time.Time {
	return Truncate(time.Now().In(loc))
}

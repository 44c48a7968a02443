// Package timeutil provides calendar-day and week boundary helpers for
// windowing reports over the log.
package timeutil

import "time"

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the first day of t's week.
// weekStartDay is "monday" or "sunday"; anything else defaults to
// monday (ISO 8601).
func StartOfWeek(t time.Time, weekStartDay string) time.Time {
	day := StartOfDay(t)

	if weekStartDay == "sunday" {
		return day.AddDate(0, 0, -int(day.Weekday()))
	}

	// Monday start: Sunday counts as 6 days into the week.
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

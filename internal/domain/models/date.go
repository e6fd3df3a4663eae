package models

import "time"

// CalendarDate returns the stored form of a calendar date: UTC midnight of
// the day t falls on in its own location. Course and enrollment dates are
// kept this way and read back as wall-clock dates in the app's zone.
func CalendarDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	out := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &out
}

// Package coursestats derives the dashboard figures from one load of the
// five record collections.
//
// Everything here is pure: the same snapshot and the same "now" always give
// the same summary. Nothing is cached between calls.
package coursestats

import (
	"sort"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/system/locale"
	"github.com/dalemusser/kursmanager/internal/domain/models"
)

// DefaultActiveLimit is how many active courses the dashboard lists.
const DefaultActiveLimit = 5

// Order controls the category order of the monthly histogram.
type Order string

const (
	// OrderEncounter keeps groups in the order their first course was seen.
	OrderEncounter Order = "encounter"
	// OrderChronological sorts groups by the earliest start date they contain.
	OrderChronological Order = "chronological"
)

// ParseOrder maps a config value to an Order, falling back to chronological.
func ParseOrder(s string) Order {
	if Order(s) == OrderEncounter {
		return OrderEncounter
	}
	return OrderChronological
}

// Snapshot holds the five collections from a single load.
type Snapshot struct {
	Courses      []models.Course
	Enrollments  []models.Enrollment
	Instructors  []models.Instructor
	Participants []models.Participant
	Rooms        []models.Room
}

// Options tunes Compute.
type Options struct {
	ActiveLimit    int            // 0 means DefaultActiveLimit
	HistogramOrder Order          // "" means OrderChronological
	Location       *time.Location // zone used to read record dates; nil means time.Local
}

// MonthCount is one bar of the upcoming-courses histogram.
type MonthCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`

	first time.Time
}

// CourseBreakdown is a course with its enrollment figures.
type CourseBreakdown struct {
	Course      models.Course
	Enrollments int
	Paid        int
}

// Summary is everything the dashboard shows.
type Summary struct {
	CourseCount      int
	EnrollmentCount  int
	InstructorCount  int
	ParticipantCount int
	RoomCount        int

	Active   []models.Course
	Upcoming []models.Course

	Paid    int
	Open    int
	Revenue float64

	Months     []MonthCount
	ActiveList []CourseBreakdown
}

// Compute derives the summary for snap as of now.
func Compute(snap Snapshot, now time.Time, opts Options) Summary {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	limit := opts.ActiveLimit
	if limit <= 0 {
		limit = DefaultActiveLimit
	}

	s := Summary{
		CourseCount:      len(snap.Courses),
		EnrollmentCount:  len(snap.Enrollments),
		InstructorCount:  len(snap.Instructors),
		ParticipantCount: len(snap.Participants),
		RoomCount:        len(snap.Rooms),
		Paid:             PaidCount(snap.Enrollments),
		Open:             OpenCount(snap.Enrollments),
		Revenue:          Revenue(snap.Courses, snap.Enrollments),
	}

	for _, c := range snap.Courses {
		if IsActive(c, now) {
			s.Active = append(s.Active, c)
		}
		if IsUpcoming(c, now) {
			s.Upcoming = append(s.Upcoming, c)
		}
	}

	s.Months = MonthlyHistogram(s.Upcoming, loc, opts.HistogramOrder)

	for i, c := range s.Active {
		if i == limit {
			break
		}
		s.ActiveList = append(s.ActiveList, Breakdown(c, snap.Enrollments))
	}

	return s
}

// IsActive reports whether the course runs at now: it started before now or
// on the same calendar day, and it has no end date or ends after now.
func IsActive(c models.Course, now time.Time) bool {
	if c.StartDate == nil {
		return false
	}
	start := wallClock(*c.StartDate, now.Location())
	if !(sameDay(start, now) || start.Before(now)) {
		return false
	}
	if c.EndDate == nil {
		return true
	}
	return wallClock(*c.EndDate, now.Location()).After(now)
}

// IsUpcoming reports whether the course starts strictly after now.
func IsUpcoming(c models.Course, now time.Time) bool {
	if c.StartDate == nil {
		return false
	}
	return wallClock(*c.StartDate, now.Location()).After(now)
}

// PaidCount counts enrollments with the paid flag set.
func PaidCount(enrollments []models.Enrollment) int {
	n := 0
	for _, e := range enrollments {
		if e.Paid {
			n++
		}
	}
	return n
}

// OpenCount counts enrollments without the paid flag.
func OpenCount(enrollments []models.Enrollment) int {
	return len(enrollments) - PaidCount(enrollments)
}

// Revenue sums, over all courses, paid enrollments referencing the course
// times the course price (0 when absent).
func Revenue(courses []models.Course, enrollments []models.Enrollment) float64 {
	paidByCourse := make(map[string]int, len(courses))
	for _, e := range enrollments {
		if e.Paid {
			paidByCourse[e.CourseRef.ID()]++
		}
	}

	var sum float64
	for _, c := range courses {
		if c.ID == "" {
			continue
		}
		sum += float64(paidByCourse[c.ID]) * c.PriceOrZero()
	}
	return sum
}

// Breakdown counts the enrollments, and the paid ones, that reference course.
func Breakdown(course models.Course, enrollments []models.Enrollment) CourseBreakdown {
	b := CourseBreakdown{Course: course}
	for _, e := range enrollments {
		if !e.CourseRef.References(course.ID) {
			continue
		}
		b.Enrollments++
		if e.Paid {
			b.Paid++
		}
	}
	return b
}

// MonthlyHistogram groups courses by the German short month name of their
// start date. Courses without a start date are skipped. Groups with the same
// label merge regardless of year.
func MonthlyHistogram(courses []models.Course, loc *time.Location, order Order) []MonthCount {
	if loc == nil {
		loc = time.Local
	}

	var out []MonthCount
	index := make(map[string]int)
	for _, c := range courses {
		if c.StartDate == nil {
			continue
		}
		start := wallClock(*c.StartDate, loc)
		label := locale.MonthAbbrev(start.Month())
		if i, ok := index[label]; ok {
			out[i].Count++
			if start.Before(out[i].first) {
				out[i].first = start
			}
			continue
		}
		index[label] = len(out)
		out = append(out, MonthCount{Label: label, Count: 1, first: start})
	}

	if order != OrderEncounter {
		sort.SliceStable(out, func(i, j int) bool { return out[i].first.Before(out[j].first) })
	}
	return out
}

// wallClock reinterprets t's wall clock in loc. Stored dates are calendar
// dates at UTC midnight (models.CalendarDate), so 2026-03-05 00:00 UTC
// becomes 2026-03-05 00:00 in loc.
func wallClock(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

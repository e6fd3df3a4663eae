// internal/app/features/dashboard/summary.go
package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/kursmanager/internal/app/system/coursestats"
	"go.uber.org/zap"
)

type activeCourseJSON struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Enrollments int      `json:"enrollments"`
	Paid        int      `json:"paid"`
}

type summaryJSON struct {
	LoadID       string                   `json:"load_id"`
	Courses      int                      `json:"courses"`
	Enrollments  int                      `json:"enrollments"`
	Instructors  int                      `json:"instructors"`
	Participants int                      `json:"participants"`
	Rooms        int                      `json:"rooms"`
	Active       int                      `json:"active"`
	Upcoming     int                      `json:"upcoming"`
	Paid         int                      `json:"paid"`
	Open         int                      `json:"open"`
	Revenue      float64                  `json:"revenue"`
	Months       []coursestats.MonthCount `json:"months"`
	ActiveList   []activeCourseJSON       `json:"active_courses"`
	Failed       []string                 `json:"failed"`
}

const dateLayout = "2006-01-02"

func newSummaryJSON(s coursestats.Summary, rep LoadReport) summaryJSON {
	out := summaryJSON{
		LoadID:       rep.ID,
		Courses:      s.CourseCount,
		Enrollments:  s.EnrollmentCount,
		Instructors:  s.InstructorCount,
		Participants: s.ParticipantCount,
		Rooms:        s.RoomCount,
		Active:       len(s.Active),
		Upcoming:     len(s.Upcoming),
		Paid:         s.Paid,
		Open:         s.Open,
		Revenue:      s.Revenue,
		Months:       s.Months,
		ActiveList:   make([]activeCourseJSON, 0, len(s.ActiveList)),
		Failed:       rep.FailedNames(),
	}
	if out.Months == nil {
		out.Months = []coursestats.MonthCount{}
	}
	for _, b := range s.ActiveList {
		c := b.Course
		row := activeCourseJSON{
			ID:          c.ID,
			Title:       c.Title,
			Price:       c.Price,
			Enrollments: b.Enrollments,
			Paid:        b.Paid,
		}
		if c.StartDate != nil {
			row.StartDate = c.StartDate.Format(dateLayout)
		}
		if c.EndDate != nil {
			row.EndDate = c.EndDate.Format(dateLayout)
		}
		out.ActiveList = append(out.ActiveList, row)
	}
	return out
}

// ServeSummaryJSON handles GET /dashboard/summary.json with the same figures
// the page shows, unformatted.
func (h *Handler) ServeSummaryJSON(w http.ResponseWriter, r *http.Request) {
	summary, rep, ok := h.compute(r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(newSummaryJSON(summary, rep)); err != nil {
		h.Log.Error("dashboard summary write failed", zap.String("load_id", rep.ID), zap.Error(err))
	}
}

// internal/app/features/dashboard/export.go
package dashboard

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	errorsfeature "github.com/dalemusser/kursmanager/internal/app/features/errors"
	"github.com/dalemusser/kursmanager/internal/app/system/coursestats"
	"github.com/dalemusser/kursmanager/internal/app/system/export"
	"github.com/dalemusser/kursmanager/internal/app/system/locale"
	"go.uber.org/zap"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

// exportReport lays out the dashboard figures as three tables.
func exportReport(s coursestats.Summary, rep LoadReport, now time.Time) export.Report {
	kpis := export.Dataset{
		Title:   "Kennzahlen",
		Headers: []string{"Kennzahl", "Wert"},
		Rows: [][]string{
			{"Kurse gesamt", strconv.Itoa(s.CourseCount)},
			{"Aktive Kurse", strconv.Itoa(len(s.Active))},
			{"Kommende Kurse", strconv.Itoa(len(s.Upcoming))},
			{"Anmeldungen", strconv.Itoa(s.EnrollmentCount)},
			{"Bezahlt", strconv.Itoa(s.Paid)},
			{"Offen", strconv.Itoa(s.Open)},
			{"Teilnehmer", strconv.Itoa(s.ParticipantCount)},
			{"Dozenten", strconv.Itoa(s.InstructorCount)},
			{"Räume", strconv.Itoa(s.RoomCount)},
			{"Umsatz (bezahlt)", locale.EUR(s.Revenue)},
		},
	}

	months := export.Dataset{
		Title:   "Kommende Kurse",
		Headers: []string{"Monat", "Kurse"},
	}
	for _, m := range s.Months {
		months.Rows = append(months.Rows, []string{m.Label, strconv.Itoa(m.Count)})
	}

	active := export.Dataset{
		Title:   "Aktive Kurse",
		Headers: []string{"Kurs", "Beginn", "Ende", "Anmeldungen", "Bezahlt", "Preis"},
	}
	for _, b := range s.ActiveList {
		c := b.Course
		row := []string{c.Title, "", "", strconv.Itoa(b.Enrollments), strconv.Itoa(b.Paid), ""}
		if c.StartDate != nil {
			row[1] = locale.DayMonthYear(*c.StartDate)
		}
		if c.EndDate != nil {
			row[2] = locale.DayMonthYear(*c.EndDate)
		}
		if c.Price != nil {
			row[5] = locale.EUR(*c.Price)
		}
		active.Rows = append(active.Rows, row)
	}

	subtitle := "Stand: " + locale.DayMonthYear(now) + " " + now.Format("15:04")
	if len(rep.Failures) > 0 {
		subtitle += " (unvollständig: " + strings.Join(rep.FailedLabels(), ", ") + ")"
	}

	return export.Report{
		Title:    "KursManager Übersicht",
		Subtitle: subtitle,
		Sections: []export.Dataset{kpis, months, active},
	}
}

type renderer interface {
	Render(rep export.Report) ([]byte, error)
}

// ServeExportXLSX handles GET /dashboard/export.xlsx.
func (h *Handler) ServeExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, export.NewXLSXExporter(), xlsxContentType, "xlsx")
}

// ServeExportPDF handles GET /dashboard/export.pdf.
func (h *Handler) ServeExportPDF(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, export.NewPDFExporter(), pdfContentType, "pdf")
}

func (h *Handler) serveExport(w http.ResponseWriter, r *http.Request, x renderer, contentType, ext string) {
	summary, rep, ok := h.compute(r)
	if !ok {
		return
	}

	now := h.now().In(h.Opts.Location)
	body, err := x.Render(exportReport(summary, rep, now))
	if err != nil {
		h.Log.Error("dashboard export failed",
			zap.String("load_id", rep.ID),
			zap.String("format", ext),
			zap.Error(err))
		errorsfeature.RenderServerError(w, r, "Der Export konnte nicht erstellt werden.")
		return
	}

	filename := fmt.Sprintf("kursmanager-%s.%s", now.Format("2006-01-02"), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if _, err := w.Write(body); err != nil {
		h.Log.Error("dashboard export write failed", zap.String("load_id", rep.ID), zap.Error(err))
	}
}

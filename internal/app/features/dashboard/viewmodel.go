// internal/app/features/dashboard/viewmodel.go
package dashboard

import (
	"fmt"
	"html/template"

	"github.com/dalemusser/kursmanager/internal/app/system/barchart"
	"github.com/dalemusser/kursmanager/internal/app/system/coursestats"
	"github.com/dalemusser/kursmanager/internal/app/system/htmlsanitize"
	"github.com/dalemusser/kursmanager/internal/app/system/locale"
)

type heroVM struct {
	Greeting     string
	Heading      string
	Stats        string
	RevenueLabel string
	Revenue      string
	Chips        []string
}

type kpiTile struct {
	Label    string
	Value    int
	Sub      string
	Href     string
	Gradient string
}

type quickLink struct {
	Label string
	Desc  string
	Href  string
}

type activeRow struct {
	ID          string
	Title       string
	Dates       string
	Enrollments string
	Paid        string
	Price       string // empty when the course has no price
}

type chartVM struct {
	Title    string
	Sub      string
	SVG      template.HTML
	Empty    bool
	EmptyMsg string
}

// overviewData is the ready-state view model.
type overviewData struct {
	Hero       heroVM
	Tiles      []kpiTile
	Chart      chartVM
	QuickLinks []quickLink
	Active     []activeRow

	ShowErrors   bool
	FailedLabels []string

	LoadID string
}

var quickLinks = []quickLink{
	{Label: "Kurse verwalten", Desc: "Kurse anlegen & bearbeiten", Href: "/kurse"},
	{Label: "Dozenten", Desc: "Dozenten & Fachgebiete", Href: "/dozenten"},
	{Label: "Teilnehmer", Desc: "Teilnehmerliste pflegen", Href: "/teilnehmer"},
	{Label: "Räume", Desc: "Räume & Kapazitäten", Href: "/raeume"},
	{Label: "Anmeldungen", Desc: "Buchungen & Zahlungen", Href: "/anmeldungen"},
}

// buildOverview turns a summary into display strings. Chart rendering errors
// fall back to the empty state.
func buildOverview(s coursestats.Summary, rep LoadReport, showErrors bool) (overviewData, error) {
	d := overviewData{
		Hero: heroVM{
			Greeting:     "Willkommen zurück",
			Heading:      "KursManager",
			Stats:        fmt.Sprintf("%d Kurse · %d Teilnehmer · %d Dozenten", s.CourseCount, s.ParticipantCount, s.InstructorCount),
			RevenueLabel: "Umsatz (bezahlt)",
			Revenue:      locale.EURWhole(s.Revenue),
			Chips: []string{
				fmt.Sprintf("%d Zahlungen eingegangen", s.Paid),
				fmt.Sprintf("%d Zahlungen ausstehend", s.Open),
				fmt.Sprintf("%d Kurse laufen gerade", len(s.Active)),
			},
		},
		Tiles: []kpiTile{
			{Label: "Kurse gesamt", Value: s.CourseCount, Sub: fmt.Sprintf("%d aktiv · %d kommend", len(s.Active), len(s.Upcoming)), Href: "/kurse", Gradient: "stat-gradient-1"},
			{Label: "Anmeldungen", Value: s.EnrollmentCount, Sub: fmt.Sprintf("%d bezahlt · %d offen", s.Paid, s.Open), Href: "/anmeldungen", Gradient: "stat-gradient-2"},
			{Label: "Teilnehmer", Value: s.ParticipantCount, Sub: "registrierte Personen", Href: "/teilnehmer", Gradient: "stat-gradient-3"},
			{Label: "Dozenten", Value: s.InstructorCount, Sub: fmt.Sprintf("%d Räume verfügbar", s.RoomCount), Href: "/dozenten", Gradient: "stat-gradient-4"},
		},
		Chart: chartVM{
			Title:    "Kommende Kurse",
			Sub:      fmt.Sprintf("%d Kurse geplant", len(s.Upcoming)),
			Empty:    true,
			EmptyMsg: "Noch keine kommenden Kurse eingetragen",
		},
		QuickLinks: quickLinks,
		ShowErrors: showErrors && len(rep.Failures) > 0,
		LoadID:     rep.ID,
	}
	if d.ShowErrors {
		d.FailedLabels = rep.FailedLabels()
	}

	for _, b := range s.ActiveList {
		d.Active = append(d.Active, activeRowFor(b))
	}

	if len(s.Months) == 0 {
		return d, nil
	}
	points := make([]barchart.Point, 0, len(s.Months))
	for _, m := range s.Months {
		points = append(points, barchart.Point{Label: m.Label, Count: m.Count})
	}
	svg, err := barchart.Build(points, "Kurse").SVG()
	if err != nil {
		return d, fmt.Errorf("render chart: %w", err)
	}
	d.Chart.SVG = svg
	d.Chart.Empty = false
	return d, nil
}

func activeRowFor(b coursestats.CourseBreakdown) activeRow {
	c := b.Course
	row := activeRow{
		ID:          c.ID,
		Title:       htmlsanitize.Text(c.Title),
		Enrollments: fmt.Sprintf("%d Anmeldungen", b.Enrollments),
		Paid:        fmt.Sprintf("%d bezahlt", b.Paid),
	}
	if c.StartDate != nil {
		row.Dates = locale.DayMonth(*c.StartDate)
	}
	if c.EndDate != nil {
		row.Dates += " – " + locale.DayMonthYear(*c.EndDate)
	}
	if c.Price != nil {
		row.Price = locale.EUR(*c.Price)
	}
	return row
}

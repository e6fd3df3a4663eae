package dashboard

import (
	"bytes"
	"errors"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/resources"
	"github.com/dalemusser/kursmanager/internal/app/system/coursestats"
	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/dalemusser/kursmanager/internal/app/system/viewdata"
	"github.com/dalemusser/kursmanager/internal/domain/models"
	"github.com/dalemusser/kursmanager/internal/testutil"
)

var viewNow = time.Date(2026, 10, 16, 14, 30, 0, 0, testutil.Berlin)

func parseViews(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.New("root").ParseFS(resources.FS, "templates/*.gohtml")
	if err != nil {
		t.Fatalf("parse shared templates: %v", err)
	}
	if _, err := tmpl.ParseFS(FS, "templates/*.gohtml"); err != nil {
		t.Fatalf("parse dashboard templates: %v", err)
	}
	return tmpl
}

func render(t *testing.T, name string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := parseViews(t).ExecuteTemplate(&buf, name, data); err != nil {
		t.Fatalf("execute %s: %v", name, err)
	}
	return buf.String()
}

func scenarioSnapshot() coursestats.Snapshot {
	return coursestats.Snapshot{
		Courses: []models.Course{
			testutil.Course("A", "Kurs A", testutil.Date(2026, 10, 16), nil, testutil.Price(100)),
			testutil.Course("B", "Kurs B", testutil.Date(2026, 10, 26), nil, testutil.Price(50)),
		},
		Enrollments: []models.Enrollment{
			testutil.Enrollment("e1", "A", true),
			testutil.Enrollment("e2", "A", false),
			testutil.Enrollment("e3", "B", true),
		},
	}
}

func compute(snap coursestats.Snapshot) coursestats.Summary {
	return coursestats.Compute(snap, viewNow, coursestats.Options{Location: testutil.Berlin})
}

func TestBuildOverview_Empty(t *testing.T) {
	d, err := buildOverview(compute(coursestats.Snapshot{}), LoadReport{}, false)
	if err != nil {
		t.Fatalf("buildOverview: %v", err)
	}
	for _, tile := range d.Tiles {
		if tile.Value != 0 {
			t.Errorf("tile %q: got %d, want 0", tile.Label, tile.Value)
		}
	}
	if d.Hero.Revenue != "0\u00a0€" {
		t.Errorf("revenue: got %q, want %q", d.Hero.Revenue, "0\u00a0€")
	}
	if !d.Chart.Empty {
		t.Error("chart should be empty")
	}
	if len(d.Active) != 0 {
		t.Errorf("active rows: got %d, want 0", len(d.Active))
	}

	html := render(t, "dashboard_overview", d)
	if !strings.Contains(html, "Noch keine kommenden Kurse eingetragen") {
		t.Error("missing empty-state message")
	}
	if strings.Contains(html, "Aktive Kurse") {
		t.Error("active-courses panel should not render")
	}
	if strings.Contains(html, "<svg") {
		t.Error("chart should not render")
	}
}

func TestBuildOverview_Scenario(t *testing.T) {
	d, err := buildOverview(compute(scenarioSnapshot()), LoadReport{}, false)
	if err != nil {
		t.Fatalf("buildOverview: %v", err)
	}

	if d.Hero.Revenue != "150\u00a0€" {
		t.Errorf("revenue: got %q, want %q", d.Hero.Revenue, "150\u00a0€")
	}
	wantChips := []string{"2 Zahlungen eingegangen", "1 Zahlungen ausstehend", "1 Kurse laufen gerade"}
	for i, w := range wantChips {
		if d.Hero.Chips[i] != w {
			t.Errorf("chip %d: got %q, want %q", i, d.Hero.Chips[i], w)
		}
	}
	if got := d.Tiles[0].Sub; got != "1 aktiv · 1 kommend" {
		t.Errorf("courses tile sub: got %q", got)
	}
	if got := d.Tiles[1].Sub; got != "2 bezahlt · 1 offen" {
		t.Errorf("enrollments tile sub: got %q", got)
	}
	if d.Chart.Empty || d.Chart.Sub != "1 Kurse geplant" {
		t.Errorf("chart: empty=%v sub=%q", d.Chart.Empty, d.Chart.Sub)
	}

	if len(d.Active) != 1 {
		t.Fatalf("active rows: got %d, want 1", len(d.Active))
	}
	row := d.Active[0]
	if row.Dates != "16. Okt." || row.Enrollments != "2 Anmeldungen" || row.Paid != "1 bezahlt" || row.Price != "100,00\u00a0€" {
		t.Errorf("active row: got %+v", row)
	}

	html := render(t, "dashboard_overview", d)
	for _, want := range []string{"Willkommen zurück", "KursManager", "Umsatz (bezahlt)", "Kommende Kurse", "Schnellzugriff", "Aktive Kurse", "<svg", "/raeume"} {
		if !strings.Contains(html, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestActiveRow_EndDate(t *testing.T) {
	c := testutil.Course("X", "<b>Aquarell</b>", testutil.Date(2026, 3, 5), testutil.Date(2026, 12, 20), nil)
	row := activeRowFor(coursestats.CourseBreakdown{Course: c})

	if row.Dates != "05. März – 20. Dez. 2026" {
		t.Errorf("Dates: got %q", row.Dates)
	}
	if row.Title != "Aquarell" {
		t.Errorf("Title: got %q, want markup stripped", row.Title)
	}
	if row.Price != "" {
		t.Errorf("Price: got %q, want empty", row.Price)
	}
}

func TestOverview_ErrorBanner(t *testing.T) {
	rep := LoadReport{Failures: []LoadFailure{{Collection: datasource.Enrollments, Err: errors.New("down")}}}
	snap := scenarioSnapshot()
	snap.Enrollments = nil

	silent, _ := buildOverview(compute(snap), rep, false)
	if html := render(t, "dashboard_overview", silent); strings.Contains(html, "role=\"alert\"") {
		t.Error("banner shown although load errors are hidden")
	}

	shown, _ := buildOverview(compute(snap), rep, true)
	html := render(t, "dashboard_overview", shown)
	if !strings.Contains(html, "role=\"alert\"") || !strings.Contains(html, "Anmeldungen") {
		t.Error("banner should name Anmeldungen")
	}
}

func TestShell_LoadingState(t *testing.T) {
	data := shellData{
		BaseVM:      viewdata.BaseVM{SiteName: viewdata.SiteName, Title: "Dashboard", Nav: viewdata.Nav("/dashboard")},
		Loading:     "Daten werden geladen…",
		OverviewURL: "/dashboard/overview",
		ReadyURL:    "/dashboard?ready=1",
	}
	html := render(t, "dashboard_shell", data)

	for _, want := range []string{"Daten werden geladen…", `hx-get="/dashboard/overview"`, `hx-trigger="load"`, "<noscript>"} {
		if !strings.Contains(html, want) {
			t.Errorf("shell missing %q", want)
		}
	}
	for _, absent := range []string{"Willkommen zurück", "Schnellzugriff"} {
		if strings.Contains(html, absent) {
			t.Errorf("shell should not contain %q", absent)
		}
	}
}

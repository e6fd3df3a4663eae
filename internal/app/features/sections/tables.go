// internal/app/features/sections/tables.go
package sections

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/dalemusser/kursmanager/internal/app/system/htmlsanitize"
	"github.com/dalemusser/kursmanager/internal/app/system/locale"
	"github.com/dalemusser/waffle/pantry/text"
)

// build reads what collection c's page needs and lays it out as a table.
// Lookups for referenced names are best effort: a failed lookup shows the
// raw reference instead.
func (h *Handler) build(ctx context.Context, c datasource.Collection) (table, error) {
	switch c {
	case datasource.Courses:
		return h.courseTable(ctx)
	case datasource.Enrollments:
		return h.enrollmentTable(ctx)
	case datasource.Instructors:
		return h.instructorTable(ctx)
	case datasource.Participants:
		return h.participantTable(ctx)
	case datasource.Rooms:
		return h.roomTable(ctx)
	}
	return table{}, fmt.Errorf("unknown collection %q", c)
}

func plain(s string) cell { return cell{Text: s} }

func newRow(name string, cells ...cell) row {
	return row{Cells: cells, key: text.Fold(name)}
}

func (h *Handler) courseTable(ctx context.Context) (table, error) {
	t := table{Columns: []string{"Titel", "Beschreibung", "Beginn", "Ende", "Preis", "Dozent", "Raum"}}

	courses, err := h.Source.Courses(ctx)
	if err != nil {
		return t, err
	}

	instructors := map[string]string{}
	if list, err := h.Source.Instructors(ctx); err == nil {
		for _, i := range list {
			instructors[i.ID] = htmlsanitize.Text(i.Name)
		}
	}
	rooms := map[string]string{}
	if list, err := h.Source.Rooms(ctx); err == nil {
		for _, r := range list {
			rooms[r.ID] = htmlsanitize.Text(r.Name)
		}
	}

	for _, c := range courses {
		title := htmlsanitize.Text(c.Title)
		var start, end, price string
		if c.StartDate != nil {
			start = locale.DayMonthYear(*c.StartDate)
		}
		if c.EndDate != nil {
			end = locale.DayMonthYear(*c.EndDate)
		}
		if c.Price != nil {
			price = locale.EUR(*c.Price)
		}
		t.Rows = append(t.Rows, newRow(title,
			plain(title),
			cell{HTML: htmlsanitize.SanitizeToHTML(c.Description)},
			plain(start),
			plain(end),
			plain(price),
			plain(lookup(instructors, c.InstructorRef.ID())),
			plain(lookup(rooms, c.RoomRef.ID())),
		))
	}
	return t, nil
}

func (h *Handler) enrollmentTable(ctx context.Context) (table, error) {
	t := table{Columns: []string{"Kurs", "Teilnehmer", "Bezahlt", "Angemeldet am"}}

	enrollments, err := h.Source.Enrollments(ctx)
	if err != nil {
		return t, err
	}

	courses := map[string]string{}
	if list, err := h.Source.Courses(ctx); err == nil {
		for _, c := range list {
			courses[c.ID] = htmlsanitize.Text(c.Title)
		}
	}
	participants := map[string]string{}
	if list, err := h.Source.Participants(ctx); err == nil {
		for _, p := range list {
			participants[p.ID] = htmlsanitize.Text(p.Name)
		}
	}

	for _, e := range enrollments {
		course := lookup(courses, e.CourseRef.ID())
		person := lookup(participants, e.ParticipantRef.ID())
		paid := "offen"
		if e.Paid {
			paid = "bezahlt"
		}
		var on string
		if e.EnrolledOn != nil {
			on = locale.DayMonthYear(*e.EnrolledOn)
		}
		t.Rows = append(t.Rows, newRow(course+" "+person,
			plain(course), plain(person), plain(paid), plain(on)))
	}
	return t, nil
}

func (h *Handler) instructorTable(ctx context.Context) (table, error) {
	t := table{Columns: []string{"Name", "E-Mail", "Fachgebiet"}}
	list, err := h.Source.Instructors(ctx)
	if err != nil {
		return t, err
	}
	for _, i := range list {
		name := htmlsanitize.Text(i.Name)
		t.Rows = append(t.Rows, newRow(name,
			plain(name), plain(htmlsanitize.Text(i.Email)), plain(htmlsanitize.Text(i.Subject))))
	}
	return t, nil
}

func (h *Handler) participantTable(ctx context.Context) (table, error) {
	t := table{Columns: []string{"Name", "E-Mail", "Telefon"}}
	list, err := h.Source.Participants(ctx)
	if err != nil {
		return t, err
	}
	for _, p := range list {
		name := htmlsanitize.Text(p.Name)
		t.Rows = append(t.Rows, newRow(name,
			plain(name), plain(htmlsanitize.Text(p.Email)), plain(htmlsanitize.Text(p.Phone))))
	}
	return t, nil
}

func (h *Handler) roomTable(ctx context.Context) (table, error) {
	t := table{Columns: []string{"Name", "Gebäude", "Kapazität"}}
	list, err := h.Source.Rooms(ctx)
	if err != nil {
		return t, err
	}
	for _, r := range list {
		name := htmlsanitize.Text(r.Name)
		capacity := ""
		if r.Capacity > 0 {
			capacity = strconv.Itoa(r.Capacity)
		}
		t.Rows = append(t.Rows, newRow(name,
			plain(name), plain(htmlsanitize.Text(r.Building)), plain(capacity)))
	}
	return t, nil
}

// lookup resolves a referenced ID to a display name, falling back to the ID.
func lookup(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return id
}

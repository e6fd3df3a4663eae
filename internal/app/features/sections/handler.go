// internal/app/features/sections/handler.go
package sections

import (
	"context"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/dalemusser/kursmanager/internal/app/system/paging"
	"github.com/dalemusser/kursmanager/internal/app/system/timeouts"
	"github.com/dalemusser/kursmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
	"go.uber.org/zap"
)

// Section is one list page.
type Section struct {
	Path       string
	Collection datasource.Collection
}

// All lists the section pages the dashboard links to.
var All = []Section{
	{Path: "/kurse", Collection: datasource.Courses},
	{Path: "/anmeldungen", Collection: datasource.Enrollments},
	{Path: "/teilnehmer", Collection: datasource.Participants},
	{Path: "/dozenten", Collection: datasource.Instructors},
	{Path: "/raeume", Collection: datasource.Rooms},
}

type Handler struct {
	Source   datasource.Source
	Location *time.Location
	Log      *zap.Logger
}

func NewHandler(src datasource.Source, loc *time.Location, logger *zap.Logger) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{Source: src, Location: loc, Log: logger}
}

// cell is one table cell; HTML wins over Text when set.
type cell struct {
	Text string
	HTML template.HTML
}

// row is a table row plus the folded text the filter matches against.
type row struct {
	Cells []cell
	key   string
}

// table is a fully built, unpaged section list.
type table struct {
	Columns []string
	Rows    []row
}

type pagerVM struct {
	paging.Range
	Query string
}

type listData struct {
	viewdata.BaseVM
	Heading   string
	Columns   []string
	Rows      []row
	Query     string
	Pager     pagerVM
	EmptyMsg  string
	LoadError bool
}

// Serve returns the handler for one section's list page.
//
//	GET /kurse?start=51&q=yoga
func (h *Handler) Serve(c datasource.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := h.list(r, c)
		if !ok {
			return
		}
		templates.Render(w, r, "section_list", data)
	}
}

func (h *Handler) list(r *http.Request, c datasource.Collection) (listData, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := strings.TrimSpace(query.Get(r, "q"))
	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, c.Label(), "/dashboard"),
		Heading:  c.Label(),
		Query:    q,
		EmptyMsg: "Keine Einträge gefunden",
	}

	tbl, err := h.build(ctx, c)
	if r.Context().Err() != nil {
		return listData{}, false
	}
	if err != nil {
		h.Log.Warn("section load failed", zap.String("collection", string(c)), zap.Error(err))
		data.LoadError = true
		data.EmptyMsg = "Daten konnten nicht geladen werden"
	}

	rows := filter(tbl.Rows, q)
	page, rng := paging.Slice(rows, paging.ParseStart(r))

	data.Columns = tbl.Columns
	data.Rows = page
	data.Pager = pagerVM{Range: rng, Query: q}
	return data, true
}

// filter keeps rows whose folded key contains the folded query.
func filter(rows []row, q string) []row {
	if q == "" {
		return rows
	}
	needle := text.Fold(q)
	out := make([]row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(r.key, needle) {
			out = append(out, r)
		}
	}
	return out
}

// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/system/coursestats"
	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/dalemusser/kursmanager/internal/app/system/metrics"
	"github.com/dalemusser/kursmanager/internal/app/system/timeouts"
	"github.com/dalemusser/kursmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Options configures what the dashboard shows.
type Options struct {
	ActiveLimit    int
	ChartOrder     coursestats.Order
	ShowLoadErrors bool
	Location       *time.Location
}

type Handler struct {
	Source  datasource.Source
	Log     *zap.Logger
	Metrics *metrics.Metrics
	Opts    Options

	// now is replaced in tests.
	now func() time.Time
}

func NewHandler(src datasource.Source, opts Options, m *metrics.Metrics, logger *zap.Logger) *Handler {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Handler{
		Source:  src,
		Log:     logger,
		Metrics: m,
		Opts:    opts,
		now:     time.Now,
	}
}

type shellData struct {
	viewdata.BaseVM
	Loading     string
	OverviewURL string
	ReadyURL    string
}

type pageData struct {
	viewdata.BaseVM
	overviewData
}

// ServeDashboard handles GET /dashboard. Without ?ready=1 it renders the
// loading shell, which fetches the overview fragment once displayed.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, "Dashboard", "/dashboard")

	if query.Get(r, "ready") == "" {
		templates.Render(w, r, "dashboard_shell", shellData{
			BaseVM:      base,
			Loading:     "Daten werden geladen…",
			OverviewURL: "/dashboard/overview",
			ReadyURL:    "/dashboard?ready=1",
		})
		return
	}

	data, ok := h.overview(w, r)
	if !ok {
		return
	}
	templates.Render(w, r, "dashboard_page", pageData{BaseVM: base, overviewData: data})
}

// ServeOverview handles GET /dashboard/overview and renders the ready state
// as a fragment for the shell to swap in.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	data, ok := h.overview(w, r)
	if !ok {
		return
	}
	templates.RenderSnippet(w, "dashboard_overview", data)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) (overviewData, bool) {
	summary, rep, ok := h.compute(r)
	if !ok {
		return overviewData{}, false
	}
	data, err := buildOverview(summary, rep, h.Opts.ShowLoadErrors)
	if err != nil {
		h.Log.Error("dashboard chart render failed", zap.String("load_id", rep.ID), zap.Error(err))
	}
	return data, true
}

// compute loads the collections and derives the summary. It reports false
// when the client went away, in which case nothing should be written.
func (h *Handler) compute(r *http.Request) (coursestats.Summary, LoadReport, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Dashboard())
	defer cancel()

	snap, rep := Load(ctx, h.Source, h.Log, h.Metrics)
	if r.Context().Err() != nil {
		h.Log.Debug("dashboard request cancelled", zap.String("load_id", rep.ID))
		return coursestats.Summary{}, rep, false
	}

	summary := coursestats.Compute(snap, h.now(), coursestats.Options{
		ActiveLimit:    h.Opts.ActiveLimit,
		HistogramOrder: h.Opts.ChartOrder,
		Location:       h.Opts.Location,
	})
	return summary, rep, true
}

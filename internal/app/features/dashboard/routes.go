// internal/app/features/dashboard/routes.go
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard"). exportMW wraps only
// the file exports.
func Routes(h *Handler, exportMW ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Final path will be /dashboard when mounted at "/dashboard".
	r.Get("/", h.ServeDashboard)
	r.Get("/overview", h.ServeOverview)
	r.Get("/summary.json", h.ServeSummaryJSON)

	r.Group(func(r chi.Router) {
		r.Use(exportMW...)
		r.Get("/export.xlsx", h.ServeExportXLSX)
		r.Get("/export.pdf", h.ServeExportPDF)
	})

	return r
}

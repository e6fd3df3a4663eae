// internal/app/features/sections/routes.go
package sections

import (
	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/go-chi/chi/v5"
)

// Routes wires one section's list page under its mount point
// (e.g., "/kurse").
func Routes(h *Handler, c datasource.Collection) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve(c))
	return r
}

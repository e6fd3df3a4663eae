package home

import (
	"net/http"

	"go.uber.org/zap"
)

// DefaultTarget is where the landing page sends visitors.
const DefaultTarget = "/dashboard"

// Handler serves the site root.
type Handler struct {
	Target string
	Log    *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Target: DefaultTarget,
		Log:    logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.Target, http.StatusSeeOther)
}

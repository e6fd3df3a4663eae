// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/kursmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No data source needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page with status 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", notFoundData(r))
}

func notFoundData(r *http.Request) pageData {
	return pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Seite nicht gefunden", "/dashboard"),
		Message: "Die angeforderte Seite existiert nicht.",
	}
}

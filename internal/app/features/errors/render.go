// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/kursmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderServerError shows a friendly error page with status 500.
// If msg is empty a generic message is used.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "Es ist ein Fehler aufgetreten. Bitte versuchen Sie es später erneut."
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Fehler", "/dashboard"),
		Message: msg,
	}
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", data)
}

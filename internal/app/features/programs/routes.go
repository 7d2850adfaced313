// internal/app/features/programs/routes.go
package programs

import (
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes registers the program pages on the root router via r.Group.
func Routes(h *Handler, sm *auth.SessionManager) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/get_programs", h.ServeList)

		r.Group(func(pr chi.Router) {
			pr.Use(sm.RequireSignedIn)
			pr.Get("/add_program", h.ServeNew)
			pr.Post("/add_program", h.HandleNew)
			pr.Get("/edit_program/{id}", h.ServeEdit)
			pr.Post("/edit_program/{id}", h.HandleEdit)
			pr.Get("/delete_program/{id}", h.HandleDelete)
			pr.Post("/delete_program/{id}", h.HandleDelete)
		})
	}
}

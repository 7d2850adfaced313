// internal/app/features/exercises/routes.go
package exercises

import (
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes registers the exercise pages. The paths are top-level, so bootstrap
// attaches them with r.Group rather than Mount.
func Routes(h *Handler, sm *auth.SessionManager) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", h.ServeList)
		r.Get("/get_exercices", h.ServeList)
		r.Get("/search", h.ServeSearch)
		r.Post("/search", h.ServeSearch)

		r.Group(func(pr chi.Router) {
			pr.Use(sm.RequireSignedIn)
			pr.Get("/add_exercice", h.ServeNew)
			pr.Post("/add_exercice", h.HandleNew)
			pr.Get("/edit_exercice/{id}", h.ServeEdit)
			pr.Post("/edit_exercice/{id}", h.HandleEdit)
			pr.Get("/delete_exercice/{id}", h.HandleDelete)
			pr.Post("/delete_exercice/{id}", h.HandleDelete)
		})
	}
}

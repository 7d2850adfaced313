// internal/app/features/links/routes.go
package links

import (
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes registers the link pages on the root router via r.Group.
func Routes(h *Handler, sm *auth.SessionManager) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/get_links", h.ServeList)

		r.Group(func(pr chi.Router) {
			pr.Use(sm.RequireSignedIn)
			pr.Get("/add_link", h.ServeNew)
			pr.Post("/add_link", h.HandleNew)
			pr.Get("/delete_link/{id}", h.HandleDelete)
			pr.Post("/delete_link/{id}", h.HandleDelete)
		})
	}
}

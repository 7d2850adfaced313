// internal/app/features/errors/render.go
package errors

import (
	"net/http"
)

// RenderNotFound shows a friendly "not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows a friendly page for malformed input.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderServerError shows the generic failure page. The cause is never shown.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Something went wrong on our end."
	}
	render(w, r, http.StatusInternalServerError, "Server error", msg, backURL)
}

// RenderForbidden shows a friendly access error page, e.g. a rejected CSRF
// token.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusForbidden, "Access denied", msg, backURL)
}

// HTMXError answers an HTMX request with a bare status and message the client
// can swap in; ordinary requests fall through to full.
func HTMXError(w http.ResponseWriter, r *http.Request, status int, msg string, full func()) {
	if r.Header.Get("HX-Request") == "true" {
		http.Error(w, msg, status)
		return
	}
	full()
}

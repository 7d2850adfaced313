// internal/app/features/exercises/list.go
package exercises

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"github.com/dalemusser/codetrack/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList handles GET / and GET /get_exercices.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Exercises.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list exercises", err, "Could not load exercises.", "/")
		return
	}

	templates.Render(w, r, "exercises_list", listData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SessionMgr, "Exercises", "/"),
		Rows:   toRows(list),
	})
}

// ServeSearch handles GET and POST /search. The query comes from the form
// body or, for a GET, from ?query=. A blank query lists everything.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid search.", "/get_exercices")
		return
	}
	q := strings.TrimSpace(r.FormValue("query"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Exercises.Search(ctx, q)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "search exercises", err, "Search failed.", "/get_exercices")
		return
	}

	templates.Render(w, r, "exercises_list", listData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.SessionMgr, "Search", "/get_exercices"),
		Query:     q,
		Searching: true,
		Rows:      toRows(list),
	})
}

// internal/app/features/exercises/new.go
package exercises

import (
	"context"
	"net/http"

	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/app/system/normalize"
	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"github.com/dalemusser/codetrack/internal/app/system/viewdata"
	"github.com/dalemusser/codetrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeNew handles GET /add_exercice.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	programs, err := h.programNames(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list programs", err, "Could not load programs.", "/get_exercices")
		return
	}

	templates.Render(w, r, "exercise_new", formData{
		BaseVM:   viewdata.NewBaseVM(w, r, h.SessionMgr, "Add Exercise", "/get_exercices"),
		Programs: programs,
	})
}

// HandleNew handles POST /add_exercice. Missing fields are stored empty.
func (h *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/add_exercice")
		return
	}
	u, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ex, err := h.Exercises.Create(ctx, models.Exercise{
		ProgramName: normalize.Name(r.FormValue("program_name")),
		Name:        normalize.Name(r.FormValue("exercice_name")),
		Link:        normalize.URL(r.FormValue("exercice_link")),
		CreatedBy:   u.Username,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create exercise", err, "Could not save the exercise.", "/get_exercices")
		return
	}
	h.Log.Info("exercise added",
		zap.String("id", ex.ID.Hex()),
		zap.String("username", u.Username))

	h.SessionMgr.AddFlash(w, r, FlashAdded)
	http.Redirect(w, r, "/get_exercices", http.StatusSeeOther)
}

func (h *Handler) programNames(ctx context.Context) ([]string, error) {
	programs, err := h.Programs.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(programs))
	for _, p := range programs {
		names = append(names, p.Name)
	}
	return names, nil
}

// internal/app/features/exercises/edit.go
package exercises

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/app/system/normalize"
	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"github.com/dalemusser/codetrack/internal/app/system/viewdata"
	"github.com/dalemusser/codetrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeEdit handles GET /edit_exercice/{id}.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ex, err := h.Exercises.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load exercise", err, "Could not load the exercise.", "/get_exercices")
		return
	}

	programs, err := h.programNames(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list programs", err, "Could not load programs.", "/get_exercices")
		return
	}

	templates.Render(w, r, "exercise_edit", formData{
		BaseVM:      viewdata.NewBaseVM(w, r, h.SessionMgr, "Edit Exercise", "/get_exercices"),
		ID:          ex.ID.Hex(),
		ProgramName: ex.ProgramName,
		Name:        ex.Name,
		Link:        ex.Link,
		Done:        ex.Done(),
		Comment:     ex.Comment,
		Programs:    withCurrent(programs, ex.ProgramName),
	})
}

// withCurrent keeps an exercise's program selectable after the program
// itself was deleted or renamed.
func withCurrent(names []string, current string) []string {
	if current == "" {
		return names
	}
	for _, n := range names {
		if n == current {
			return names
		}
	}
	return append(names, current)
}

// HandleEdit handles POST /edit_exercice/{id}. The submitted form replaces the
// stored exercise wholesale; an unchecked is_done box means "no". The editor
// becomes created_by. An unknown id is silently ignored.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/get_exercices")
		return
	}
	u, _ := auth.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		err = h.Exercises.Replace(ctx, id, models.Exercise{
			ProgramName: normalize.Name(r.FormValue("program_name")),
			Name:        normalize.Name(r.FormValue("exercice_name")),
			Link:        normalize.URL(r.FormValue("exercice_link")),
			IsDone:      models.DoneValue(r.FormValue("is_done") != ""),
			Comment:     r.FormValue("exercice_comment"),
			CreatedBy:   u.Username,
		})
		if err != nil {
			h.ErrLog.LogServerError(w, r, "replace exercise", err, "Could not save the exercise.", "/get_exercices")
			return
		}
		h.Log.Info("exercise updated",
			zap.String("id", id.Hex()),
			zap.String("username", u.Username))
	}

	h.SessionMgr.AddFlash(w, r, FlashUpdated)
	http.Redirect(w, r, "/get_exercices", http.StatusSeeOther)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.SessionMgr.AddFlash(w, r, FlashNotFound)
	http.Redirect(w, r, "/get_exercices", http.StatusSeeOther)
}

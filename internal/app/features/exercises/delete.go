// internal/app/features/exercises/delete.go
package exercises

import (
	"context"
	"net/http"

	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles GET and POST /delete_exercice/{id}. It is reachable
// from a plain link; there is no confirmation step. Unknown and malformed ids
// are a no-op.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id")); err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		if err := h.Exercises.Delete(ctx, id); err != nil {
			h.ErrLog.LogServerError(w, r, "delete exercise", err, "Could not delete the exercise.", "/get_exercices")
			return
		}
		u, _ := auth.CurrentUser(r)
		h.Log.Info("exercise deleted",
			zap.String("id", id.Hex()),
			zap.String("username", u.Username))
	}

	h.SessionMgr.AddFlash(w, r, FlashDeleted)
	http.Redirect(w, r, "/get_exercices", http.StatusSeeOther)
}

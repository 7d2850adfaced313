// internal/app/features/programs/programs.go
package programs

import (
	"context"
	"errors"
	"net/http"

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

type listData struct {
	viewdata.BaseVM
	Programs []models.Program
}

type formData struct {
	viewdata.BaseVM
	ID   string
	Name string
}

/*─────────────────────────────────────────────────────────────────────────────*
| List                                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeList handles GET /get_programs.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Programs.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list programs", err, "Could not load programs.", "/")
		return
	}

	templates.Render(w, r, "programs_list", listData{
		BaseVM:   viewdata.NewBaseVM(w, r, h.SessionMgr, "Programs", "/"),
		Programs: list,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| Create                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeNew handles GET /add_program.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "program_new", formData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SessionMgr, "Add Program", "/get_programs"),
	})
}

// HandleNew handles POST /add_program.
func (h *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/add_program")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Programs.Create(ctx, normalize.Name(r.FormValue("program_name")))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create program", err, "Could not save the program.", "/get_programs")
		return
	}
	h.Log.Info("program added", zap.String("id", p.ID.Hex()), zap.String("name", p.Name))

	h.SessionMgr.AddFlash(w, r, FlashAdded)
	http.Redirect(w, r, "/get_programs", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Edit                                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeEdit handles GET /edit_program/{id}.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Programs.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load program", err, "Could not load the program.", "/get_programs")
		return
	}

	templates.Render(w, r, "program_edit", formData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SessionMgr, "Edit Program", "/get_programs"),
		ID:     p.ID.Hex(),
		Name:   p.Name,
	})
}

// HandleEdit handles POST /edit_program/{id}: the stored program is replaced
// with the submitted name. Unknown ids are ignored.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/get_programs")
		return
	}

	if id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id")); err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		name := normalize.Name(r.FormValue("program_name"))
		if err := h.Programs.Replace(ctx, id, name); err != nil {
			h.ErrLog.LogServerError(w, r, "replace program", err, "Could not save the program.", "/get_programs")
			return
		}
		h.Log.Info("program updated", zap.String("id", id.Hex()), zap.String("name", name))
	}

	h.SessionMgr.AddFlash(w, r, FlashUpdated)
	http.Redirect(w, r, "/get_programs", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Delete                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleDelete handles GET and POST /delete_program/{id}. Exercises filed
// under the program keep its name.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id")); err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		if err := h.Programs.Delete(ctx, id); err != nil {
			h.ErrLog.LogServerError(w, r, "delete program", err, "Could not delete the program.", "/get_programs")
			return
		}
		h.Log.Info("program deleted", zap.String("id", id.Hex()))
	}

	h.SessionMgr.AddFlash(w, r, FlashDeleted)
	http.Redirect(w, r, "/get_programs", http.StatusSeeOther)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.SessionMgr.AddFlash(w, r, FlashNotFound)
	http.Redirect(w, r, "/get_programs", http.StatusSeeOther)
}

// internal/app/features/links/links.go
package links

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/codetrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/codetrack/internal/app/system/normalize"
	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"github.com/dalemusser/codetrack/internal/app/system/viewdata"
	"github.com/dalemusser/codetrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type linkRow struct {
	ID          string
	Name        string
	Description template.HTML
	URL         string
}

type listData struct {
	viewdata.BaseVM
	Links []linkRow
}

type formData struct {
	viewdata.BaseVM
}

// ServeList handles GET /get_links.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Links.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list links", err, "Could not load links.", "/")
		return
	}

	rows := make([]linkRow, 0, len(list))
	for _, l := range list {
		rows = append(rows, linkRow{
			ID:          l.ID.Hex(),
			Name:        l.Name,
			Description: htmlsanitize.SanitizeToHTML(l.Description),
			URL:         l.URL,
		})
	}

	templates.Render(w, r, "links_list", listData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SessionMgr, "Links", "/"),
		Links:  rows,
	})
}

// ServeNew handles GET /add_link.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "link_new", formData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SessionMgr, "Add Link", "/get_links"),
	})
}

// HandleNew handles POST /add_link. Links cannot be edited afterwards.
func (h *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/add_link")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	l, err := h.Links.Create(ctx, models.Link{
		Name:        normalize.Name(r.FormValue("link_name")),
		Description: r.FormValue("link_description"),
		URL:         normalize.URL(r.FormValue("link_url")),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create link", err, "Could not save the link.", "/get_links")
		return
	}
	h.Log.Info("link added", zap.String("id", l.ID.Hex()), zap.String("url", l.URL))

	h.SessionMgr.AddFlash(w, r, FlashAdded)
	http.Redirect(w, r, "/get_links", http.StatusSeeOther)
}

// HandleDelete handles GET and POST /delete_link/{id}. Unknown ids are a
// no-op.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id")); err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		if err := h.Links.Delete(ctx, id); err != nil {
			h.ErrLog.LogServerError(w, r, "delete link", err, "Could not delete the link.", "/get_links")
			return
		}
		h.Log.Info("link deleted", zap.String("id", id.Hex()))
	}

	h.SessionMgr.AddFlash(w, r, FlashDeleted)
	http.Redirect(w, r, "/get_links", http.StatusSeeOther)
}

// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/app/system/normalize"
	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"github.com/dalemusser/codetrack/internal/app/system/viewdata"
	"github.com/dalemusser/codetrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const recentSignIns = 5

type exerciseRow struct {
	ID          string
	ProgramName string
	Name        string
	Link        string
	Done        bool
	AddedAt     string
}

type signInRow struct {
	At     string
	IP     string
	Method string
}

type profileData struct {
	viewdata.BaseVM
	Username  string
	Exercises []exerciseRow
	Total     int
	DoneCount int
	SignIns   []signInRow
}

// ServeProfile handles GET and POST /profile/{username}. The page always
// belongs to the signed-in user: asking for someone else's name redirects
// to your own.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if normalize.Username(chi.URLParam(r, "username")) != u.Username {
		http.Redirect(w, r, "/profile/"+url.PathEscape(u.Username), http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Exercises.ListByCreator(ctx, u.Username)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list exercises for profile", err, "Could not load your exercises.", "/")
		return
	}

	data := profileData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.SessionMgr, "Profile", "/"),
		Username:  u.Username,
		Exercises: make([]exerciseRow, 0, len(list)),
		Total:     len(list),
	}
	for _, ex := range list {
		if ex.Done() {
			data.DoneCount++
		}
		data.Exercises = append(data.Exercises, toRow(ex))
	}

	// The page still renders without its sign-in history.
	recent, err := h.Logins.Recent(ctx, u.Username, recentSignIns)
	if err != nil {
		h.Log.Warn("load recent sign-ins failed", zap.Error(err), zap.String("username", u.Username))
	}
	for _, rec := range recent {
		data.SignIns = append(data.SignIns, signInRow{
			At:     rec.CreatedAt.UTC().Format("2006-01-02 15:04 UTC"),
			IP:     rec.IP,
			Method: rec.Method,
		})
	}

	templates.Render(w, r, "profile", data)
}

func toRow(ex models.Exercise) exerciseRow {
	row := exerciseRow{
		ID:          ex.ID.Hex(),
		ProgramName: ex.ProgramName,
		Name:        ex.Name,
		Link:        ex.Link,
		Done:        ex.Done(),
	}
	if t := ex.AddedAt(); !t.IsZero() {
		row.AddedAt = t.Format("2006-01-02")
	}
	return row
}

// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"go.uber.org/zap"
)

// FlashLoggedOut is shown on the login page after signing out.
const FlashLoggedOut = "You have been logged out"

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout handles GET /logout. Signed-out visitors get the same flash
// and redirect.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("logout",
			zap.String("username", u.Username),
			zap.String("session_id", u.SessionID))
	}

	if err := h.SessionMgr.Logout(w, r); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}
	h.SessionMgr.AddFlash(w, r, FlashLoggedOut)

	// HTMX handling: use HX-Redirect to force a client-side navigation.
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

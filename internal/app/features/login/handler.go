// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/codetrack/internal/app/features/errors"
	loginstore "github.com/dalemusser/codetrack/internal/app/store/logins"
	userstore "github.com/dalemusser/codetrack/internal/app/store/users"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/app/system/normalize"
	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"github.com/dalemusser/codetrack/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Flash texts shown after a login attempt.
const (
	FlashBadCredentials = "Incorrect Username and/or Password"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Users      *userstore.Store
	Logins     *loginstore.Store
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	ReturnURL string
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Users:      userstore.New(db),
		Logins:     loginstore.New(db),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.SessionMgr, "Log In", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	username := normalize.Username(r.FormValue("username"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Authenticate(ctx, username, password)
	switch {
	case errors.Is(err, userstore.ErrInvalidCredentials):
		h.Log.Warn("login failed", zap.String("username", username))
		h.SessionMgr.AddFlash(w, r, FlashBadCredentials)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "authenticate user", err, "A server error occurred.", "/login")
		return
	}

	su, err := h.SessionMgr.Login(w, r, u.Username)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save session", err, "Unable to create session. Please try again.", "/login")
		return
	}
	h.Log.Info("login",
		zap.String("username", su.Username),
		zap.String("session_id", su.SessionID))

	// History is best-effort; a failed write never blocks the sign-in.
	if err := h.Logins.CreateFrom(ctx, r, su.Username, su.SessionID, loginstore.MethodPassword); err != nil {
		h.Log.Warn("record login failed", zap.Error(err), zap.String("username", su.Username))
	}

	h.SessionMgr.AddFlash(w, r, "Welcome, "+u.Username)

	dest := urlutil.SafeReturn(ret, "", "/profile/"+u.Username)
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

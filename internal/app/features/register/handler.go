// internal/app/features/register/handler.go
package register

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/codetrack/internal/app/features/errors"
	loginstore "github.com/dalemusser/codetrack/internal/app/store/logins"
	userstore "github.com/dalemusser/codetrack/internal/app/store/users"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"github.com/dalemusser/codetrack/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	FlashUsernameTaken = "Username already exists"
	FlashRegistered    = "Registration Successful!"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Users      *userstore.Store
	Logins     *loginstore.Store
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

type registerFormData struct {
	viewdata.BaseVM
}

// GET /register
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "register", registerFormData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SessionMgr, "Register", "/"),
	})
}

// POST /register creates the account and signs the new user straight in.
func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/register")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.Create(ctx, r.FormValue("username"), r.FormValue("password"))
	switch {
	case errors.Is(err, userstore.ErrUsernameExists):
		h.SessionMgr.AddFlash(w, r, FlashUsernameTaken)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "create user", err, "A server error occurred.", "/register")
		return
	}

	su, err := h.SessionMgr.Login(w, r, u.Username)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save session", err, "Unable to create session. Please log in.", "/login")
		return
	}
	h.Log.Info("user registered",
		zap.String("username", su.Username),
		zap.String("session_id", su.SessionID))

	if err := h.Logins.CreateFrom(ctx, r, su.Username, su.SessionID, loginstore.MethodRegister); err != nil {
		h.Log.Warn("record login failed", zap.Error(err), zap.String("username", su.Username))
	}

	h.SessionMgr.AddFlash(w, r, FlashRegistered)
	http.Redirect(w, r, "/profile/"+u.Username, http.StatusSeeOther)
}

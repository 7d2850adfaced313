// internal/app/features/profile/handler.go
package profile

import (
	uierrors "github.com/dalemusser/codetrack/internal/app/features/errors"
	exercisestore "github.com/dalemusser/codetrack/internal/app/store/exercises"
	loginstore "github.com/dalemusser/codetrack/internal/app/store/logins"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the profile page.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
	SessionMgr *auth.SessionManager
	Exercises  *exercisestore.Store
	Logins     *loginstore.Store
}

// NewHandler constructs a Handler bound to the given Mongo database and logger.
func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		ErrLog:     errLog,
		SessionMgr: sessionMgr,
		Exercises:  exercisestore.New(db),
		Logins:     loginstore.New(db),
	}
}

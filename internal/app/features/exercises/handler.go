// internal/app/features/exercises/handler.go
package exercises

import (
	uierrors "github.com/dalemusser/codetrack/internal/app/features/errors"
	exercisestore "github.com/dalemusser/codetrack/internal/app/store/exercises"
	programstore "github.com/dalemusser/codetrack/internal/app/store/programs"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Flash texts. The spelling matches what existing users already see.
const (
	FlashAdded    = "Exercice Successfully Added"
	FlashUpdated  = "Exercice Successfully Updated"
	FlashDeleted  = "Exercice Successfully Deleted"
	FlashNotFound = "Exercise not found."
)

// Handler serves the exercise list, search and the add/edit/delete forms.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
	SessionMgr *auth.SessionManager
	Exercises  *exercisestore.Store
	Programs   *programstore.Store
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		ErrLog:     errLog,
		SessionMgr: sessionMgr,
		Exercises:  exercisestore.New(db),
		Programs:   programstore.New(db),
	}
}

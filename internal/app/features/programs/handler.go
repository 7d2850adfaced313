// internal/app/features/programs/handler.go
package programs

import (
	uierrors "github.com/dalemusser/codetrack/internal/app/features/errors"
	programstore "github.com/dalemusser/codetrack/internal/app/store/programs"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	FlashAdded    = "New Program Added"
	FlashUpdated  = "Program Successfully Updated"
	FlashDeleted  = "Program Successfully Deleted"
	FlashNotFound = "Program not found."
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
	SessionMgr *auth.SessionManager
	Programs   *programstore.Store
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		ErrLog:     errLog,
		SessionMgr: sessionMgr,
		Programs:   programstore.New(db),
	}
}

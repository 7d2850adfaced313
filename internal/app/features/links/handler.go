// internal/app/features/links/handler.go
package links

import (
	uierrors "github.com/dalemusser/codetrack/internal/app/features/errors"
	linkstore "github.com/dalemusser/codetrack/internal/app/store/links"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	FlashAdded   = "New link Added"
	FlashDeleted = "Link Successfully Deleted"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
	SessionMgr *auth.SessionManager
	Links      *linkstore.Store
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		ErrLog:     errLog,
		SessionMgr: sessionMgr,
		Links:      linkstore.New(db),
	}
}

// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and then renders the
// matching friendly page, so handlers can bail out in one call.
type ErrorLogger struct {
	log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err at Error and renders a 500 page with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, e.fields(r, err)...)
	HTMXError(w, r, http.StatusInternalServerError, userMsg, func() {
		RenderServerError(w, r, userMsg, backURL)
	})
}

// LogBadRequest logs err at Warn and renders a 400 page with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg, e.fields(r, err)...)
	HTMXError(w, r, http.StatusBadRequest, userMsg, func() {
		RenderBadRequest(w, r, userMsg, backURL)
	})
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if u, ok := auth.CurrentUser(r); ok {
		fields = append(fields,
			zap.String("username", u.Username),
			zap.String("session_id", u.SessionID))
	}
	return fields
}

// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger couples zap logging with user-facing error pages so
// handlers can report a failure in one call: the internal message and
// error go to the log, the friendly message to the browser.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogBadRequest logs at warn level and renders the bad-request page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogNotFound logs at info level and renders the not-found page.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Info(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderNotFound(w, r, userMsg, backURL)
}

// LogServerError logs at error level and renders the server-error page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderServerError(w, r, userMsg, backURL)
}

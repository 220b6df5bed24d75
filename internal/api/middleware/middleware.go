package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/royalsquare/internal/api/apierr"
	"github.com/mcoot/royalsquare/internal/middleware"
)

// RequestID assigns a request id to every API request
func RequestID(next http.Handler) http.Handler {
	return middleware.RequestID(next)
}

// Logging creates access logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// Recovery turns a panicking handler into a JSON INTERNAL_ERROR response
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}

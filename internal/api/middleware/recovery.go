package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/fairychess/internal/api/apierr"
	"github.com/mcoot/fairychess/internal/middleware"
)

// Recovery answers a panicking API handler with a JSON INTERNAL_ERROR
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewPanicError(r.Header.Get(middleware.RequestIDHeader)))
	})
}

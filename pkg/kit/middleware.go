package kit

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

func Recoverer(next http.Handler) http.Handler {
	return middleware.Recoverer(next)
}

func RequestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

// Logging writes one access line per request. Probe traffic is logged at
// debug so it does not drown the cart operations.
func Logging(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			lvl := zap.InfoLevel
			if _, probe := probePaths[r.URL.Path]; probe {
				lvl = zap.DebugLevel
			}

			log.Log(lvl, "request",
				zap.String("request_id", RequestID(r)),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote", r.RemoteAddr),
			)
		})
	}
}

package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → RateLimit → APIKey → MaxBytes → Timeout → mux
func Chain(handler http.Handler, logger *zap.Logger, rl *RateLimiter, apiKey, allowedOrigin string, requestTimeout time.Duration) http.Handler {
	h := handler
	h = http.TimeoutHandler(h, requestTimeout, `{"success":false,"error":"request timeout"}`)
	h = MaxBytes(64 * 1024)(h)
	h = APIKey(apiKey)(h)
	h = RateLimit(rl)(h)
	h = Metrics(h)
	h = Logging(logger)(h)
	h = RequestID(h)
	h = CORS(allowedOrigin)(h)
	return h
}

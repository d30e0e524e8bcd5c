package appMiddleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/FACorreiaa/go-yatra/internal/api"
)

const rateLimitedMessage = "Rate limit exceeded. Please try again in a moment."

// RateLimitByIP caps each client address at requests per window.
// Rejected requests get the same JSON 429 body as an upstream rate limit.
// A non-positive requests value disables the limiter.
func RateLimitByIP(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			api.ErrorResponse(w, r, http.StatusTooManyRequests, rateLimitedMessage)
		}),
	)
}

// Package requester resolves the id of the user behind a request.
//
// Authentication itself happens upstream; this middleware only trusts the
// X-User-ID header set by the gateway, with an optional configured fallback.
package requester

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"webinars/internal/lib/api/response"

	"github.com/go-chi/render"
)

const Header = "X-User-ID"

type ctxKey struct{}

func New(log *slog.Logger, defaultUserID string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/requester"),
		)

		if defaultUserID != "" {
			log.Warn("requests without user id fall back to default user", slog.String("user_id", defaultUserID))
		}

		fn := func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(Header))
			if userID == "" {
				userID = defaultUserID
			}

			if userID == "" {
				log.Error("user id is missing", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user id is required"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		}

		return http.HandlerFunc(fn)
	}
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserID returns the user id stored by the middleware.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKey{}).(string)
	return userID, ok && userID != ""
}

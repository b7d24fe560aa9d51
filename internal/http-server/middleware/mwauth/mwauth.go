package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventBookerClient/internal/lib/logger/sl"
)

type contextKey string

const userIDKey contextKey = "userID"

type TokenVerifier interface {
	Verify(token string) (string, error)
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user id, if the request carried
// a valid bearer token.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// New parses an optional bearer token. Requests without a valid token pass
// through anonymously; resolvers that need a user reject them.
func New(log *slog.Logger, verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			const prefix = "Bearer "
			if header == "" || !strings.HasPrefix(header, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				log.Debug("rejected bearer token", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserID(r.Context(), userID)))
		}

		return http.HandlerFunc(fn)
	}
}

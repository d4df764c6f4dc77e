package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	app_errors "chatvault/backend/internal/errors"
	"chatvault/backend/internal/interfaces"
)

type contextKey string

const userIDKey contextKey = "user_id"

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the id stored by RequireAuth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

const authorizationRequired = "authorization required"

var errMissingToken = fmt.Errorf("%w: missing bearer token", app_errors.ErrUnauthorized)

// RequireAuth rejects requests without a bearer token with 401 and requests
// with an unusable one with 403. On success the user id is put into the
// request context.
func RequireAuth(authService interfaces.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if header == "" || !found || strings.TrimSpace(token) == "" {
				respondWithJSON(w, http.StatusUnauthorized, ErrorResponse{Error: authorizationRequired})
				return
			}

			claims, err := authService.Authenticate(strings.TrimSpace(token))
			if err != nil {
				respondWithError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// requestUserID is used by handlers behind RequireAuth. Reaching a handler
// without an id means the route was wired without the middleware.
func requestUserID(r *http.Request) (int64, error) {
	id, ok := UserIDFromContext(r.Context())
	if !ok {
		return 0, errMissingToken
	}
	return id, nil
}

// RequestDeadline bounds the request context by timeout. Store calls that
// run past it fail with the context error, which respondWithError reports
// like any other unexpected failure.
func RequestDeadline(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

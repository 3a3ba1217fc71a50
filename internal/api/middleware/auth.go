// Package middleware holds the HTTP middleware of the service.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avlok/LMS-LodgeService/internal/api/handlers"
)

// UserIDHeader carries the authenticated user id set by the API gateway.
const UserIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth requires a valid X-User-ID header and stores the id in the request
// context. The gateway authenticates the user; this service only trusts the
// forwarded id.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+UserIDHeader+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid "+UserIDHeader+" header")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// UserIDFromContext returns the authenticated user id stored by Auth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

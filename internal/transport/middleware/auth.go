package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/pkg/ctxutil"
)

// SessionHeader carries the opaque per-login session ID that scopes
// entry unlocks.
const SessionHeader = "X-Session-Id"

// TokenValidator resolves a bearer token to a user ID.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth validates a bearer token and stores the user ID in the request
// context. Requests without a token pass through anonymous; the client
// session ID header is captured alongside so unlock state stays scoped
// to the sign-in that produced it.
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if sessionID := r.Header.Get(SessionHeader); sessionID != "" {
				ctx = ctxutil.WithSessionID(ctx, sessionID)
			}

			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r.WithContext(ctx)) // Anonymous
				return
			}
			userID, err := validator.ValidateToken(ctx, token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx = ctxutil.WithUserID(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that did not authenticate.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

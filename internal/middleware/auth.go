package middleware

import (
	"context"
	"net/http"
	"strings"
)

type TokenVerifier interface {
	Verify(token string) (string, error)
}

type Middleware struct {
	Tokens TokenVerifier
}

func NewMiddleware(tokens TokenVerifier) *Middleware {
	return &Middleware{Tokens: tokens}
}

// context key
type contextKey string

const UserIDKey contextKey = "userId"

// Authenticator requires a Bearer token and puts the subject user id on the
// request context.
func (m *Middleware) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
			return
		}

		userID, err := m.Tokens.Verify(parts[1])
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to extract the authenticated user id
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

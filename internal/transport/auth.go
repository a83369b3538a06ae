package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type sessionKey struct{}
type tokenKey struct{}

// SessionResolver resolves a session from a raw bearer token.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.Session, error)
}

// SessionFromContext returns the authenticated session, if present.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*session.Session)
	return sess, ok
}

// TokenFromContext returns the raw bearer token the request carried.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok
}

// AuthMiddleware enforces bearer token authentication.
func AuthMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			sess, err := resolver.Resolve(r.Context(), token)
			if err != nil || sess == nil {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, sess)
			ctx = context.WithValue(ctx, tokenKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

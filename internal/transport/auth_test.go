package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
)

type staticResolver struct {
	token string
}

func (r *staticResolver) Resolve(_ context.Context, token string) (*session.Session, error) {
	if token != r.token {
		return nil, ErrUnauthorized
	}
	return &session.Session{Description: "test"}, nil
}

func TestAuthMiddleware(t *testing.T) {
	var gotSession *session.Session
	var gotToken string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = SessionFromContext(r.Context())
		gotToken, _ = TokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(&staticResolver{token: "secret"})(inner)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Run("missing token", func(t *testing.T) {
		resp, err := http.Get(server.URL)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer wrong")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer secret")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, gotSession)
		require.Equal(t, "test", gotSession.Description)
		require.Equal(t, "secret", gotToken)
	})
}

// Package testserver spins up a full HTTP stack against an in-memory
// database for transport-level tests.
package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/activity"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
	"github.com/tsuzuri-app/tsuzuri/internal/sqlite"
	"github.com/tsuzuri-app/tsuzuri/internal/transport"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Store    *post.Store
	Posts    *post.Service
	Sessions *session.Service
	Token    string
}

// Options tweak the assembled server.
type Options struct {
	AuthEnabled bool
}

func New(t *testing.T, opts Options) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	postRepo := sqlite.NewPostRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)

	store := post.NewStore(postRepo)
	require.NoError(t, store.Load(context.Background()))

	postSvc := post.NewService(postRepo, store, activityRepo, nil)
	activitySvc := activity.NewService(activityRepo, nil)
	sessionSvc := session.NewService(sessionRepo, nil)

	services := transport.Services{
		Posts:    postSvc,
		Store:    store,
		Activity: activitySvc,
		Sessions: sessionSvc,
	}

	var authMiddleware func(http.Handler) http.Handler
	if opts.AuthEnabled {
		authMiddleware = transport.AuthMiddleware(sessionSvc)
	}

	server := httptest.NewServer(transport.NewServer(services, transport.NewMetrics(), authMiddleware, nil))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Store:    store,
		Posts:    postSvc,
		Sessions: sessionSvc,
	}

	if opts.AuthEnabled {
		token, err := sessionSvc.Issue(context.Background(), "test session")
		require.NoError(t, err)
		ts.Token = token
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

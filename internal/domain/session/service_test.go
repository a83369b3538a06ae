package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
	"github.com/tsuzuri-app/tsuzuri/internal/repository"
	"github.com/tsuzuri-app/tsuzuri/internal/repository/mocks"
)

func TestSessionService_Issue(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SessionRepository{}
	svc := session.NewService(repo, nil)

	var storedHash string
	repo.On("Insert", ctx, mock.Anything, "laptop").Run(func(args mock.Arguments) {
		storedHash = args.String(1)
	}).Return(nil)

	token, err := svc.Issue(ctx, "laptop")
	require.NoError(t, err)
	require.Len(t, token, 64)
	require.Equal(t, session.HashToken(token), storedHash, "raw token never stored")
	require.NotEqual(t, token, storedHash)
}

func TestSessionService_IssueEmptyDescription(t *testing.T) {
	svc := session.NewService(&mocks.SessionRepository{}, nil)
	_, err := svc.Issue(context.Background(), "   ")
	require.ErrorIs(t, err, session.ErrInvalidInput)
}

func TestSessionService_Resolve(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SessionRepository{}
	svc := session.NewService(repo, nil)

	want := &session.Session{Description: "laptop", CreatedAt: time.Now()}
	repo.On("Lookup", ctx, session.HashToken("raw-token")).Return(want, nil)
	repo.On("Touch", ctx, session.HashToken("raw-token"), mock.Anything).Return(nil)

	got, err := svc.Resolve(ctx, "raw-token")
	require.NoError(t, err)
	require.Equal(t, "laptop", got.Description)
	repo.AssertCalled(t, "Touch", ctx, session.HashToken("raw-token"), mock.Anything)
}

func TestSessionService_ResolveUnknown(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SessionRepository{}
	svc := session.NewService(repo, nil)

	repo.On("Lookup", ctx, mock.Anything).Return(nil, repository.ErrNotFound)

	_, err := svc.Resolve(ctx, "unknown")
	require.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSessionService_SignOut(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SessionRepository{}
	svc := session.NewService(repo, nil)

	repo.On("Delete", ctx, session.HashToken("raw-token")).Return(nil)
	require.NoError(t, svc.SignOut(ctx, "raw-token"))
}

func TestSessionService_SignOutUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SessionRepository{}
	svc := session.NewService(repo, nil)

	repo.On("Delete", ctx, mock.Anything).Return(repository.ErrNotFound)
	require.NoError(t, svc.SignOut(ctx, "unknown"))
}

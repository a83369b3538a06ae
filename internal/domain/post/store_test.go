package post_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
	"github.com/tsuzuri-app/tsuzuri/internal/repository/mocks"
)

func TestStore_LoadReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PostRepository{}
	store := post.NewStore(repo)

	repo.On("List", ctx).Return([]post.Post{{ID: "a"}, {ID: "b"}}, nil).Once()
	require.NoError(t, store.Load(ctx))
	require.Equal(t, 2, store.Len())

	// A later load replaces wholesale, it does not merge.
	repo.On("List", ctx).Return([]post.Post{{ID: "c"}}, nil).Once()
	require.NoError(t, store.Load(ctx))
	require.Equal(t, 1, store.Len())

	_, ok := store.Find("a")
	require.False(t, ok)
	_, ok = store.Find("c")
	require.True(t, ok)
}

func TestStore_FailedLoadKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PostRepository{}
	store := post.NewStore(repo)

	repo.On("List", ctx).Return([]post.Post{{ID: "a"}}, nil).Once()
	require.NoError(t, store.Load(ctx))

	repo.On("List", ctx).Return(nil, errors.New("backend down")).Once()
	require.Error(t, store.Load(ctx))

	require.Equal(t, 1, store.Len())
	_, ok := store.Find("a")
	require.True(t, ok)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PostRepository{}
	store := post.NewStore(repo)

	repo.On("List", ctx).Return([]post.Post{{ID: "a", Content: "original"}}, nil)
	require.NoError(t, store.Load(ctx))

	snap := store.Snapshot()
	snap[0].Content = "mutated"

	again := store.Snapshot()
	require.Equal(t, "original", again[0].Content)
}

func TestStore_EmptyBeforeLoad(t *testing.T) {
	store := post.NewStore(&mocks.PostRepository{})
	require.Zero(t, store.Len())
	require.Empty(t, store.Snapshot())
	_, ok := store.Find("a")
	require.False(t, ok)
}

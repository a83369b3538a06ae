package post_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
)

func TestComputeStats_Empty(t *testing.T) {
	st := post.ComputeStats(nil, at(10, 12))
	require.Zero(t, st.TotalPosts)
	require.Zero(t, st.DraftCount)
	require.Zero(t, st.CurrentStreak)
	require.Zero(t, st.LongestStreak)
}

func TestComputeStats_Counts(t *testing.T) {
	posts := []post.Post{
		{PostDate: at(10, 9)},
		{PostDate: at(10, 15)},
		{PostDate: at(11, 9), IsDraft: true},
	}
	st := post.ComputeStats(posts, at(11, 12))
	require.Equal(t, 2, st.TotalPosts)
	require.Equal(t, 1, st.DraftCount)
}

func TestComputeStats_DraftsExcludedFromStreaks(t *testing.T) {
	posts := []post.Post{
		{PostDate: at(9, 9)},
		{PostDate: at(10, 9), IsDraft: true},
		{PostDate: at(11, 9)},
	}
	st := post.ComputeStats(posts, at(11, 12))
	require.Equal(t, 1, st.CurrentStreak)
	require.Equal(t, 1, st.LongestStreak)
}

func TestComputeStats_LongestStreak(t *testing.T) {
	posts := []post.Post{
		{PostDate: at(1, 9)},
		{PostDate: at(2, 9)},
		{PostDate: at(3, 9)},
		{PostDate: at(10, 9)},
		{PostDate: at(11, 9)},
	}
	st := post.ComputeStats(posts, at(20, 12))
	require.Equal(t, 3, st.LongestStreak)
	require.Zero(t, st.CurrentStreak)
}

func TestComputeStats_CurrentStreakToleratesEmptyToday(t *testing.T) {
	posts := []post.Post{
		{PostDate: at(9, 9)},
		{PostDate: at(10, 9)},
	}

	// No post yet today: streak counted from yesterday still holds.
	st := post.ComputeStats(posts, at(11, 8))
	require.Equal(t, 2, st.CurrentStreak)

	// A post today extends it.
	withToday := append(posts, post.Post{PostDate: at(11, 9)})
	st = post.ComputeStats(withToday, at(11, 12))
	require.Equal(t, 3, st.CurrentStreak)

	// Two days of silence break it.
	st = post.ComputeStats(posts, at(12, 8))
	require.Zero(t, st.CurrentStreak)
}

func TestComputeStats_MultiplePostsOneDayCountOnce(t *testing.T) {
	posts := []post.Post{
		{PostDate: at(10, 9)},
		{PostDate: at(10, 12)},
		{PostDate: at(10, 20)},
		{PostDate: at(11, 9)},
	}
	st := post.ComputeStats(posts, at(11, 21))
	require.Equal(t, 2, st.CurrentStreak)
	require.Equal(t, 2, st.LongestStreak)
}

func TestComputeStats_MonthBoundaryStreak(t *testing.T) {
	posts := []post.Post{
		{PostDate: time.Date(2025, 5, 31, 9, 0, 0, 0, time.Local)},
		{PostDate: time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)},
	}
	st := post.ComputeStats(posts, time.Date(2025, 6, 1, 18, 0, 0, 0, time.Local))
	require.Equal(t, 2, st.CurrentStreak)
	require.Equal(t, 2, st.LongestStreak)
}

package post_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
)

func at(day int, hour int) time.Time {
	return time.Date(2025, 6, day, hour, 0, 0, 0, time.Local)
}

func TestDayOf(t *testing.T) {
	morning := at(10, 8)
	evening := at(10, 23)
	require.Equal(t, post.DayOf(morning), post.DayOf(evening))

	nextDay := at(11, 0)
	require.NotEqual(t, post.DayOf(morning), post.DayOf(nextDay))

	key := post.DayOf(evening)
	require.Equal(t, 0, key.Hour())
	require.Equal(t, 0, key.Minute())
}

func TestDayOf_MidnightBoundary(t *testing.T) {
	justBefore := time.Date(2025, 6, 10, 23, 59, 59, 0, time.Local)
	midnight := time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)
	require.NotEqual(t, post.DayOf(justBefore), post.DayOf(midnight))
	require.Equal(t, midnight, post.DayOf(midnight))
}

func TestGroupByDay_Empty(t *testing.T) {
	require.Empty(t, post.GroupByDay(nil))
	require.Empty(t, post.GroupByDay([]post.Post{}))
}

func TestGroupByDay_OrderAndPartition(t *testing.T) {
	posts := []post.Post{
		{ID: "a", PostDate: at(10, 9)},
		{ID: "b", PostDate: at(12, 7)},
		{ID: "c", PostDate: at(10, 15)},
		{ID: "d", PostDate: at(11, 12)},
	}

	groups := post.GroupByDay(posts)
	require.Len(t, groups, 3)

	// Days descending
	require.Equal(t, post.DayOf(at(12, 0)), groups[0].Day)
	require.Equal(t, post.DayOf(at(11, 0)), groups[1].Day)
	require.Equal(t, post.DayOf(at(10, 0)), groups[2].Day)

	// Posts within a day descending by post date
	require.Equal(t, []string{"c", "a"}, ids(groups[2].Posts))

	// Every post lands in exactly one group
	total := 0
	for _, g := range groups {
		total += len(g.Posts)
	}
	require.Equal(t, len(posts), total)
}

func TestGroupByDay_TieKeepsInputOrder(t *testing.T) {
	same := at(10, 9)
	posts := []post.Post{
		{ID: "first", PostDate: same},
		{ID: "second", PostDate: same},
		{ID: "third", PostDate: same},
	}

	groups := post.GroupByDay(posts)
	require.Len(t, groups, 1)
	require.Equal(t, []string{"first", "second", "third"}, ids(groups[0].Posts))
}

func TestByDay_NoEmptyBuckets(t *testing.T) {
	posts := []post.Post{
		{ID: "a", PostDate: at(10, 9)},
		{ID: "b", PostDate: at(20, 9)},
	}
	byDay := post.ByDay(posts)
	require.Len(t, byDay, 2)
	for _, bucket := range byDay {
		require.NotEmpty(t, bucket)
	}
}

func ids(posts []post.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

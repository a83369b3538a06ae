package post_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
)

func TestIntensityFor(t *testing.T) {
	cases := []struct {
		count int
		want  post.Intensity
	}{
		{0, post.IntensityNone},
		{1, post.IntensityLow},
		{2, post.IntensityLow},
		{3, post.IntensityMedium},
		{5, post.IntensityMedium},
		{6, post.IntensityHigh},
		{40, post.IntensityHigh},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, post.IntensityFor(tc.count), "count %d", tc.count)
	}
}

func TestCalendarIndex_Lookups(t *testing.T) {
	posts := []post.Post{
		{ID: "a", PostDate: at(10, 9)},
		{ID: "b", PostDate: at(10, 15)},
		{ID: "c", PostDate: at(12, 7)},
	}
	ix := post.NewCalendarIndex(posts)

	require.Equal(t, 2, ix.CountOn(at(10, 20)))
	require.Equal(t, 1, ix.CountOn(at(12, 1)))
	require.Equal(t, 0, ix.CountOn(at(11, 1)))

	require.Equal(t, post.IntensityLow, ix.IntensityOn(at(10, 0)))
	require.Equal(t, post.IntensityNone, ix.IntensityOn(at(11, 0)))

	onTenth := ix.PostsOn(at(10, 23))
	require.Equal(t, []string{"b", "a"}, ids(onTenth))
}

func TestCalendarIndex_Month(t *testing.T) {
	// June 2025 starts on a Sunday and has 30 days.
	posts := []post.Post{
		{ID: "a", PostDate: at(10, 9)},
		{ID: "b", PostDate: at(10, 15)},
		{ID: "c", PostDate: at(10, 16)},
	}
	ix := post.NewCalendarIndex(posts)

	slots := ix.Month(2025, time.June)
	require.Len(t, slots, 30)
	require.Equal(t, 1, slots[0].Day)
	require.Equal(t, 10, slots[9].Day)
	require.Equal(t, 3, slots[9].Count)
	require.Equal(t, post.IntensityMedium, slots[9].Intensity)
	require.Equal(t, post.IntensityNone, slots[0].Intensity)
}

func TestCalendarIndex_MonthPlaceholders(t *testing.T) {
	// August 2025 starts on a Friday: 5 leading placeholders.
	ix := post.NewCalendarIndex(nil)

	slots := ix.Month(2025, time.August)
	require.Len(t, slots, 5+31)
	for i := 0; i < 5; i++ {
		require.Equal(t, 0, slots[i].Day, "slot %d should be a placeholder", i)
		require.Equal(t, post.IntensityNone, slots[i].Intensity)
	}
	require.Equal(t, 1, slots[5].Day)
	require.Equal(t, 31, slots[len(slots)-1].Day)
}

func TestCalendarIndex_FebruaryLeapYear(t *testing.T) {
	ix := post.NewCalendarIndex(nil)

	days := 0
	for _, slot := range ix.Month(2024, time.February) {
		if slot.Day != 0 {
			days++
		}
	}
	require.Equal(t, 29, days)

	days = 0
	for _, slot := range ix.Month(2025, time.February) {
		if slot.Day != 0 {
			days++
		}
	}
	require.Equal(t, 28, days)
}

func TestMonthNavigation(t *testing.T) {
	year, month := post.PrevMonth(2025, time.January)
	require.Equal(t, 2024, year)
	require.Equal(t, time.December, month)

	year, month = post.NextMonth(2024, time.December)
	require.Equal(t, 2025, year)
	require.Equal(t, time.January, month)

	// A full year of prev followed by next round-trips.
	year, month = 2025, time.June
	for i := 0; i < 12; i++ {
		year, month = post.PrevMonth(year, month)
	}
	require.Equal(t, fmt.Sprintf("%d-%s", 2024, time.June), fmt.Sprintf("%d-%s", year, month))
	for i := 0; i < 12; i++ {
		year, month = post.NextMonth(year, month)
	}
	require.Equal(t, 2025, year)
	require.Equal(t, time.June, month)
}

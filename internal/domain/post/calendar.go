package post

import (
	"sort"
	"time"
)

// CalendarIndex answers per-day lookups for calendar navigation. It is built
// once per snapshot; month windows are re-derived from the same day-key map.
type CalendarIndex struct {
	byDay map[time.Time][]Post
}

// NewCalendarIndex builds the index from a snapshot.
func NewCalendarIndex(posts []Post) *CalendarIndex {
	byDay := ByDay(posts)
	for _, group := range byDay {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].PostDate.After(group[j].PostDate)
		})
	}
	return &CalendarIndex{byDay: byDay}
}

// PostsOn returns that day's posts, newest first, as a fresh slice.
func (ix *CalendarIndex) PostsOn(date time.Time) []Post {
	group := ix.byDay[DayOf(date)]
	out := make([]Post, len(group))
	copy(out, group)
	return out
}

// CountOn returns the number of posts on the given day.
func (ix *CalendarIndex) CountOn(date time.Time) int {
	return len(ix.byDay[DayOf(date)])
}

// IntensityOn returns the heat-map bucket for the given day.
func (ix *CalendarIndex) IntensityOn(date time.Time) Intensity {
	return IntensityFor(ix.CountOn(date))
}

// IntensityFor buckets a day's post count: 0 none, 1-2 low, 3-5 medium,
// 6 or more high.
func IntensityFor(count int) Intensity {
	switch {
	case count <= 0:
		return IntensityNone
	case count <= 2:
		return IntensityLow
	case count <= 5:
		return IntensityMedium
	default:
		return IntensityHigh
	}
}

// Month returns the 7-column grid slots for the given month window: one
// placeholder per weekday before the 1st (Sunday = 0), then one slot per
// calendar day with its count and intensity.
func (ix *CalendarIndex) Month(year int, month time.Month) []DaySlot {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := daysIn(year, month)

	slots := make([]DaySlot, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		slots = append(slots, DaySlot{Intensity: IntensityNone})
	}
	for day := 1; day <= days; day++ {
		count := ix.CountOn(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		slots = append(slots, DaySlot{Day: day, Count: count, Intensity: IntensityFor(count)})
	}
	return slots
}

// PrevMonth steps the month window back by one.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// NextMonth steps the month window forward by one.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

func daysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

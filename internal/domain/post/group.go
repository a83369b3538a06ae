package post

import (
	"sort"
	"time"
)

// DayOf returns the calendar-day identity of t: local midnight, time-of-day
// discarded. Two posts share a timeline group iff their day keys are equal.
func DayOf(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// ByDay partitions posts into a day-key map. Input order is preserved within
// each bucket; days with zero posts never materialize.
func ByDay(posts []Post) map[time.Time][]Post {
	byDay := make(map[time.Time][]Post, len(posts))
	for _, p := range posts {
		day := DayOf(p.PostDate)
		byDay[day] = append(byDay[day], p)
	}
	return byDay
}

// GroupByDay produces the timeline view: groups ordered by day descending,
// posts within each group ordered by post date descending. Ties on post date
// keep their input relative order.
func GroupByDay(posts []Post) []DayGroup {
	byDay := ByDay(posts)

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	groups := make([]DayGroup, 0, len(days))
	for _, day := range days {
		group := byDay[day]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].PostDate.After(group[j].PostDate)
		})
		groups = append(groups, DayGroup{Day: day, Posts: group})
	}
	return groups
}

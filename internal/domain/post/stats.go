package post

import "time"

// ComputeStats derives profile statistics from a snapshot. Streaks count
// consecutive calendar days with at least one published post; a current
// streak survives until the end of today, so a day with no post yet does not
// break it.
func ComputeStats(posts []Post, now time.Time) Stats {
	var st Stats
	days := make(map[time.Time]bool)
	for _, p := range posts {
		if p.IsDraft {
			st.DraftCount++
			continue
		}
		st.TotalPosts++
		days[DayOf(p.PostDate)] = true
	}

	for day := range days {
		if days[day.AddDate(0, 0, -1)] {
			continue // not the start of a run
		}
		run := 1
		for next := day.AddDate(0, 0, 1); days[next]; next = next.AddDate(0, 0, 1) {
			run++
		}
		if run > st.LongestStreak {
			st.LongestStreak = run
		}
	}

	day := DayOf(now)
	if !days[day] {
		day = day.AddDate(0, 0, -1)
	}
	for days[day] {
		st.CurrentStreak++
		day = day.AddDate(0, 0, -1)
	}
	return st
}

package post

import (
	"sort"
	"strings"
	"time"
)

// Query describes a search over the canonical snapshot. The zero value
// matches every post.
type Query struct {
	// Text is matched as a case-insensitive substring of content; blank or
	// whitespace-only text matches everything.
	Text string
	// Start and End bound the date portion of the post date, inclusive. A nil
	// bound is open.
	Start *time.Time
	End   *time.Time
	// Drafts selects visibility: nil includes all posts, true drafts only,
	// false published only.
	Drafts *bool
}

// Filter applies the query's predicates, AND-composed, and returns a fresh
// slice ordered by post date descending.
func Filter(posts []Post, q Query) []Post {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	var start, end time.Time
	if q.Start != nil {
		start = DayOf(*q.Start)
	}
	if q.End != nil {
		end = DayOf(*q.End)
	}

	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if text != "" && !strings.Contains(strings.ToLower(p.Content), text) {
			continue
		}
		day := DayOf(p.PostDate)
		if q.Start != nil && day.Before(start) {
			continue
		}
		if q.End != nil && day.After(end) {
			continue
		}
		if q.Drafts != nil && p.IsDraft != *q.Drafts {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PostDate.After(out[j].PostDate)
	})
	return out
}

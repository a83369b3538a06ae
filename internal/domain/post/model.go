package post

import "time"

// Intensity is the coarse classification of a day's post count used by the
// calendar heat-map.
type Intensity string

const (
	IntensityNone   Intensity = "none"
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Post is a single dated journal entry.
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostDate  time.Time `json:"post_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsDraft   bool      `json:"is_draft"`
}

// DayGroup is one calendar day's worth of posts, newest first.
type DayGroup struct {
	Day   time.Time `json:"day"`
	Posts []Post    `json:"posts"`
}

// DaySlot is one cell of a 7-column month grid. Slots with Day == 0 are the
// leading placeholders that align day 1 under its weekday column.
type DaySlot struct {
	Day       int       `json:"day"`
	Count     int       `json:"count"`
	Intensity Intensity `json:"intensity"`
}

// Stats summarizes posting activity for the profile view. Streaks are counted
// in consecutive calendar days with at least one published post.
type Stats struct {
	TotalPosts    int `json:"total_posts"`
	DraftCount    int `json:"draft_count"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

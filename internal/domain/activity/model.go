package activity

import "time"

// Type represents the kind of journal event being recorded
type Type string

const (
	TypePostCreated   Type = "post_created"
	TypePostUpdated   Type = "post_updated"
	TypePostPublished Type = "post_published"
	TypePostDeleted   Type = "post_deleted"
	TypeSignedOut     Type = "signed_out"
)

// Entry represents an event in the journal's audit trail
type Entry struct {
	ID        int64     `json:"id"`
	PostID    *string   `json:"post_id,omitempty"`
	Type      Type      `json:"type"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

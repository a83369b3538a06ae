package session

import "time"

// Session represents an authenticated journal session backed by a bearer
// token. Tokens are stored hashed; the raw token exists only in the hands of
// the client.
type Session struct {
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUsed    *time.Time `json:"last_used,omitempty"`
}

package session

import (
	"context"
	"time"
)

// Repository provides persistence for session tokens, keyed by token hash.
type Repository interface {
	Insert(ctx context.Context, tokenHash, description string) error
	Lookup(ctx context.Context, tokenHash string) (*Session, error)
	Touch(ctx context.Context, tokenHash string, usedAt time.Time) error
	Delete(ctx context.Context, tokenHash string) error
}

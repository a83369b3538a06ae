package repository

import (
	"context"
	"time"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/activity"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
)

// PostRepository manages post persistence
type PostRepository interface {
	List(ctx context.Context) ([]post.Post, error)
	Insert(ctx context.Context, p *post.Post) (string, error)
	Update(ctx context.Context, id string, fields post.UpdateFields) error
	Delete(ctx context.Context, id string) error
}

// ActivityRepository manages activity log persistence
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
	List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// SessionRepository manages session token persistence
type SessionRepository interface {
	Insert(ctx context.Context, tokenHash, description string) error
	Lookup(ctx context.Context, tokenHash string) (*session.Session, error)
	Touch(ctx context.Context, tokenHash string, usedAt time.Time) error
	Delete(ctx context.Context, tokenHash string) error
}

package post

import (
	"context"
	"time"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/activity"
)

// PostRepository is the backend store contract for journal posts. Insert
// assigns the id; List returns the full collection ordered by post date
// descending.
type PostRepository interface {
	List(ctx context.Context) ([]Post, error)
	Insert(ctx context.Context, p *Post) (string, error)
	Update(ctx context.Context, id string, fields UpdateFields) error
	Delete(ctx context.Context, id string) error
}

// UpdateFields is a partial update; nil pointers leave the column untouched.
type UpdateFields struct {
	Content   *string
	PostDate  *time.Time
	IsDraft   *bool
	UpdatedAt time.Time
}

// ActivityRepository records mutations in the journal audit trail.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

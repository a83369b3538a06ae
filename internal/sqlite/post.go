package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
	"github.com/tsuzuri-app/tsuzuri/internal/repository"
)

// PostRepository implements post persistence using SQLite
type PostRepository struct {
	db *DB
}

// NewPostRepository creates a new SQLite post repository
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db}
}

// List returns all posts ordered by post date descending.
func (r *PostRepository) List(ctx context.Context) ([]post.Post, error) {
	query := `
		SELECT id, content, post_date, created_at, updated_at, is_draft
		FROM posts
		ORDER BY post_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.Content, &p.PostDate, &p.CreatedAt, &p.UpdatedAt, &p.IsDraft); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// Insert stores a new post and returns its assigned id.
func (r *PostRepository) Insert(ctx context.Context, p *post.Post) (string, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO posts (id, content, post_date, created_at, updated_at, is_draft)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, id, p.Content, p.PostDate, p.CreatedAt, p.UpdatedAt, p.IsDraft)
	if err != nil {
		return "", fmt.Errorf("failed to insert post: %w", err)
	}

	return id, nil
}

// Update applies a partial update; unset fields keep their stored value.
func (r *PostRepository) Update(ctx context.Context, id string, fields post.UpdateFields) error {
	sets := []string{"updated_at = ?"}
	args := []any{fields.UpdatedAt}

	if fields.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *fields.Content)
	}
	if fields.PostDate != nil {
		sets = append(sets, "post_date = ?")
		args = append(args, *fields.PostDate)
	}
	if fields.IsDraft != nil {
		sets = append(sets, "is_draft = ?")
		args = append(args, *fields.IsDraft)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE posts SET %s WHERE id = ?", strings.Join(sets, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a post by id.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Get returns a single post by id.
func (r *PostRepository) Get(ctx context.Context, id string) (*post.Post, error) {
	query := `
		SELECT id, content, post_date, created_at, updated_at, is_draft
		FROM posts
		WHERE id = ?`

	var p post.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Content, &p.PostDate, &p.CreatedAt, &p.UpdatedAt, &p.IsDraft)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &p, nil
}

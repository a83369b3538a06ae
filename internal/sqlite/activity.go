package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/activity"
)

// ActivityRepository implements activity log persistence using SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new SQLite activity repository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends an entry to the audit trail and assigns its id.
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	query := `
		INSERT INTO activity_log (post_id, activity_type, summary, created_at)
		VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, entry.PostID, string(entry.Type), entry.Summary, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get activity id: %w", err)
	}
	entry.ID = id

	return nil
}

// List returns entries newest first, optionally filtered.
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	var conditions []string
	var args []any

	if opts.PostID != nil {
		conditions = append(conditions, "post_id = ?")
		args = append(args, *opts.PostID)
	}
	if opts.Type != nil {
		conditions = append(conditions, "activity_type = ?")
		args = append(args, string(*opts.Type))
	}

	query := "SELECT id, post_id, activity_type, summary, created_at FROM activity_log"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var e activity.Entry
		if err := rows.Scan(&e.ID, &e.PostID, &e.Type, &e.Summary, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity: %w", err)
	}

	return entries, nil
}

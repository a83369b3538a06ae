package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
	"github.com/tsuzuri-app/tsuzuri/internal/repository"
)

// SessionRepository implements session token persistence using SQLite
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new SQLite session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Insert stores a hashed token.
func (r *SessionRepository) Insert(ctx context.Context, tokenHash, description string) error {
	query := `
		INSERT INTO api_tokens (token_hash, description, created_at)
		VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, tokenHash, description, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}

	return nil
}

// Lookup returns the session for a hashed token.
func (r *SessionRepository) Lookup(ctx context.Context, tokenHash string) (*session.Session, error) {
	query := `
		SELECT description, created_at, last_used
		FROM api_tokens
		WHERE token_hash = ?`

	var s session.Session
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(&s.Description, &s.CreatedAt, &s.LastUsed)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	return &s, nil
}

// Touch records when a token was last used.
func (r *SessionRepository) Touch(ctx context.Context, tokenHash string, usedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, "UPDATE api_tokens SET last_used = ? WHERE token_hash = ?", usedAt, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to touch token: %w", err)
	}

	return nil
}

// Delete revokes a token.
func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM api_tokens WHERE token_hash = ?", tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
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

package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	repository "github.com/tsuzuri-app/tsuzuri/internal/repository/repoerr"
)

// Service manages bearer-token sessions. The journaling core never gates on
// session state itself; the transport layer consults this service before
// letting a request through.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new session service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Issue mints a new token, stores its hash, and returns the raw token. The
// raw token is not recoverable afterwards.
func (s *Service) Issue(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", ErrInvalidInput
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.repo.Insert(ctx, HashToken(token), description); err != nil {
		return "", fmt.Errorf("storing token: %w", err)
	}
	return token, nil
}

// Resolve maps a raw token to its session and records the use.
func (s *Service) Resolve(ctx context.Context, token string) (*Session, error) {
	hash := HashToken(token)
	sess, err := s.repo.Lookup(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("resolving token: %w", err)
	}

	if err := s.repo.Touch(ctx, hash, time.Now()); err != nil && s.logger != nil {
		s.logger.Warn("failed to record token use", "error", err)
	}
	return sess, nil
}

// SignOut revokes the token. Revoking an unknown token is a no-op.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if err := s.repo.Delete(ctx, HashToken(token)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

// HashToken derives the storage key for a raw bearer token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/activity"
	repository "github.com/tsuzuri-app/tsuzuri/internal/repository/repoerr"
)

// Service performs the draft/publish lifecycle over individual posts. Every
// mutation goes through the backend store and is followed by a full reload of
// the canonical collection; there is no optimistic local mutation.
type Service struct {
	repo       PostRepository
	store      *Store
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new post lifecycle service.
func NewService(repo PostRepository, store *Store, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		store:      store,
		activities: activities,
		logger:     logger,
	}
}

// CreateRequest describes a post creation request.
type CreateRequest struct {
	Content  string
	PostDate time.Time
	IsDraft  bool
}

// EditRequest describes a partial edit. ID and CreatedAt can never change;
// IsDraft only changes when the caller includes it explicitly.
type EditRequest struct {
	ID       string
	Content  *string
	PostDate *time.Time
	IsDraft  *bool
}

// Create validates and persists a new post, then reloads the collection.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Post, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Post{
		Content:   req.Content,
		PostDate:  req.PostDate,
		CreatedAt: now,
		UpdatedAt: now,
		IsDraft:   req.IsDraft,
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("inserting post: %w", err)
	}
	p.ID = id

	s.logActivity(ctx, activity.TypePostCreated, id, "created post")

	if err := s.store.Load(ctx); err != nil {
		return nil, fmt.Errorf("reloading after create: %w", err)
	}
	return p, nil
}

// Edit applies a partial update and refreshes updatedAt. Editing a post that
// vanished concurrently is a no-op followed by a reload; no error surfaces.
func (s *Service) Edit(ctx context.Context, req EditRequest) (*Post, error) {
	if err := ValidateEditInput(req); err != nil {
		return nil, err
	}

	current, ok := s.store.Find(req.ID)
	if !ok {
		return nil, s.reloadAfterMiss(ctx, req.ID)
	}

	fields := UpdateFields{
		Content:   req.Content,
		PostDate:  req.PostDate,
		IsDraft:   req.IsDraft,
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Update(ctx, req.ID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.reloadAfterMiss(ctx, req.ID)
		}
		return nil, fmt.Errorf("updating post: %w", err)
	}

	if req.Content != nil {
		current.Content = *req.Content
	}
	if req.PostDate != nil {
		current.PostDate = *req.PostDate
	}
	if req.IsDraft != nil {
		current.IsDraft = *req.IsDraft
	}
	current.UpdatedAt = fields.UpdatedAt

	s.logActivity(ctx, activity.TypePostUpdated, current.ID, "updated post")

	if err := s.store.Load(ctx); err != nil {
		return nil, fmt.Errorf("reloading after edit: %w", err)
	}
	return &current, nil
}

// Publish flips a draft to published and refreshes updatedAt. Publishing an
// already-published post is an idempotent no-op.
func (s *Service) Publish(ctx context.Context, id string) (*Post, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	current, ok := s.store.Find(id)
	if !ok {
		return nil, s.reloadAfterMiss(ctx, id)
	}
	if !current.IsDraft {
		return &current, nil
	}

	published := false
	fields := UpdateFields{IsDraft: &published, UpdatedAt: time.Now()}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.reloadAfterMiss(ctx, id)
		}
		return nil, fmt.Errorf("publishing post: %w", err)
	}

	current.IsDraft = false
	current.UpdatedAt = fields.UpdatedAt

	s.logActivity(ctx, activity.TypePostPublished, id, "published post")

	if err := s.store.Load(ctx); err != nil {
		return nil, fmt.Errorf("reloading after publish: %w", err)
	}
	return &current, nil
}

// Delete removes a post regardless of state. Deleting an id that is already
// gone is a no-op followed by a reload.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.reloadAfterMiss(ctx, id)
		}
		return fmt.Errorf("deleting post: %w", err)
	}

	s.logActivity(ctx, activity.TypePostDeleted, id, "deleted post")

	if err := s.store.Load(ctx); err != nil {
		return fmt.Errorf("reloading after delete: %w", err)
	}
	return nil
}

// reloadAfterMiss handles mutations that target an id no longer present,
// typically deleted from another session. The collection is refreshed so the
// caller sees the backend's current state.
func (s *Service) reloadAfterMiss(ctx context.Context, id string) error {
	if s.logger != nil {
		s.logger.Info("mutation target missing, reloading", "post_id", id)
	}
	if err := s.store.Load(ctx); err != nil {
		return fmt.Errorf("reloading after missing post: %w", err)
	}
	return nil
}

func (s *Service) logActivity(ctx context.Context, typ activity.Type, postID, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, &activity.Entry{
		PostID:  &postID,
		Type:    typ,
		Summary: fmt.Sprintf("%s %s", summary, postID),
	})
}

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/activity"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
)

// PostRepository is a mock for repository.PostRepository.
type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) List(ctx context.Context) ([]post.Post, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]post.Post); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostRepository) Insert(ctx context.Context, p *post.Post) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *PostRepository) Update(ctx context.Context, id string, fields post.UpdateFields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SessionRepository is a mock for repository.SessionRepository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Insert(ctx context.Context, tokenHash, description string) error {
	args := m.Called(ctx, tokenHash, description)
	return args.Error(0)
}

func (m *SessionRepository) Lookup(ctx context.Context, tokenHash string) (*session.Session, error) {
	args := m.Called(ctx, tokenHash)
	if sess, ok := args.Get(0).(*session.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) Touch(ctx context.Context, tokenHash string, usedAt time.Time) error {
	args := m.Called(ctx, tokenHash, usedAt)
	return args.Error(0)
}

func (m *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

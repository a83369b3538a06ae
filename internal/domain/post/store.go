package post

import (
	"context"
	"fmt"
	"sync"
)

// Store owns the canonical in-memory collection of all posts. Load replaces
// the snapshot wholesale; the derivation helpers (GroupByDay, CalendarIndex,
// Filter) operate on copies handed out by Snapshot and never mutate a post
// in place.
type Store struct {
	repo PostRepository

	mu    sync.RWMutex
	posts []Post
}

// NewStore creates an empty store backed by the given repository.
func NewStore(repo PostRepository) *Store {
	return &Store{repo: repo}
}

// Load fetches the full collection, ordered by post date descending, and
// replaces the prior snapshot. A failed load leaves the previous snapshot
// untouched.
func (s *Store) Load(ctx context.Context) error {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("loading posts: %w", err)
	}

	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
	return nil
}

// Snapshot returns an independent copy of the last loaded collection.
func (s *Store) Snapshot() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Find returns the snapshot's post with the given id.
func (s *Store) Find(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}

// Len reports the size of the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

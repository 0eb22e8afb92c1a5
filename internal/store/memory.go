package store

import (
	"context"
	"sync"

	"socialspace/model"
)

// Memory is a mutex-guarded in-memory Store. It backs the test suites and
// honors the same contract as the Mongo adapter, including the
// unique-username invariant the partial index enforces in production.
type Memory struct {
	mu    sync.RWMutex
	users map[string]model.User
	posts map[string]model.Post
}

func NewMemory() *Memory {
	return &Memory{
		users: make(map[string]model.User),
		posts: make(map[string]model.Post),
	}
}

func (s *Memory) CreateUser(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; ok {
		return ErrConflict
	}
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return ErrConflict
		}
	}
	u.Type = model.TypeUser
	s.users[u.ID] = u
	return nil
}

func (s *Memory) GetUser(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *Memory) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *Memory) CreatePost(_ context.Context, p model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.ID]; ok {
		return ErrConflict
	}
	p.Type = model.TypePost
	s.posts[p.ID] = p
	return nil
}

func (s *Memory) GetPost(_ context.Context, id string) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *Memory) ListPosts(_ context.Context) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *Memory) ListPostsByAuthor(_ context.Context, userID string) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var posts []model.Post
	for _, p := range s.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (s *Memory) ReplacePost(_ context.Context, id string, p model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	p.Type = model.TypePost
	s.posts[id] = p
	return nil
}

func (s *Memory) DeletePost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

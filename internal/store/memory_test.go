package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialspace/model"
)

func TestMemory_UserCreateAndGet(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	u := model.User{ID: "u1", Username: "alice", PasswordHash: "x", IsPrivate: true}
	require.NoError(t, s.CreateUser(ctx, u))

	got, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, got.IsPrivate)
	assert.Equal(t, model.TypeUser, got.Type)

	_, err = s.GetUser(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_UserConflicts(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, model.User{ID: "u1", Username: "alice"}))

	err := s.CreateUser(ctx, model.User{ID: "u1", Username: "other"})
	assert.ErrorIs(t, err, ErrConflict, "duplicate id")

	err = s.CreateUser(ctx, model.User{ID: "u2", Username: "alice"})
	assert.ErrorIs(t, err, ErrConflict, "duplicate username")
}

func TestMemory_FindUserByUsername(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, model.User{ID: "u1", Username: "alice"}))

	got, err := s.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = s.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_PostLifecycle(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	p := model.Post{ID: "p1", UserID: "u1", Content: "hello", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.CreatePost(ctx, p))
	assert.ErrorIs(t, s.CreatePost(ctx, p), ErrConflict)

	got, err := s.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)
	assert.Equal(t, model.TypePost, got.Type)

	got.Content = "edited"
	require.NoError(t, s.ReplacePost(ctx, "p1", *got))
	got, err = s.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)

	require.NoError(t, s.DeletePost(ctx, "p1"))
	_, err = s.GetPost(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ReplaceAndDeleteAbsent(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	assert.ErrorIs(t, s.ReplacePost(ctx, "nope", model.Post{ID: "nope"}), ErrNotFound)
	assert.ErrorIs(t, s.DeletePost(ctx, "nope"), ErrNotFound)
}

func TestMemory_TypeIsolation(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	// A user id must never satisfy a post lookup even though the
	// production store keeps both in one collection.
	require.NoError(t, s.CreateUser(ctx, model.User{ID: "shared", Username: "alice"}))
	_, err := s.GetPost(ctx, "shared")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.CreatePost(ctx, model.Post{ID: "p1", UserID: "shared"}))
	_, err = s.GetUser(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ListPostsByAuthor(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.CreatePost(ctx, model.Post{ID: "p1", UserID: "u1"}))
	require.NoError(t, s.CreatePost(ctx, model.Post{ID: "p2", UserID: "u2"}))
	require.NoError(t, s.CreatePost(ctx, model.Post{ID: "p3", UserID: "u1"}))

	all, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := s.ListPostsByAuthor(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, "u1", p.UserID)
	}
}

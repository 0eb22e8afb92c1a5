// Package store is the record-store adapter. Users and posts live in one
// physical collection and are distinguished by the "type" field, so every
// lookup filters on the discriminant as well as the key.
package store

import (
	"context"
	"errors"

	"socialspace/model"
)

var (
	// ErrNotFound reports an absent record (or one with the wrong
	// discriminant for the requested collection).
	ErrNotFound = errors.New("record not found")
	// ErrConflict reports a create that collides with an existing key.
	ErrConflict = errors.New("record already exists")
)

type Store interface {
	CreateUser(ctx context.Context, u model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)

	CreatePost(ctx context.Context, p model.Post) error
	GetPost(ctx context.Context, id string) (*model.Post, error)
	// ListPosts returns every post of the current logical state. No
	// pagination, no ordering guarantee.
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListPostsByAuthor(ctx context.Context, userID string) ([]model.Post, error)
	ReplacePost(ctx context.Context, id string, p model.Post) error
	DeletePost(ctx context.Context, id string) error
}

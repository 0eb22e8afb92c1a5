package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"socialspace/model"
)

// Mongo keeps both logical collections in the single "records"
// collection, filtered by the type discriminant.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(client *mongo.Client, dbName string) *Mongo {
	return &Mongo{coll: client.Database(dbName).Collection("records")}
}

func (s *Mongo) CreateUser(ctx context.Context, u model.User) error {
	u.Type = model.TypeUser
	if _, err := s.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Mongo) GetUser(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id, "type": model.TypeUser}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &u, nil
}

func (s *Mongo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.coll.FindOne(ctx, bson.M{"username": username, "type": model.TypeUser}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (s *Mongo) CreatePost(ctx context.Context, p model.Post) error {
	p.Type = model.TypePost
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (s *Mongo) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	err := s.coll.FindOne(ctx, bson.M{"_id": id, "type": model.TypePost}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post %s: %w", id, err)
	}
	return &p, nil
}

func (s *Mongo) ListPosts(ctx context.Context) ([]model.Post, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"type": model.TypePost})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (s *Mongo) ListPostsByAuthor(ctx context.Context, userID string) ([]model.Post, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"type": model.TypePost, "user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (s *Mongo) ReplacePost(ctx context.Context, id string, p model.Post) error {
	p.Type = model.TypePost
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id, "type": model.TypePost}, p)
	if err != nil {
		return fmt.Errorf("replace post %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) DeletePost(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "type": model.TypePost})
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

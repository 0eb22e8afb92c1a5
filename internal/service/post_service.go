// Package service orchestrates post create/read/list/update/delete,
// gluing the record store, the blob uploader and the visibility policy.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"socialspace/internal/blob"
	"socialspace/internal/policy"
	"socialspace/internal/store"
	"socialspace/model"
)

var (
	// ErrForbidden: the caller is authenticated but not permitted —
	// wrong owner, or a private author's post seen by a non-owner.
	ErrForbidden = errors.New("forbidden")
	// ErrMediaUpload: the blob store rejected the attached media.
	ErrMediaUpload = errors.New("media upload failed")
)

// MediaUpload is an attachment to store before the post record is written.
type MediaUpload struct {
	Name string
	Data []byte
}

type PostService struct {
	store store.Store
	blob  blob.Uploader
}

func NewPostService(s store.Store, b blob.Uploader) *PostService {
	return &PostService{store: s, blob: b}
}

// Create uploads attached media first, then persists the post. An upload
// failure aborts the whole operation with nothing persisted. The reverse
// is not compensated: when the insert fails after a successful upload,
// the blob is orphaned (known limitation).
func (s *PostService) Create(ctx context.Context, callerID, content, mediaURL string, media *MediaUpload) (model.Post, error) {
	if media != nil {
		url, err := s.blob.Upload(ctx, media.Name, media.Data)
		if err != nil {
			return model.Post{}, fmt.Errorf("%w: %v", ErrMediaUpload, err)
		}
		mediaURL = url
	}

	post := model.Post{
		ID:        uuid.NewString(),
		UserID:    callerID,
		Content:   content,
		MediaURL:  mediaURL,
		CreatedAt: time.Now().UTC(),
		Type:      model.TypePost,
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

// ListVisible returns every post the caller may see. Each post's author
// is resolved with its own round trip; lookups run concurrently and a
// failure on one drops that post only, it never aborts the listing or
// cancels the sibling lookups. The snapshot is best-effort: a post and
// its author may be observed at different points in time.
func (s *PostService) ListVisible(ctx context.Context, callerID string) ([]model.Post, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*model.Post, len(posts))
	var wg sync.WaitGroup
	for i := range posts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			post := posts[i]
			author, err := s.store.GetUser(ctx, post.UserID)
			if err != nil {
				if !errors.Is(err, store.ErrNotFound) {
					log.Printf("resolve author %s for post %s: %v", post.UserID, post.ID, err)
				}
				author = nil
			}
			if policy.Decide(post, author, callerID) == policy.Show {
				visible[i] = &posts[i]
			}
		}(i)
	}
	wg.Wait()

	out := make([]model.Post, 0, len(posts))
	for _, p := range visible {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

// Get fetches one post and applies the same visibility decision the
// listing uses; anything but Show is ErrForbidden.
func (s *PostService) Get(ctx context.Context, callerID, postID string) (model.Post, error) {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return model.Post{}, err
	}

	author, err := s.store.GetUser(ctx, post.UserID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		// Swallowing lookup failures is a listing-only rule; a direct
		// fetch surfaces them.
		return model.Post{}, err
	}

	if policy.Decide(*post, author, callerID) != policy.Show {
		return model.Post{}, ErrForbidden
	}
	return *post, nil
}

// ListMine returns the caller's own posts. Ownership implies access, no
// policy pass needed.
func (s *PostService) ListMine(ctx context.Context, callerID string) ([]model.Post, error) {
	return s.store.ListPostsByAuthor(ctx, callerID)
}

// Update merges the provided fields over the stored post and replaces it
// in full. Nil fields are preserved, never nulled. New media replaces the
// old URL only once its upload has succeeded.
func (s *PostService) Update(ctx context.Context, callerID, postID string, content, mediaURL *string, media *MediaUpload) (model.Post, error) {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return model.Post{}, err
	}
	if post.UserID != callerID {
		return model.Post{}, ErrForbidden
	}

	if media != nil {
		url, err := s.blob.Upload(ctx, media.Name, media.Data)
		if err != nil {
			return model.Post{}, fmt.Errorf("%w: %v", ErrMediaUpload, err)
		}
		post.MediaURL = url
	} else if mediaURL != nil {
		post.MediaURL = *mediaURL
	}
	if content != nil {
		post.Content = *content
	}
	now := time.Now().UTC()
	post.UpdatedAt = &now

	if err := s.store.ReplacePost(ctx, postID, *post); err != nil {
		return model.Post{}, err
	}
	return *post, nil
}

// Delete removes the caller's own post; anyone else gets ErrForbidden no
// matter the post's visibility.
func (s *PostService) Delete(ctx context.Context, callerID, postID string) error {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return ErrForbidden
	}
	return s.store.DeletePost(ctx, postID)
}

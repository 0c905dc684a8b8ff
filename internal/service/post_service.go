package service

import (
	"context"
	"strings"

	"blogql/internal/models"
	"blogql/internal/observability"
	"blogql/internal/store"

	"github.com/google/uuid"
)

type PostService struct {
	store *store.Store
	newID IDGenerator
}

type CreatePostInput struct {
	Title     string
	Body      string
	Published bool
	Author    string
}

// UpdatePostInput applies only the fields that are non-nil. Author is
// immutable and deliberately absent.
type UpdatePostInput struct {
	Title     *string
	Body      *string
	Published *bool
}

// NewPostService creates a PostService. A nil newID defaults to uuid.NewString.
func NewPostService(st *store.Store, newID IDGenerator) *PostService {
	if newID == nil {
		newID = uuid.NewString
	}
	return &PostService{store: st, newID: newID}
}

func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		ID:        s.newID(),
		Title:     in.Title,
		Body:      in.Body,
		Published: in.Published,
		Author:    in.Author,
	}
	err := s.store.Update(func(t *store.Tables) error {
		if t.UserIndex(in.Author) == -1 {
			return models.NewReferenceNotFoundError("user", in.Author)
		}
		t.Posts = append(t.Posts, post)
		return nil
	})
	if err != nil {
		return nil, countFailure(err)
	}
	observability.EntityMutations.WithLabelValues("post", "create").Inc()
	return post, nil
}

func (s *PostService) Update(ctx context.Context, id string, in UpdatePostInput) (*models.Post, error) {
	var post *models.Post
	err := s.store.Update(func(t *store.Tables) error {
		i := t.PostIndex(id)
		if i == -1 {
			return models.NewNotFoundError("post", id)
		}
		post = t.Posts[i]
		if in.Title != nil {
			post.Title = *in.Title
		}
		if in.Body != nil {
			post.Body = *in.Body
		}
		if in.Published != nil {
			post.Published = *in.Published
		}
		return nil
	})
	if err != nil {
		return nil, countFailure(err)
	}
	observability.EntityMutations.WithLabelValues("post", "update").Inc()
	return post, nil
}

// Delete removes the post and cascades away every comment on it.
func (s *PostService) Delete(ctx context.Context, id string) (*models.Post, error) {
	var (
		post          *models.Post
		sweptComments int
	)
	err := s.store.Update(func(t *store.Tables) error {
		i := t.PostIndex(id)
		if i == -1 {
			return models.NewNotFoundError("post", id)
		}
		post = t.RemovePostAt(i)

		comments := t.Comments[:0]
		for _, c := range t.Comments {
			if c.Post == id {
				sweptComments++
				continue
			}
			comments = append(comments, c)
		}
		t.Comments = comments
		return nil
	})
	if err != nil {
		return nil, countFailure(err)
	}
	observability.EntityMutations.WithLabelValues("post", "delete").Inc()
	observability.CascadeDeletes.WithLabelValues("comment").Add(float64(sweptComments))
	return post, nil
}

// Search returns all posts when query is nil, otherwise posts whose title or
// body contains the query case-insensitively, in insertion order.
func (s *PostService) Search(ctx context.Context, query *string) ([]*models.Post, error) {
	var out []*models.Post
	_ = s.store.View(func(t *store.Tables) error {
		if query == nil {
			out = append(out, t.Posts...)
			return nil
		}
		q := strings.ToLower(*query)
		for _, p := range t.Posts {
			if strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Body), q) {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, nil
}

// ListByAuthor returns the live posts written by the given user, in insertion order.
func (s *PostService) ListByAuthor(ctx context.Context, userID string) ([]*models.Post, error) {
	var out []*models.Post
	_ = s.store.View(func(t *store.Tables) error {
		for _, p := range t.Posts {
			if p.Author == userID {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, nil
}

// FindByID returns the live post with the given id, or nil if none exists.
func (s *PostService) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post *models.Post
	_ = s.store.View(func(t *store.Tables) error {
		if i := t.PostIndex(id); i != -1 {
			post = t.Posts[i]
		}
		return nil
	})
	return post, nil
}

package service

import (
	"context"

	"blogql/internal/models"
	"blogql/internal/observability"
	"blogql/internal/store"

	"github.com/google/uuid"
)

type CommentService struct {
	store *store.Store
	newID IDGenerator
}

type CreateCommentInput struct {
	Text   string
	Author string
	Post   string
}

// UpdateCommentInput applies Text only when it is non-nil.
type UpdateCommentInput struct {
	Text *string
}

// NewCommentService creates a CommentService. A nil newID defaults to uuid.NewString.
func NewCommentService(st *store.Store, newID IDGenerator) *CommentService {
	if newID == nil {
		newID = uuid.NewString
	}
	return &CommentService{store: st, newID: newID}
}

// Create inserts a comment after verifying the author exists and the target
// post exists and is published. Unpublished posts cannot receive comments.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	comment := &models.Comment{
		ID:     s.newID(),
		Text:   in.Text,
		Author: in.Author,
		Post:   in.Post,
	}
	err := s.store.Update(func(t *store.Tables) error {
		if t.UserIndex(in.Author) == -1 {
			return models.NewReferenceNotFoundError("user", in.Author)
		}
		i := t.PostIndex(in.Post)
		if i == -1 || !t.Posts[i].Published {
			return models.NewReferenceNotFoundError("post", in.Post)
		}
		t.Comments = append(t.Comments, comment)
		return nil
	})
	if err != nil {
		return nil, countFailure(err)
	}
	observability.EntityMutations.WithLabelValues("comment", "create").Inc()
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, id string, in UpdateCommentInput) (*models.Comment, error) {
	var comment *models.Comment
	err := s.store.Update(func(t *store.Tables) error {
		i := t.CommentIndex(id)
		if i == -1 {
			return models.NewNotFoundError("comment", id)
		}
		comment = t.Comments[i]
		if in.Text != nil {
			comment.Text = *in.Text
		}
		return nil
	})
	if err != nil {
		return nil, countFailure(err)
	}
	observability.EntityMutations.WithLabelValues("comment", "update").Inc()
	return comment, nil
}

// Delete removes the comment. Comments have no dependents, so no cascade.
func (s *CommentService) Delete(ctx context.Context, id string) (*models.Comment, error) {
	var comment *models.Comment
	err := s.store.Update(func(t *store.Tables) error {
		i := t.CommentIndex(id)
		if i == -1 {
			return models.NewNotFoundError("comment", id)
		}
		comment = t.RemoveCommentAt(i)
		return nil
	})
	if err != nil {
		return nil, countFailure(err)
	}
	observability.EntityMutations.WithLabelValues("comment", "delete").Inc()
	return comment, nil
}

// List returns all live comments in insertion order.
func (s *CommentService) List(ctx context.Context) ([]*models.Comment, error) {
	var out []*models.Comment
	_ = s.store.View(func(t *store.Tables) error {
		out = append(out, t.Comments...)
		return nil
	})
	return out, nil
}

// ListByAuthor returns the live comments written by the given user, in insertion order.
func (s *CommentService) ListByAuthor(ctx context.Context, userID string) ([]*models.Comment, error) {
	var out []*models.Comment
	_ = s.store.View(func(t *store.Tables) error {
		for _, c := range t.Comments {
			if c.Author == userID {
				out = append(out, c)
			}
		}
		return nil
	})
	return out, nil
}

// ListByPost returns the live comments on the given post, in insertion order.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	var out []*models.Comment
	_ = s.store.View(func(t *store.Tables) error {
		for _, c := range t.Comments {
			if c.Post == postID {
				out = append(out, c)
			}
		}
		return nil
	})
	return out, nil
}

// Package service enforces the relational rules of the API: uniqueness and
// reference checks before any mutation, and cascading deletes across the
// user/post/comment relationships.
package service

import (
	"context"
	"strings"

	"blogql/internal/models"
	"blogql/internal/observability"
	"blogql/internal/store"

	"github.com/google/uuid"
)

// IDGenerator produces globally-unique string identifiers for new entities.
type IDGenerator func() string

type UserService struct {
	store *store.Store
	newID IDGenerator
}

type CreateUserInput struct {
	Name  string
	Email string
	Age   *int32
}

// UpdateUserInput applies only the fields that are non-nil; an explicit empty
// string is a real value, a nil pointer leaves the field unchanged.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Age   *int32
}

// NewUserService creates a UserService. A nil newID defaults to uuid.NewString.
func NewUserService(st *store.Store, newID IDGenerator) *UserService {
	if newID == nil {
		newID = uuid.NewString
	}
	return &UserService{store: st, newID: newID}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	user := &models.User{
		ID:    s.newID(),
		Name:  in.Name,
		Email: in.Email,
		Age:   in.Age,
	}
	err := s.store.Update(func(t *store.Tables) error {
		for _, u := range t.Users {
			if u.Email == in.Email {
				return models.NewDuplicateEmailError(in.Email)
			}
		}
		t.Users = append(t.Users, user)
		return nil
	})
	if err != nil {
		return nil, countFailure(err)
	}
	observability.EntityMutations.WithLabelValues("user", "create").Inc()
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	var user *models.User
	err := s.store.Update(func(t *store.Tables) error {
		i := t.UserIndex(id)
		if i == -1 {
			return models.NewNotFoundError("user", id)
		}
		if in.Email != nil {
			for _, u := range t.Users {
				if u.ID != id && u.Email == *in.Email {
					return models.NewDuplicateEmailError(*in.Email)
				}
			}
		}
		user = t.Users[i]
		if in.Name != nil {
			user.Name = *in.Name
		}
		if in.Email != nil {
			user.Email = *in.Email
		}
		if in.Age != nil {
			user.Age = in.Age
		}
		return nil
	})
	if err != nil {
		return nil, countFailure(err)
	}
	observability.EntityMutations.WithLabelValues("user", "update").Inc()
	return user, nil
}

// Delete removes the user and cascades: posts authored by the user, comments
// on those posts, and comments the user wrote anywhere.
func (s *UserService) Delete(ctx context.Context, id string) (*models.User, error) {
	var (
		user          *models.User
		sweptPosts    int
		sweptComments int
	)
	err := s.store.Update(func(t *store.Tables) error {
		i := t.UserIndex(id)
		if i == -1 {
			return models.NewNotFoundError("user", id)
		}
		user = t.RemoveUserAt(i)

		deletedPosts := make(map[string]bool)
		posts := t.Posts[:0]
		for _, p := range t.Posts {
			if p.Author == id {
				deletedPosts[p.ID] = true
				continue
			}
			posts = append(posts, p)
		}
		sweptPosts = len(deletedPosts)
		t.Posts = posts

		comments := t.Comments[:0]
		for _, c := range t.Comments {
			if c.Author == id || deletedPosts[c.Post] {
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
	observability.EntityMutations.WithLabelValues("user", "delete").Inc()
	observability.CascadeDeletes.WithLabelValues("post").Add(float64(sweptPosts))
	observability.CascadeDeletes.WithLabelValues("comment").Add(float64(sweptComments))
	return user, nil
}

// Search returns all users when query is nil, otherwise users whose name
// contains the query case-insensitively, in insertion order.
func (s *UserService) Search(ctx context.Context, query *string) ([]*models.User, error) {
	var out []*models.User
	_ = s.store.View(func(t *store.Tables) error {
		if query == nil {
			out = append(out, t.Users...)
			return nil
		}
		q := strings.ToLower(*query)
		for _, u := range t.Users {
			if strings.Contains(strings.ToLower(u.Name), q) {
				out = append(out, u)
			}
		}
		return nil
	})
	return out, nil
}

// FindByID returns the live user with the given id, or nil if none exists.
// Used by relationship resolution, where a missing author maps to null.
func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	_ = s.store.View(func(t *store.Tables) error {
		if i := t.UserIndex(id); i != -1 {
			user = t.Users[i]
		}
		return nil
	})
	return user, nil
}

// countFailure bumps the failure counter for AppError codes and passes the
// error through unchanged.
func countFailure(err error) error {
	if appErr, ok := err.(*models.AppError); ok {
		observability.MutationFailures.WithLabelValues(appErr.Code).Inc()
	}
	return err
}

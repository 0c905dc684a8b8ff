// Package store holds the process-local entity collections. It is the only
// state in the system: three ordered slices with no persistence, owned by an
// explicit Store value so tests can run independent instances side by side.
package store

import (
	"sync"

	"blogql/internal/models"
)

// Tables is the raw view of the three collections. It performs no validation;
// callers in the service layer are responsible for invariants.
type Tables struct {
	Users    []*models.User
	Posts    []*models.Post
	Comments []*models.Comment
}

// UserIndex returns the position of the user with the given id, or -1.
func (t *Tables) UserIndex(id string) int {
	for i, u := range t.Users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// PostIndex returns the position of the post with the given id, or -1.
func (t *Tables) PostIndex(id string) int {
	for i, p := range t.Posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// CommentIndex returns the position of the comment with the given id, or -1.
func (t *Tables) CommentIndex(id string) int {
	for i, c := range t.Comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// RemoveUserAt splices out and returns the user at index i.
func (t *Tables) RemoveUserAt(i int) *models.User {
	u := t.Users[i]
	t.Users = append(t.Users[:i], t.Users[i+1:]...)
	return u
}

// RemovePostAt splices out and returns the post at index i.
func (t *Tables) RemovePostAt(i int) *models.Post {
	p := t.Posts[i]
	t.Posts = append(t.Posts[:i], t.Posts[i+1:]...)
	return p
}

// RemoveCommentAt splices out and returns the comment at index i.
func (t *Tables) RemoveCommentAt(i int) *models.Comment {
	c := t.Comments[i]
	t.Comments = append(t.Comments[:i], t.Comments[i+1:]...)
	return c
}

// Store guards the tables with a read-write lock. The API contract assumes the
// transport serializes requests, but a Go HTTP server does not, so reads run
// under RLock and every mutation operation runs as one closure under Lock.
type Store struct {
	mu     sync.RWMutex
	tables Tables
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// View runs fn with read access to the tables. fn must not retain the
// *Tables value or mutate anything reachable from it.
func (s *Store) View(fn func(*Tables) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.tables)
}

// Update runs fn with exclusive access to the tables. A non-nil error from fn
// is returned as-is; callers check all preconditions before mutating so a
// failed operation leaves the tables untouched.
func (s *Store) Update(fn func(*Tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.tables)
}

// Counts reports the number of live users, posts and comments.
func (s *Store) Counts() (users, posts, comments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables.Users), len(s.tables.Posts), len(s.tables.Comments)
}

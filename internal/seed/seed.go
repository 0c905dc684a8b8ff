// Package seed provides helpers to create demo data for the in-memory store.
// These helpers are intended for development and testing only.
package seed

import (
	"blogql/internal/models"
	"blogql/internal/store"
)

func int32Ptr(v int32) *int32 { return &v }

// Demo loads the well-known demo fixtures: three users, three posts and three
// comments. Fixed ids keep playground examples reproducible across restarts.
func Demo(st *store.Store) error {
	return st.Update(func(t *store.Tables) error {
		t.Users = append(t.Users,
			&models.User{ID: "1", Name: "Andrew", Email: "andrew@example.com", Age: int32Ptr(27)},
			&models.User{ID: "2", Name: "Sarah", Email: "sarah@example.com"},
			&models.User{ID: "3", Name: "Mike", Email: "mike@example.com"},
		)
		t.Posts = append(t.Posts,
			&models.Post{ID: "10", Title: "GraphQL 101", Body: "This is how to use GraphQL...", Published: true, Author: "1"},
			&models.Post{ID: "11", Title: "GraphQL 201", Body: "This is an advanced GraphQL post...", Published: false, Author: "1"},
			&models.Post{ID: "12", Title: "Programming Music", Body: "", Published: false, Author: "2"},
		)
		t.Comments = append(t.Comments,
			&models.Comment{ID: "101", Text: "I totally agree with you, dog!", Author: "2", Post: "10"},
			&models.Comment{ID: "102", Text: "Incredible Post", Author: "3", Post: "10"},
			&models.Comment{ID: "103", Text: "Looking forward to the sequel", Author: "3", Post: "10"},
		)
		return nil
	})
}

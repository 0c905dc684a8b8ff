// Package models contains data structures for the application's domain entities.
package models

// User represents a registered author. Email is unique across all live users.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int32 `json:"age,omitempty"`
}

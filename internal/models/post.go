package models

// Post represents a blog post. Author holds the id of the user that wrote it
// and is immutable after creation; only published posts accept comments.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	Author    string `json:"author"`
}

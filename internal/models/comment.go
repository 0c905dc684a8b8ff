package models

// Comment represents a comment on a published post. Author and Post hold the
// ids of the referenced user and post; both are immutable after creation.
type Comment struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Post   string `json:"post"`
}

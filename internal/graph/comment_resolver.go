package graph

import (
	"context"

	"blogql/internal/models"

	graphql "github.com/graph-gophers/graphql-go"
)

// CommentResolver resolves the Comment type.
type CommentResolver struct {
	root *Resolver
	c    *models.Comment
}

func (r *CommentResolver) ID() graphql.ID {
	return graphql.ID(r.c.ID)
}

func (r *CommentResolver) Text() string {
	return r.c.Text
}

// Author resolves the comment's author, or null if the reference dangles.
func (r *CommentResolver) Author(ctx context.Context) (*UserResolver, error) {
	user, err := r.root.users.FindByID(ctx, r.c.Author)
	if err != nil || user == nil {
		return nil, err
	}
	return &UserResolver{root: r.root, u: user}, nil
}

// Post resolves the post the comment was left on, or null if it dangles.
func (r *CommentResolver) Post(ctx context.Context) (*PostResolver, error) {
	post, err := r.root.posts.FindByID(ctx, r.c.Post)
	if err != nil || post == nil {
		return nil, err
	}
	return &PostResolver{root: r.root, p: post}, nil
}

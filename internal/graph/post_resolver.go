package graph

import (
	"context"

	"blogql/internal/models"

	graphql "github.com/graph-gophers/graphql-go"
)

// PostResolver resolves the Post type.
type PostResolver struct {
	root *Resolver
	p    *models.Post
}

func (r *PostResolver) ID() graphql.ID {
	return graphql.ID(r.p.ID)
}

func (r *PostResolver) Title() string {
	return r.p.Title
}

func (r *PostResolver) Body() string {
	return r.p.Body
}

func (r *PostResolver) Published() bool {
	return r.p.Published
}

// Author resolves the post's author, or null if the reference dangles.
func (r *PostResolver) Author(ctx context.Context) (*UserResolver, error) {
	user, err := r.root.users.FindByID(ctx, r.p.Author)
	if err != nil || user == nil {
		return nil, err
	}
	return &UserResolver{root: r.root, u: user}, nil
}

// Comments resolves the comments on this post, in insertion order.
func (r *PostResolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := r.root.comments.ListByPost(ctx, r.p.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		out = append(out, &CommentResolver{root: r.root, c: c})
	}
	return out, nil
}

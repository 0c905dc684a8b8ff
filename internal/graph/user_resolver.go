package graph

import (
	"context"

	"blogql/internal/models"

	graphql "github.com/graph-gophers/graphql-go"
)

// UserResolver resolves the User type.
type UserResolver struct {
	root *Resolver
	u    *models.User
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.u.ID)
}

func (r *UserResolver) Name() string {
	return r.u.Name
}

func (r *UserResolver) Email() string {
	return r.u.Email
}

func (r *UserResolver) Age() *int32 {
	return r.u.Age
}

// Posts resolves the posts written by this user, in insertion order.
func (r *UserResolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := r.root.posts.ListByAuthor(ctx, r.u.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		out = append(out, &PostResolver{root: r.root, p: p})
	}
	return out, nil
}

// Comments resolves the comments written by this user, in insertion order.
func (r *UserResolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := r.root.comments.ListByAuthor(ctx, r.u.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		out = append(out, &CommentResolver{root: r.root, c: c})
	}
	return out, nil
}

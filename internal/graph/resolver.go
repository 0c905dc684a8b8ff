package graph

import (
	"context"

	"blogql/internal/service"

	graphql "github.com/graph-gophers/graphql-go"
)

// Resolver is the root resolver. It holds the service-layer dependencies that
// queries, mutations and nested field resolvers operate through.
type Resolver struct {
	users    *service.UserService
	posts    *service.PostService
	comments *service.CommentService
}

// NewResolver creates the root resolver over the given services.
func NewResolver(users *service.UserService, posts *service.PostService, comments *service.CommentService) *Resolver {
	return &Resolver{users: users, posts: posts, comments: comments}
}

// Query

func (r *Resolver) Users(ctx context.Context, args struct{ Query *string }) ([]*UserResolver, error) {
	users, err := r.users.Search(ctx, args.Query)
	if err != nil {
		return nil, err
	}
	out := make([]*UserResolver, 0, len(users))
	for _, u := range users {
		out = append(out, &UserResolver{root: r, u: u})
	}
	return out, nil
}

func (r *Resolver) Posts(ctx context.Context, args struct{ Query *string }) ([]*PostResolver, error) {
	posts, err := r.posts.Search(ctx, args.Query)
	if err != nil {
		return nil, err
	}
	out := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		out = append(out, &PostResolver{root: r, p: p})
	}
	return out, nil
}

func (r *Resolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := r.comments.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		out = append(out, &CommentResolver{root: r, c: c})
	}
	return out, nil
}

// Mutation inputs

type createUserInput struct {
	Name  string
	Email string
	Age   *int32
}

type updateUserInput struct {
	Name  *string
	Email *string
	Age   *int32
}

type createPostInput struct {
	Title     string
	Body      string
	Published bool
	Author    graphql.ID
}

type updatePostInput struct {
	Title     *string
	Body      *string
	Published *bool
}

type createCommentInput struct {
	Text   string
	Author graphql.ID
	Post   graphql.ID
}

type updateCommentInput struct {
	Text *string
}

// Mutation

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Data createUserInput }) (*UserResolver, error) {
	user, err := r.users.Create(ctx, service.CreateUserInput{
		Name:  args.Data.Name,
		Email: args.Data.Email,
		Age:   args.Data.Age,
	})
	if err != nil {
		return nil, err
	}
	return &UserResolver{root: r, u: user}, nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	ID   graphql.ID
	Data updateUserInput
}) (*UserResolver, error) {
	user, err := r.users.Update(ctx, string(args.ID), service.UpdateUserInput{
		Name:  args.Data.Name,
		Email: args.Data.Email,
		Age:   args.Data.Age,
	})
	if err != nil {
		return nil, err
	}
	return &UserResolver{root: r, u: user}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID graphql.ID }) (*UserResolver, error) {
	user, err := r.users.Delete(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &UserResolver{root: r, u: user}, nil
}

func (r *Resolver) CreatePost(ctx context.Context, args struct{ Data createPostInput }) (*PostResolver, error) {
	post, err := r.posts.Create(ctx, service.CreatePostInput{
		Title:     args.Data.Title,
		Body:      args.Data.Body,
		Published: args.Data.Published,
		Author:    string(args.Data.Author),
	})
	if err != nil {
		return nil, err
	}
	return &PostResolver{root: r, p: post}, nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID   graphql.ID
	Data updatePostInput
}) (*PostResolver, error) {
	post, err := r.posts.Update(ctx, string(args.ID), service.UpdatePostInput{
		Title:     args.Data.Title,
		Body:      args.Data.Body,
		Published: args.Data.Published,
	})
	if err != nil {
		return nil, err
	}
	return &PostResolver{root: r, p: post}, nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	post, err := r.posts.Delete(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &PostResolver{root: r, p: post}, nil
}

func (r *Resolver) CreateComment(ctx context.Context, args struct{ Data createCommentInput }) (*CommentResolver, error) {
	comment, err := r.comments.Create(ctx, service.CreateCommentInput{
		Text:   args.Data.Text,
		Author: string(args.Data.Author),
		Post:   string(args.Data.Post),
	})
	if err != nil {
		return nil, err
	}
	return &CommentResolver{root: r, c: comment}, nil
}

func (r *Resolver) UpdateComment(ctx context.Context, args struct {
	ID   graphql.ID
	Data updateCommentInput
}) (*CommentResolver, error) {
	comment, err := r.comments.Update(ctx, string(args.ID), service.UpdateCommentInput{
		Text: args.Data.Text,
	})
	if err != nil {
		return nil, err
	}
	return &CommentResolver{root: r, c: comment}, nil
}

func (r *Resolver) DeleteComment(ctx context.Context, args struct{ ID graphql.ID }) (*CommentResolver, error) {
	comment, err := r.comments.Delete(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &CommentResolver{root: r, c: comment}, nil
}

package seed

import (
	"context"
	"errors"
	"fmt"

	"blogql/internal/models"
	"blogql/internal/service"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds fake entities through the service layer so every generated
// record satisfies the same rules as API traffic.
type Factory struct {
	users    *service.UserService
	posts    *service.PostService
	comments *service.CommentService
}

// NewFactory creates a Factory over the given services.
func NewFactory(users *service.UserService, posts *service.PostService, comments *service.CommentService) *Factory {
	gofakeit.Seed(0)
	return &Factory{users: users, posts: posts, comments: comments}
}

// CreateUser creates one fake user, retrying on email collisions.
func (f *Factory) CreateUser(ctx context.Context) (*models.User, error) {
	var appErr *models.AppError
	for attempt := 0; attempt < 5; attempt++ {
		age := int32(gofakeit.Number(18, 80))
		user, err := f.users.Create(ctx, service.CreateUserInput{
			Name:  gofakeit.Name(),
			Email: gofakeit.Email(),
			Age:   &age,
		})
		if err == nil {
			return user, nil
		}
		if !errors.As(err, &appErr) || appErr.Code != models.CodeDuplicateEmail {
			return nil, err
		}
	}
	return nil, fmt.Errorf("could not generate a unique email after 5 attempts")
}

// SeedFakeUsers creates n users, each with a couple of posts and comments on
// whichever generated posts are published.
func (f *Factory) SeedFakeUsers(ctx context.Context, n int) error {
	var published []*models.Post
	users := make([]*models.User, 0, n)

	for i := 0; i < n; i++ {
		user, err := f.CreateUser(ctx)
		if err != nil {
			return err
		}
		users = append(users, user)

		for j := 0; j < gofakeit.Number(1, 3); j++ {
			post, err := f.posts.Create(ctx, service.CreatePostInput{
				Title:     gofakeit.Sentence(4),
				Body:      gofakeit.Paragraph(1, 3, 8, " "),
				Published: gofakeit.Bool(),
				Author:    user.ID,
			})
			if err != nil {
				return err
			}
			if post.Published {
				published = append(published, post)
			}
		}
	}

	for _, user := range users {
		if len(published) == 0 {
			break
		}
		post := published[gofakeit.Number(0, len(published)-1)]
		if _, err := f.comments.Create(ctx, service.CreateCommentInput{
			Text:   gofakeit.HipsterSentence(8),
			Author: user.ID,
			Post:   post.ID,
		}); err != nil {
			return err
		}
	}
	return nil
}

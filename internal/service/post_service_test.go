package service

import (
	"context"
	"testing"

	"blogql/internal/models"
	"blogql/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown author leaves posts unchanged", func(t *testing.T) {
		t.Parallel()
		st, _, posts, _ := newFixture(t)

		_, err := posts.Create(ctx, CreatePostInput{Title: "T", Author: "ghost"})
		requireCode(t, err, models.CodeReferenceNotFound)

		_, n, _ := st.Counts()
		assert.Zero(t, n)
	})

	t.Run("inserts with generated id", func(t *testing.T) {
		t.Parallel()
		_, users, posts, _ := newFixture(t)

		a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)

		post, err := posts.Create(ctx, CreatePostInput{Title: "T", Body: "B", Published: true, Author: a.ID})
		require.NoError(t, err)
		assert.Equal(t, "post-1", post.ID)
		assert.Equal(t, a.ID, post.Author)
	})
}

func TestPostService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		_, _, posts, _ := newFixture(t)
		_, err := posts.Update(ctx, "missing", UpdatePostInput{})
		requireCode(t, err, models.CodeNotFound)
	})

	t.Run("applies only provided fields", func(t *testing.T) {
		t.Parallel()
		_, users, posts, _ := newFixture(t)

		a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)
		post, err := posts.Create(ctx, CreatePostInput{Title: "T", Body: "B", Published: false, Author: a.ID})
		require.NoError(t, err)

		published := true
		updated, err := posts.Update(ctx, post.ID, UpdatePostInput{Published: &published})
		require.NoError(t, err)
		assert.True(t, updated.Published)
		assert.Equal(t, "T", updated.Title)
		assert.Equal(t, "B", updated.Body)

		empty := ""
		updated, err = posts.Update(ctx, post.ID, UpdatePostInput{Body: &empty})
		require.NoError(t, err)
		assert.Equal(t, "", updated.Body)
		assert.True(t, updated.Published)
	})
}

func TestPostService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		_, _, posts, _ := newFixture(t)
		_, err := posts.Delete(ctx, "missing")
		requireCode(t, err, models.CodeNotFound)
	})

	t.Run("removes exactly the post and its comments", func(t *testing.T) {
		t.Parallel()
		st, users, posts, comments := newFixture(t)

		a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)
		p1, err := posts.Create(ctx, CreatePostInput{Title: "P1", Published: true, Author: a.ID})
		require.NoError(t, err)
		p2, err := posts.Create(ctx, CreatePostInput{Title: "P2", Published: true, Author: a.ID})
		require.NoError(t, err)

		_, err = comments.Create(ctx, CreateCommentInput{Text: "on p1", Author: a.ID, Post: p1.ID})
		require.NoError(t, err)
		survivor, err := comments.Create(ctx, CreateCommentInput{Text: "on p2", Author: a.ID, Post: p2.ID})
		require.NoError(t, err)

		deleted, err := posts.Delete(ctx, p1.ID)
		require.NoError(t, err)
		assert.Equal(t, p1.ID, deleted.ID)

		require.NoError(t, st.View(func(tb *store.Tables) error {
			require.Len(t, tb.Posts, 1)
			assert.Equal(t, p2.ID, tb.Posts[0].ID)
			require.Len(t, tb.Comments, 1)
			assert.Equal(t, survivor.ID, tb.Comments[0].ID)
			return nil
		}))
		assert.Empty(t, st.CheckIntegrity())
	})
}

func TestPostService_Search(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, users, posts, _ := newFixture(t)
	a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)

	for _, p := range []CreatePostInput{
		{Title: "GraphQL 101", Body: "This is how to use GraphQL...", Published: true, Author: a.ID},
		{Title: "GraphQL 201", Body: "This is an advanced GraphQL post...", Published: false, Author: a.ID},
		{Title: "Programming Music", Body: "", Published: false, Author: a.ID},
	} {
		_, err := posts.Create(ctx, p)
		require.NoError(t, err)
	}

	t.Run("nil query returns all in insertion order", func(t *testing.T) {
		got, err := posts.Search(ctx, nil)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "GraphQL 101", got[0].Title)
	})

	t.Run("title match is case-insensitive", func(t *testing.T) {
		q := "graphql"
		got, err := posts.Search(ctx, &q)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "GraphQL 101", got[0].Title)
		assert.Equal(t, "GraphQL 201", got[1].Title)
	})

	t.Run("body matches too", func(t *testing.T) {
		q := "advanced"
		got, err := posts.Search(ctx, &q)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "GraphQL 201", got[0].Title)
	})
}

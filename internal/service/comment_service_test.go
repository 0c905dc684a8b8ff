package service

import (
	"context"
	"testing"

	"blogql/internal/models"
	"blogql/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()
		_, users, posts, comments := newFixture(t)

		a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)
		p, err := posts.Create(ctx, CreatePostInput{Title: "P", Published: true, Author: a.ID})
		require.NoError(t, err)

		_, err = comments.Create(ctx, CreateCommentInput{Text: "hi", Author: "ghost", Post: p.ID})
		requireCode(t, err, models.CodeReferenceNotFound)
	})

	t.Run("unpublished post leaves comments unchanged", func(t *testing.T) {
		t.Parallel()
		st, users, posts, comments := newFixture(t)

		a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)
		b, err := users.Create(ctx, CreateUserInput{Name: "B", Email: "b@x.com"})
		require.NoError(t, err)
		p, err := posts.Create(ctx, CreatePostInput{Title: "Draft", Published: false, Author: a.ID})
		require.NoError(t, err)

		_, err = comments.Create(ctx, CreateCommentInput{Text: "hi", Author: b.ID, Post: p.ID})
		requireCode(t, err, models.CodeReferenceNotFound)

		_, _, n := st.Counts()
		assert.Zero(t, n)
	})

	t.Run("unknown post", func(t *testing.T) {
		t.Parallel()
		_, users, _, comments := newFixture(t)

		a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)

		_, err = comments.Create(ctx, CreateCommentInput{Text: "hi", Author: a.ID, Post: "ghost"})
		requireCode(t, err, models.CodeReferenceNotFound)
	})

	t.Run("inserts into the store", func(t *testing.T) {
		t.Parallel()
		st, users, posts, comments := newFixture(t)

		a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)
		p, err := posts.Create(ctx, CreatePostInput{Title: "P", Published: true, Author: a.ID})
		require.NoError(t, err)

		comment, err := comments.Create(ctx, CreateCommentInput{Text: "hi", Author: a.ID, Post: p.ID})
		require.NoError(t, err)
		assert.Equal(t, "comment-1", comment.ID)

		// the created comment is persisted, not just returned
		got, err := comments.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, comment.ID, got[0].ID)
		assert.Empty(t, st.CheckIntegrity())
	})
}

func TestCommentService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		_, _, _, comments := newFixture(t)
		_, err := comments.Update(ctx, "missing", UpdateCommentInput{})
		requireCode(t, err, models.CodeNotFound)
	})

	t.Run("nil text is a no-op, empty string applies", func(t *testing.T) {
		t.Parallel()
		_, users, posts, comments := newFixture(t)

		a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)
		p, err := posts.Create(ctx, CreatePostInput{Title: "P", Published: true, Author: a.ID})
		require.NoError(t, err)
		c, err := comments.Create(ctx, CreateCommentInput{Text: "original", Author: a.ID, Post: p.ID})
		require.NoError(t, err)

		updated, err := comments.Update(ctx, c.ID, UpdateCommentInput{})
		require.NoError(t, err)
		assert.Equal(t, "original", updated.Text)

		empty := ""
		updated, err = comments.Update(ctx, c.ID, UpdateCommentInput{Text: &empty})
		require.NoError(t, err)
		assert.Equal(t, "", updated.Text)
	})
}

func TestCommentService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		_, _, _, comments := newFixture(t)
		_, err := comments.Delete(ctx, "missing")
		requireCode(t, err, models.CodeNotFound)
	})

	t.Run("no cascade", func(t *testing.T) {
		t.Parallel()
		st, users, posts, comments := newFixture(t)

		a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)
		p, err := posts.Create(ctx, CreatePostInput{Title: "P", Published: true, Author: a.ID})
		require.NoError(t, err)
		c1, err := comments.Create(ctx, CreateCommentInput{Text: "1", Author: a.ID, Post: p.ID})
		require.NoError(t, err)
		c2, err := comments.Create(ctx, CreateCommentInput{Text: "2", Author: a.ID, Post: p.ID})
		require.NoError(t, err)

		deleted, err := comments.Delete(ctx, c1.ID)
		require.NoError(t, err)
		assert.Equal(t, c1.ID, deleted.ID)

		require.NoError(t, st.View(func(tb *store.Tables) error {
			require.Len(t, tb.Comments, 1)
			assert.Equal(t, c2.ID, tb.Comments[0].ID)
			require.Len(t, tb.Users, 1)
			require.Len(t, tb.Posts, 1)
			return nil
		}))
	})
}

func TestCommentService_Listings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, users, posts, comments := newFixture(t)
	a, err := users.Create(ctx, CreateUserInput{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	b, err := users.Create(ctx, CreateUserInput{Name: "B", Email: "b@x.com"})
	require.NoError(t, err)
	p1, err := posts.Create(ctx, CreatePostInput{Title: "P1", Published: true, Author: a.ID})
	require.NoError(t, err)
	p2, err := posts.Create(ctx, CreatePostInput{Title: "P2", Published: true, Author: b.ID})
	require.NoError(t, err)

	_, err = comments.Create(ctx, CreateCommentInput{Text: "a on p1", Author: a.ID, Post: p1.ID})
	require.NoError(t, err)
	_, err = comments.Create(ctx, CreateCommentInput{Text: "b on p1", Author: b.ID, Post: p1.ID})
	require.NoError(t, err)
	_, err = comments.Create(ctx, CreateCommentInput{Text: "a on p2", Author: a.ID, Post: p2.ID})
	require.NoError(t, err)

	byAuthor, err := comments.ListByAuthor(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
	assert.Equal(t, "a on p1", byAuthor[0].Text)
	assert.Equal(t, "a on p2", byAuthor[1].Text)

	byPost, err := comments.ListByPost(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, byPost, 2)
	assert.Equal(t, "a on p1", byPost[0].Text)
	assert.Equal(t, "b on p1", byPost[1].Text)

	all, err := comments.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

package service

import (
	"fmt"
	"testing"

	"blogql/internal/models"
	"blogql/internal/store"

	"github.com/stretchr/testify/require"
)

// testIDGen returns a deterministic generator: prefix-1, prefix-2, ...
func testIDGen(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// newFixture builds an isolated store with one service per entity, all using
// deterministic ids.
func newFixture(t *testing.T) (*store.Store, *UserService, *PostService, *CommentService) {
	t.Helper()
	st := store.New()
	return st,
		NewUserService(st, testIDGen("user")),
		NewPostService(st, testIDGen("post")),
		NewCommentService(st, testIDGen("comment"))
}

// requireCode asserts that err is an AppError with the given code.
func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
}

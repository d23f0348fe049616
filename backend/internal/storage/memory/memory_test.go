package memory

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T) (*Storage, domain.UserId, domain.ThreadId) {
	t.Helper()
	n := 0
	s := New(
		WithIdGenerator(func() string { n++; return strconv.Itoa(n) }),
		WithClock(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }),
	)
	u, err := s.AddUser(context.Background(), domain.RegisterUser{Username: "dicoding", Password: "hashed"})
	require.NoError(t, err)
	th, err := s.AddThread(context.Background(), domain.AddThread{Title: "t", Body: "b", Owner: u.Id})
	require.NoError(t, err)
	return s, u.Id, th.Id
}

func TestAddComment(t *testing.T) {
	s := New(WithIdGenerator(func() string { return "232" }))
	ctx := context.Background()
	u, err := s.AddUser(ctx, domain.RegisterUser{Username: "dicoding", Password: "x"})
	require.NoError(t, err)
	th, err := s.AddThread(ctx, domain.AddThread{Title: "t", Body: "b", Owner: u.Id})
	require.NoError(t, err)

	added, err := s.AddComment(ctx, domain.AddComment{ThreadId: th.Id, Content: "hi", Owner: u.Id})
	require.NoError(t, err)
	assert.Equal(t, domain.AddedComment{Id: "comment-232", Content: "hi", Owner: "user-232"}, added)

	_, err = s.AddComment(ctx, domain.AddComment{ThreadId: "thread-x", Content: "hi", Owner: u.Id})
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))
}

func TestCommentLifecycle(t *testing.T) {
	s, owner, threadId := newSeeded(t)
	ctx := context.Background()
	other, err := s.AddUser(ctx, domain.RegisterUser{Username: "johndoe", Password: "x"})
	require.NoError(t, err)

	first, err := s.AddComment(ctx, domain.AddComment{ThreadId: threadId, Content: "first", Owner: owner})
	require.NoError(t, err)
	second, err := s.AddComment(ctx, domain.AddComment{ThreadId: threadId, Content: "second", Owner: other.Id})
	require.NoError(t, err)

	assert.NoError(t, s.VerifyAvailableComment(ctx, threadId, first.Id))
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](s.VerifyAvailableComment(ctx, "thread-x", first.Id)))
	assert.NoError(t, s.VerifyCommentOwner(ctx, first.Id, owner))
	assert.True(t, internal_errors.Is[*internal_errors.AuthorizationError](s.VerifyCommentOwner(ctx, first.Id, other.Id)))
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](s.VerifyCommentOwner(ctx, "comment-x", owner)))

	require.NoError(t, s.DeleteComment(ctx, first.Id))
	require.NoError(t, s.DeleteComment(ctx, first.Id))
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](s.DeleteComment(ctx, "comment-x")))

	comments, err := s.GetCommentsByThreadId(ctx, threadId)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.Id, comments[0].Id, "same timestamp keeps insertion order")
	assert.Equal(t, domain.StatusDeleted, comments[0].Status)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, second.Id, comments[1].Id)
	assert.Equal(t, "johndoe", comments[1].Username)
}

func TestReplyLifecycle(t *testing.T) {
	s, owner, threadId := newSeeded(t)
	ctx := context.Background()
	c, err := s.AddComment(ctx, domain.AddComment{ThreadId: threadId, Content: "c", Owner: owner})
	require.NoError(t, err)

	r, err := s.AddReply(ctx, domain.AddReply{CommentId: c.Id, Content: "r", Owner: owner})
	require.NoError(t, err)
	_, err = s.AddReply(ctx, domain.AddReply{CommentId: "comment-x", Content: "r", Owner: owner})
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))

	assert.NoError(t, s.VerifyAvailableReply(ctx, c.Id, r.Id))
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](s.VerifyAvailableReply(ctx, "comment-x", r.Id)))
	assert.True(t, internal_errors.Is[*internal_errors.AuthorizationError](s.VerifyReplyOwner(ctx, r.Id, "user-x")))

	require.NoError(t, s.DeleteReply(ctx, r.Id))
	got, err := s.GetReplyById(ctx, r.Id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeleted, got.Status)

	byThread, err := s.GetRepliesByThreadId(ctx, threadId)
	require.NoError(t, err)
	require.Len(t, byThread, 1)
	byComment, err := s.GetRepliesByCommentId(ctx, c.Id)
	require.NoError(t, err)
	assert.Equal(t, byThread, byComment)
}

func TestUsers(t *testing.T) {
	s, owner, _ := newSeeded(t)
	ctx := context.Background()

	err := s.VerifyAvailableUsername(ctx, "dicoding")
	assert.True(t, errors.Is(err, internal_errors.ErrUsernameUnavailable))
	_, err = s.AddUser(ctx, domain.RegisterUser{Username: "dicoding", Password: "x"})
	assert.True(t, errors.Is(err, internal_errors.ErrUsernameUnavailable))

	u, err := s.GetUserById(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "dicoding", u.Username)
}

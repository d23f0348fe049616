package pg

import (
	"context"
	"testing"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReply(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	owner := mustAddUser(t, s, "dicoding")
	commentId := mustAddComment(t, s, mustAddThread(t, s, owner), owner, "hi")

	fixed := NewWithDB(s.db, fixedId("77"))
	added, err := fixed.AddReply(ctx, domain.AddReply{CommentId: commentId, Content: "hello back", Owner: owner})
	require.NoError(t, err)
	assert.Equal(t, domain.AddedReply{Id: "reply-77", Content: "hello back", Owner: owner}, added)
	assert.Equal(t, 1, countRows(t, "replies"))

	_, err = s.AddReply(ctx, domain.AddReply{CommentId: "comment-missing", Content: "x", Owner: owner})
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))

	// unknown owner fails on insert; the transaction leaves no row behind
	_, err = s.AddReply(ctx, domain.AddReply{CommentId: commentId, Content: "x", Owner: "user-missing"})
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))
	assert.Equal(t, 1, countRows(t, "replies"))
}

func TestVerifyReply(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	owner := mustAddUser(t, s, "dicoding")
	other := mustAddUser(t, s, "johndoe")
	threadId := mustAddThread(t, s, owner)
	commentId := mustAddComment(t, s, threadId, owner, "hi")
	otherComment := mustAddComment(t, s, threadId, owner, "another")
	replyId := mustAddReply(t, s, commentId, owner, "reply")

	t.Run("available", func(t *testing.T) {
		assert.NoError(t, s.VerifyAvailableReply(ctx, commentId, replyId))
		assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](s.VerifyAvailableReply(ctx, commentId, "reply-missing")))
		assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](s.VerifyAvailableReply(ctx, otherComment, replyId)))
	})

	t.Run("owner", func(t *testing.T) {
		assert.NoError(t, s.VerifyReplyOwner(ctx, replyId, owner))
		assert.True(t, internal_errors.Is[*internal_errors.AuthorizationError](s.VerifyReplyOwner(ctx, replyId, other)))
		assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](s.VerifyReplyOwner(ctx, "reply-missing", owner)))
	})
}

func TestDeleteReply(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	owner := mustAddUser(t, s, "dicoding")
	commentId := mustAddComment(t, s, mustAddThread(t, s, owner), owner, "hi")
	replyId := mustAddReply(t, s, commentId, owner, "reply")

	require.NoError(t, s.DeleteReply(ctx, replyId))
	reply, err := s.GetReplyById(ctx, replyId)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeleted, reply.Status)
	assert.Equal(t, commentId, reply.CommentId)

	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](s.DeleteReply(ctx, "reply-missing")))
	_, err = s.GetReplyById(ctx, "reply-missing")
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))
}

func TestGetReplies(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	dicoding := mustAddUser(t, s, "dicoding")
	johndoe := mustAddUser(t, s, "johndoe")
	threadId := mustAddThread(t, s, dicoding)
	c1 := mustAddComment(t, s, threadId, dicoding, "c1")
	c2 := mustAddComment(t, s, threadId, dicoding, "c2")
	r1 := mustAddReply(t, s, c1, johndoe, "r1")
	r2 := mustAddReply(t, s, c2, dicoding, "r2")
	r3 := mustAddReply(t, s, c1, dicoding, "r3")
	mustAddReply(t, s, mustAddComment(t, s, mustAddThread(t, s, dicoding), dicoding, "x"), dicoding, "elsewhere")

	byComment, err := s.GetRepliesByCommentId(ctx, c1)
	require.NoError(t, err)
	require.Len(t, byComment, 2)
	assert.Equal(t, r1, byComment[0].Id)
	assert.Equal(t, "johndoe", byComment[0].Username)
	assert.Equal(t, r3, byComment[1].Id)

	byThread, err := s.GetRepliesByThreadId(ctx, threadId)
	require.NoError(t, err)
	ids := make([]domain.ReplyId, 0, len(byThread))
	for _, r := range byThread {
		ids = append(ids, r.Id)
	}
	assert.Equal(t, []domain.ReplyId{r1, r2, r3}, ids)
}

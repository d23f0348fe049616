package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReplyUseCase(t *testing.T) {
	payload := func() domain.Payload {
		return domain.Payload{"threadId": "thread-123", "commentId": "comment-123", "content": "a reply", "owner": "user-123"}
	}

	t.Run("verifies the comment in its thread and adds", func(t *testing.T) {
		log := &callLog{}
		comments := &MockCommentRepository{callLog: log, verifyAvailableCommentFunc: func(threadId domain.ThreadId, commentId domain.CommentId) error {
			assert.Equal(t, "thread-123", threadId)
			assert.Equal(t, "comment-123", commentId)
			return nil
		}}
		replies := &MockReplyRepository{callLog: log}

		added, err := NewAddReplyUseCase(comments, replies).Execute(context.Background(), payload())

		require.NoError(t, err)
		assert.Equal(t, domain.AddedReply{Id: "reply-123", Content: "a reply", Owner: "user-123"}, added)
		assert.Equal(t, []string{"VerifyAvailableComment", "AddReply"}, log.Calls())
	})

	t.Run("without thread id the comment check is skipped", func(t *testing.T) {
		log := &callLog{}
		p := payload()
		delete(p, "threadId")

		_, err := NewAddReplyUseCase(&MockCommentRepository{callLog: log}, &MockReplyRepository{callLog: log}).Execute(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, []string{"AddReply"}, log.Calls())
	})

	t.Run("invalid payload", func(t *testing.T) {
		log := &callLog{}
		p := payload()
		p["commentId"] = true

		_, err := NewAddReplyUseCase(&MockCommentRepository{callLog: log}, &MockReplyRepository{callLog: log}).Execute(context.Background(), p)

		assert.Equal(t, "ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION", err.Error())
		assert.Empty(t, log.Calls())
	})

	t.Run("comment outside thread", func(t *testing.T) {
		log := &callLog{}
		comments := &MockCommentRepository{callLog: log, verifyAvailableCommentFunc: func(domain.ThreadId, domain.CommentId) error {
			return internal_errors.NotFound("comment not found")
		}}

		_, err := NewAddReplyUseCase(comments, &MockReplyRepository{callLog: log}).Execute(context.Background(), payload())

		assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))
		assert.NotContains(t, log.Calls(), "AddReply")
	})
}

func TestDeleteReplyUseCase(t *testing.T) {
	payload := DeleteReplyPayload{ThreadId: "thread-123", CommentId: "comment-123", ReplyId: "reply-123", Owner: "user-123"}

	t.Run("runs the full pipeline", func(t *testing.T) {
		log := &callLog{}
		replies := &MockReplyRepository{
			callLog: log,
			verifyAvailableReplyFunc: func(commentId domain.CommentId, replyId domain.ReplyId) error {
				assert.Equal(t, "comment-123", commentId)
				assert.Equal(t, "reply-123", replyId)
				return nil
			},
			verifyReplyOwnerFunc: func(replyId domain.ReplyId, owner domain.UserId) error {
				assert.Equal(t, "user-123", owner)
				return nil
			},
		}

		require.NoError(t, NewDeleteReplyUseCase(&MockCommentRepository{callLog: log}, replies).Execute(context.Background(), payload))
		assert.Equal(t, []string{"VerifyAvailableComment", "VerifyAvailableReply", "VerifyReplyOwner", "DeleteReply"}, log.Calls())
	})

	tests := []struct {
		name          string
		comments      func(*callLog) *MockCommentRepository
		replies       func(*callLog) *MockReplyRepository
		expectedCalls []string
		check         func(error) bool
	}{
		{
			name: "missing comment",
			comments: func(l *callLog) *MockCommentRepository {
				return &MockCommentRepository{callLog: l, verifyAvailableCommentFunc: func(domain.ThreadId, domain.CommentId) error {
					return internal_errors.NotFound("comment not found")
				}}
			},
			replies:       func(l *callLog) *MockReplyRepository { return &MockReplyRepository{callLog: l} },
			expectedCalls: []string{"VerifyAvailableComment"},
			check:         internal_errors.Is[*internal_errors.NotFoundError],
		},
		{
			name:     "missing reply",
			comments: func(l *callLog) *MockCommentRepository { return &MockCommentRepository{callLog: l} },
			replies: func(l *callLog) *MockReplyRepository {
				return &MockReplyRepository{callLog: l, verifyAvailableReplyFunc: func(domain.CommentId, domain.ReplyId) error {
					return internal_errors.NotFound("reply not found")
				}}
			},
			expectedCalls: []string{"VerifyAvailableComment", "VerifyAvailableReply"},
			check:         internal_errors.Is[*internal_errors.NotFoundError],
		},
		{
			name:     "not the owner",
			comments: func(l *callLog) *MockCommentRepository { return &MockCommentRepository{callLog: l} },
			replies: func(l *callLog) *MockReplyRepository {
				return &MockReplyRepository{callLog: l, verifyReplyOwnerFunc: func(domain.ReplyId, domain.UserId) error {
					return internal_errors.Forbidden("not yours")
				}}
			},
			expectedCalls: []string{"VerifyAvailableComment", "VerifyAvailableReply", "VerifyReplyOwner"},
			check:         internal_errors.Is[*internal_errors.AuthorizationError],
		},
		{
			name:     "delete fails",
			comments: func(l *callLog) *MockCommentRepository { return &MockCommentRepository{callLog: l} },
			replies: func(l *callLog) *MockReplyRepository {
				return &MockReplyRepository{callLog: l, deleteReplyFunc: func(domain.ReplyId) error {
					return errors.New("db down")
				}}
			},
			expectedCalls: []string{"VerifyAvailableComment", "VerifyAvailableReply", "VerifyReplyOwner", "DeleteReply"},
			check:         func(err error) bool { return err != nil && err.Error() == "db down" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &callLog{}
			err := NewDeleteReplyUseCase(tt.comments(log), tt.replies(log)).Execute(context.Background(), payload)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
			assert.Equal(t, tt.expectedCalls, log.Calls())
		})
	}
}

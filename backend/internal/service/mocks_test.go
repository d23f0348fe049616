package service

import (
	"context"
	"sync"

	"github.com/forumhub/forum-api/shared/domain"
)

// --- Mocks ---

// callLog records repository calls in order so tests can assert on the
// pipeline and on the absence of mutations.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) record(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type MockThreadRepository struct {
	*callLog
	addThreadFunc             func(thread domain.AddThread) (domain.AddedThread, error)
	verifyAvailableThreadFunc func(threadId domain.ThreadId) error
	getThreadByIdFunc         func(threadId domain.ThreadId) (domain.DetailThread, error)
}

func (m *MockThreadRepository) AddThread(_ context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	m.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadRepository) VerifyAvailableThread(_ context.Context, threadId domain.ThreadId) error {
	m.record("VerifyAvailableThread")
	if m.verifyAvailableThreadFunc != nil {
		return m.verifyAvailableThreadFunc(threadId)
	}
	return nil
}

func (m *MockThreadRepository) GetThreadById(_ context.Context, threadId domain.ThreadId) (domain.DetailThread, error) {
	m.record("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(threadId)
	}
	return domain.DetailThread{}, nil
}

type MockCommentRepository struct {
	*callLog
	addCommentFunc             func(comment domain.AddComment) (domain.AddedComment, error)
	verifyAvailableCommentFunc func(threadId domain.ThreadId, commentId domain.CommentId) error
	verifyCommentOwnerFunc     func(commentId domain.CommentId, owner domain.UserId) error
	getCommentByIdFunc         func(commentId domain.CommentId) (domain.DetailComment, error)
	getCommentsByThreadIdFunc  func(threadId domain.ThreadId) ([]domain.DetailComment, error)
	deleteCommentFunc          func(commentId domain.CommentId) error
}

func (m *MockCommentRepository) AddComment(_ context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	m.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentRepository) VerifyAvailableComment(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	m.record("VerifyAvailableComment")
	if m.verifyAvailableCommentFunc != nil {
		return m.verifyAvailableCommentFunc(threadId, commentId)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(_ context.Context, commentId domain.CommentId, owner domain.UserId) error {
	m.record("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(commentId, owner)
	}
	return nil
}

func (m *MockCommentRepository) GetCommentById(_ context.Context, commentId domain.CommentId) (domain.DetailComment, error) {
	m.record("GetCommentById")
	if m.getCommentByIdFunc != nil {
		return m.getCommentByIdFunc(commentId)
	}
	return domain.DetailComment{}, nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.DetailComment, error) {
	m.record("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return []domain.DetailComment{}, nil
}

func (m *MockCommentRepository) DeleteComment(_ context.Context, commentId domain.CommentId) error {
	m.record("DeleteComment")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(commentId)
	}
	return nil
}

type MockReplyRepository struct {
	*callLog
	addReplyFunc              func(reply domain.AddReply) (domain.AddedReply, error)
	verifyAvailableReplyFunc  func(commentId domain.CommentId, replyId domain.ReplyId) error
	verifyReplyOwnerFunc      func(replyId domain.ReplyId, owner domain.UserId) error
	getRepliesByThreadIdFunc  func(threadId domain.ThreadId) ([]domain.DetailReply, error)
	getRepliesByCommentIdFunc func(commentId domain.CommentId) ([]domain.DetailReply, error)
	deleteReplyFunc           func(replyId domain.ReplyId) error
}

func (m *MockReplyRepository) AddReply(_ context.Context, reply domain.AddReply) (domain.AddedReply, error) {
	m.record("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply)
	}
	return domain.AddedReply{Id: "reply-123", Content: reply.Content, Owner: reply.Owner}, nil
}

func (m *MockReplyRepository) VerifyAvailableReply(_ context.Context, commentId domain.CommentId, replyId domain.ReplyId) error {
	m.record("VerifyAvailableReply")
	if m.verifyAvailableReplyFunc != nil {
		return m.verifyAvailableReplyFunc(commentId, replyId)
	}
	return nil
}

func (m *MockReplyRepository) VerifyReplyOwner(_ context.Context, replyId domain.ReplyId, owner domain.UserId) error {
	m.record("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(replyId, owner)
	}
	return nil
}

func (m *MockReplyRepository) GetReplyById(_ context.Context, replyId domain.ReplyId) (domain.DetailReply, error) {
	m.record("GetReplyById")
	return domain.DetailReply{Id: replyId}, nil
}

func (m *MockReplyRepository) GetRepliesByCommentId(_ context.Context, commentId domain.CommentId) ([]domain.DetailReply, error) {
	m.record("GetRepliesByCommentId")
	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(commentId)
	}
	return []domain.DetailReply{}, nil
}

func (m *MockReplyRepository) GetRepliesByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.DetailReply, error) {
	m.record("GetRepliesByThreadId")
	if m.getRepliesByThreadIdFunc != nil {
		return m.getRepliesByThreadIdFunc(threadId)
	}
	return []domain.DetailReply{}, nil
}

func (m *MockReplyRepository) DeleteReply(_ context.Context, replyId domain.ReplyId) error {
	m.record("DeleteReply")
	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(replyId)
	}
	return nil
}

type MockUserRepository struct {
	*callLog
	verifyAvailableUsernameFunc func(username domain.Username) error
	addUserFunc                 func(user domain.RegisterUser) (domain.RegisteredUser, error)
}

func (m *MockUserRepository) VerifyAvailableUsername(_ context.Context, username domain.Username) error {
	m.record("VerifyAvailableUsername")
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserRepository) AddUser(_ context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	m.record("AddUser")
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username}, nil
}

func (m *MockUserRepository) GetUserById(_ context.Context, userId domain.UserId) (domain.RegisteredUser, error) {
	m.record("GetUserById")
	return domain.RegisteredUser{Id: userId}, nil
}

// fakeRenderer wraps text so tests can see it was rendered.
type fakeRenderer struct{}

func (fakeRenderer) Render(text string) string { return "<p>" + text + "</p>" }

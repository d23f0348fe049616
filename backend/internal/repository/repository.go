// Package repository declares the persistence ports the use cases depend on.
// Adapters (storage/pg, storage/memory) implement every method; the compiler
// checks it through interface assertions in each adapter package.
package repository

import (
	"context"

	"github.com/forumhub/forum-api/shared/domain"
)

type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error)
	// VerifyAvailableThread returns a NotFoundError if the thread does not exist.
	VerifyAvailableThread(ctx context.Context, threadId domain.ThreadId) error
	GetThreadById(ctx context.Context, threadId domain.ThreadId) (domain.DetailThread, error)
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error)
	// VerifyAvailableComment returns a NotFoundError unless the comment exists under threadId.
	VerifyAvailableComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error
	// VerifyCommentOwner returns a NotFoundError for a missing comment and an
	// AuthorizationError when owner differs from the stored one.
	VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	GetCommentById(ctx context.Context, commentId domain.CommentId) (domain.DetailComment, error)
	// GetCommentsByThreadId returns comments oldest first, deleted ones included.
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.DetailComment, error)
	// DeleteComment flips the soft-delete flag; the row stays queryable.
	DeleteComment(ctx context.Context, commentId domain.CommentId) error
}

type ReplyRepository interface {
	AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error)
	VerifyAvailableReply(ctx context.Context, commentId domain.CommentId, replyId domain.ReplyId) error
	VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, owner domain.UserId) error
	GetReplyById(ctx context.Context, replyId domain.ReplyId) (domain.DetailReply, error)
	GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.DetailReply, error)
	// GetRepliesByThreadId returns every reply under the thread's comments, oldest first.
	GetRepliesByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.DetailReply, error)
	DeleteReply(ctx context.Context, replyId domain.ReplyId) error
}

type UserRepository interface {
	// VerifyAvailableUsername returns a ValidationError if the username is taken.
	VerifyAvailableUsername(ctx context.Context, username domain.Username) error
	// AddUser stores an already hashed password.
	AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
	GetUserById(ctx context.Context, userId domain.UserId) (domain.RegisteredUser, error)
}

// IdGenerator produces the random part of a new row id.
type IdGenerator func() string

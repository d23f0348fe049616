package service

import (
	"context"

	"github.com/forumhub/forum-api/backend/internal/repository"
	"github.com/forumhub/forum-api/shared/domain"
)

type AddReplyUseCase struct {
	comments repository.CommentRepository
	replies  repository.ReplyRepository
}

func NewAddReplyUseCase(comments repository.CommentRepository, replies repository.ReplyRepository) *AddReplyUseCase {
	return &AddReplyUseCase{comments: comments, replies: replies}
}

func (u *AddReplyUseCase) Execute(ctx context.Context, payload domain.Payload) (_ domain.AddedReply, err error) {
	defer observe("add_reply", &err)

	reply, err := domain.NewAddReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, contextTimeout)
	defer cancel()

	// Without a thread id the adapter's foreign key still rejects unknown comments.
	if reply.ThreadId != "" {
		if err = u.comments.VerifyAvailableComment(ctx, reply.ThreadId, reply.CommentId); err != nil {
			return domain.AddedReply{}, err
		}
	}
	added, err := u.replies.AddReply(ctx, reply)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err = added.Validate(); err != nil {
		return domain.AddedReply{}, err
	}
	return added, nil
}

type DeleteReplyPayload struct {
	ThreadId  domain.ThreadId
	CommentId domain.CommentId
	ReplyId   domain.ReplyId
	Owner     domain.UserId
}

type DeleteReplyUseCase struct {
	comments repository.CommentRepository
	replies  repository.ReplyRepository
}

func NewDeleteReplyUseCase(comments repository.CommentRepository, replies repository.ReplyRepository) *DeleteReplyUseCase {
	return &DeleteReplyUseCase{comments: comments, replies: replies}
}

func (u *DeleteReplyUseCase) Execute(ctx context.Context, p DeleteReplyPayload) (err error) {
	defer observe("delete_reply", &err)

	ctx, cancel := context.WithTimeout(ctx, contextTimeout)
	defer cancel()

	if err = u.comments.VerifyAvailableComment(ctx, p.ThreadId, p.CommentId); err != nil {
		return err
	}
	if err = u.replies.VerifyAvailableReply(ctx, p.CommentId, p.ReplyId); err != nil {
		return err
	}
	if err = u.replies.VerifyReplyOwner(ctx, p.ReplyId, p.Owner); err != nil {
		return err
	}
	return u.replies.DeleteReply(ctx, p.ReplyId)
}

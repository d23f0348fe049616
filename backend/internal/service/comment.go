package service

import (
	"context"

	"github.com/forumhub/forum-api/backend/internal/repository"
	"github.com/forumhub/forum-api/shared/domain"
)

type AddCommentUseCase struct {
	threads  repository.ThreadRepository
	comments repository.CommentRepository
}

func NewAddCommentUseCase(threads repository.ThreadRepository, comments repository.CommentRepository) *AddCommentUseCase {
	return &AddCommentUseCase{threads: threads, comments: comments}
}

func (u *AddCommentUseCase) Execute(ctx context.Context, payload domain.Payload) (_ domain.AddedComment, err error) {
	defer observe("add_comment", &err)

	comment, err := domain.NewAddComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, contextTimeout)
	defer cancel()

	if err = u.threads.VerifyAvailableThread(ctx, comment.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}
	added, err := u.comments.AddComment(ctx, comment)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err = added.Validate(); err != nil {
		return domain.AddedComment{}, err
	}
	return added, nil
}

type DeleteCommentPayload struct {
	ThreadId  domain.ThreadId
	CommentId domain.CommentId
	Owner     domain.UserId
}

type DeleteCommentUseCase struct {
	comments repository.CommentRepository
}

func NewDeleteCommentUseCase(comments repository.CommentRepository) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{comments: comments}
}

// Execute runs availability, ownership, delete. Nothing is written unless both checks pass.
func (u *DeleteCommentUseCase) Execute(ctx context.Context, p DeleteCommentPayload) (err error) {
	defer observe("delete_comment", &err)

	ctx, cancel := context.WithTimeout(ctx, contextTimeout)
	defer cancel()

	if err = u.comments.VerifyAvailableComment(ctx, p.ThreadId, p.CommentId); err != nil {
		return err
	}
	if err = u.comments.VerifyCommentOwner(ctx, p.CommentId, p.Owner); err != nil {
		return err
	}
	return u.comments.DeleteComment(ctx, p.CommentId)
}

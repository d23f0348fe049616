package service

import (
	"context"
	"fmt"

	"github.com/forumhub/forum-api/backend/internal/repository"
	"github.com/forumhub/forum-api/shared/domain"
)

type AddThreadUseCase struct {
	threads repository.ThreadRepository
}

func NewAddThreadUseCase(threads repository.ThreadRepository) *AddThreadUseCase {
	return &AddThreadUseCase{threads: threads}
}

func (u *AddThreadUseCase) Execute(ctx context.Context, payload domain.Payload) (_ domain.AddedThread, err error) {
	defer observe("add_thread", &err)

	thread, err := domain.NewAddThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, contextTimeout)
	defer cancel()

	added, err := u.threads.AddThread(ctx, thread)
	if err != nil {
		return domain.AddedThread{}, err
	}
	if err = added.Validate(); err != nil {
		return domain.AddedThread{}, err
	}
	return added, nil
}

// GetThreadDetailUseCase assembles a thread with its comments and their
// replies. Deleted comments and replies keep their place with masked content.
type GetThreadDetailUseCase struct {
	threads  repository.ThreadRepository
	comments repository.CommentRepository
	replies  repository.ReplyRepository
	renderer Renderer
}

func NewGetThreadDetailUseCase(threads repository.ThreadRepository, comments repository.CommentRepository, replies repository.ReplyRepository, renderer Renderer) *GetThreadDetailUseCase {
	return &GetThreadDetailUseCase{threads: threads, comments: comments, replies: replies, renderer: renderer}
}

func (u *GetThreadDetailUseCase) Execute(ctx context.Context, threadId domain.ThreadId) (_ domain.DetailThread, err error) {
	defer observe("get_thread_detail", &err)

	ctx, cancel := context.WithTimeout(ctx, contextTimeout)
	defer cancel()

	thread, err := u.threads.GetThreadById(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}
	comments, err := u.comments.GetCommentsByThreadId(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, fmt.Errorf("failed to load comments: %w", err)
	}
	replies, err := u.replies.GetRepliesByThreadId(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, fmt.Errorf("failed to load replies: %w", err)
	}

	byComment := make(map[domain.CommentId][]domain.DetailReply, len(comments))
	for _, r := range replies {
		r = r.Masked()
		r.ContentHTML = u.render(r.Content)
		byComment[r.CommentId] = append(byComment[r.CommentId], r)
	}

	thread.BodyHTML = u.render(thread.Body)
	thread.Comments = make([]domain.DetailComment, 0, len(comments))
	for _, c := range comments {
		c = c.Masked()
		c.ContentHTML = u.render(c.Content)
		c.Replies = byComment[c.Id]
		if c.Replies == nil {
			c.Replies = []domain.DetailReply{}
		}
		thread.Comments = append(thread.Comments, c)
	}

	if err = thread.Validate(); err != nil {
		return domain.DetailThread{}, err
	}
	return thread, nil
}

func (u *GetThreadDetailUseCase) render(text string) string {
	if u.renderer == nil {
		return ""
	}
	return u.renderer.Render(text)
}

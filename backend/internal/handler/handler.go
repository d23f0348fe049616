package handler

import (
	"context"

	"github.com/forumhub/forum-api/backend/internal/service"
	"github.com/forumhub/forum-api/shared/domain"
)

type AddThreadUseCase interface {
	Execute(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
}

type GetThreadDetailUseCase interface {
	Execute(ctx context.Context, threadId domain.ThreadId) (domain.DetailThread, error)
}

type AddCommentUseCase interface {
	Execute(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
}

type DeleteCommentUseCase interface {
	Execute(ctx context.Context, payload service.DeleteCommentPayload) error
}

type AddReplyUseCase interface {
	Execute(ctx context.Context, payload domain.Payload) (domain.AddedReply, error)
}

type DeleteReplyUseCase interface {
	Execute(ctx context.Context, payload service.DeleteReplyPayload) error
}

type RegisterUserUseCase interface {
	Execute(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type UseCases struct {
	AddThread       AddThreadUseCase
	GetThreadDetail GetThreadDetailUseCase
	AddComment      AddCommentUseCase
	DeleteComment   DeleteCommentUseCase
	AddReply        AddReplyUseCase
	DeleteReply     DeleteReplyUseCase
	RegisterUser    RegisterUserUseCase
}

type Handler struct {
	uc     UseCases
	health HealthChecker
}

func New(uc UseCases, health HealthChecker) *Handler {
	return &Handler{uc: uc, health: health}
}

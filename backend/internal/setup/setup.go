package setup

import (
	"context"

	"github.com/forumhub/forum-api/backend/internal/handler"
	"github.com/forumhub/forum-api/backend/internal/markdown"
	"github.com/forumhub/forum-api/backend/internal/repository"
	"github.com/forumhub/forum-api/backend/internal/service"
	"github.com/forumhub/forum-api/backend/internal/storage/memory"
	"github.com/forumhub/forum-api/backend/internal/storage/pg"
	"github.com/forumhub/forum-api/shared/config"
	"github.com/forumhub/forum-api/shared/jwt"
	"github.com/forumhub/forum-api/shared/logger"
	"github.com/forumhub/forum-api/shared/middleware"
)

// Store is what both storage adapters provide.
type Store interface {
	repository.ThreadRepository
	repository.CommentRepository
	repository.ReplyRepository
	repository.UserRepository
	Ping(ctx context.Context) error
	Cleanup() error
}

var (
	_ Store = (*pg.Storage)(nil)
	_ Store = (*memory.Storage)(nil)
)

type Dependencies struct {
	Config         *config.Config
	Storage        Store
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies connects the configured storage and wires the use cases.
// Without a pg section the in-memory storage is used.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	var store Store
	if cfg.Private.Pg != nil {
		storage, err := pg.New(ctx, cfg.Private.Pg)
		if err != nil {
			return nil, err
		}
		store = storage
	} else {
		logger.Log.Warn("no pg config, using in-memory storage; data is lost on restart")
		store = memory.New()
	}
	return Wire(cfg, store), nil
}

func Wire(cfg *config.Config, store Store) *Dependencies {
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	renderer := markdown.New()

	uc := handler.UseCases{
		AddThread:       service.NewAddThreadUseCase(store),
		GetThreadDetail: service.NewGetThreadDetailUseCase(store, store, store, renderer),
		AddComment:      service.NewAddCommentUseCase(store, store),
		DeleteComment:   service.NewDeleteCommentUseCase(store),
		AddReply:        service.NewAddReplyUseCase(store, store),
		DeleteReply:     service.NewDeleteReplyUseCase(store, store),
		RegisterUser:    service.NewRegisterUserUseCase(store),
	}

	return &Dependencies{
		Config:         cfg,
		Storage:        store,
		Handler:        handler.New(uc, store),
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/forumhub/forum-api/backend/internal/repository"
	"github.com/forumhub/forum-api/shared/domain"
	"github.com/forumhub/forum-api/shared/utils"
)

type RegisterUserUseCase struct {
	users repository.UserRepository
	hash  func(password string) (string, error)
}

func NewRegisterUserUseCase(users repository.UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{users: users, hash: utils.HashPassword}
}

func (u *RegisterUserUseCase) Execute(ctx context.Context, payload domain.Payload) (_ domain.RegisteredUser, err error) {
	defer observe("register_user", &err)

	user, err := domain.NewRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, contextTimeout)
	defer cancel()

	if err = u.users.VerifyAvailableUsername(ctx, user.Username); err != nil {
		return domain.RegisteredUser{}, err
	}
	hashed, err := u.hash(user.Password)
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed
	return u.users.AddUser(ctx, user)
}

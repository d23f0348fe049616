package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
)

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return internal_errors.Invalid("REGISTER_USER", internal_errors.ErrUsernameUnavailable)
	}
	return nil
}

func (s *Storage) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	var added domain.RegisteredUser
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, password)
		VALUES ($1, $2, $3)
		RETURNING id, username
	`, s.id("user"), user.Username, user.Password).Scan(&added.Id, &added.Username)
	if err != nil {
		return domain.RegisteredUser{}, mapError("failed to insert user", err)
	}
	return added, nil
}

func (s *Storage) GetUserById(ctx context.Context, userId domain.UserId) (domain.RegisteredUser, error) {
	var user domain.RegisteredUser
	err := s.db.QueryRowContext(ctx, "SELECT id, username FROM users WHERE id = $1", userId).Scan(&user.Id, &user.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RegisteredUser{}, internal_errors.NotFound("user not found")
	}
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO threads (id, title, body, date, owner)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, owner
	`, s.id("thread"), thread.Title, thread.Body, s.now(), thread.Owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, mapError("failed to insert thread", err)
	}
	return added, nil
}

func (s *Storage) VerifyAvailableThread(ctx context.Context, threadId domain.ThreadId) error {
	return verifyExists(ctx, s.db, "thread not found",
		"SELECT 1 FROM threads WHERE id = $1", threadId)
}

// GetThreadById returns the thread without comments; the use case fills them in.
func (s *Storage) GetThreadById(ctx context.Context, threadId domain.ThreadId) (domain.DetailThread, error) {
	var thread domain.DetailThread
	err := s.db.QueryRowContext(ctx, `
		SELECT t.id, t.title, t.body, t.date, u.username
		FROM threads t
		JOIN users u ON u.id = t.owner
		WHERE t.id = $1
	`, threadId).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DetailThread{}, internal_errors.NotFound("thread not found")
	}
	if err != nil {
		return domain.DetailThread{}, fmt.Errorf("failed to get thread: %w", err)
	}
	thread.Comments = []domain.DetailComment{}
	return thread, nil
}

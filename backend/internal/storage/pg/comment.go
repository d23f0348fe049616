package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
)

const selectComment = `
	SELECT c.id, c.thread_id, c.owner, u.username, c.date, c.content, c.is_deleted
	FROM comments c
	JOIN users u ON u.id = c.owner
`

func (s *Storage) AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (id, thread_id, owner, content, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, content, owner
	`, s.id("comment"), comment.ThreadId, comment.Owner, comment.Content, s.now()).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, mapError("failed to insert comment", err)
	}
	return added, nil
}

// VerifyAvailableComment matches deleted comments too: a deleted comment can
// still be targeted by an idempotent delete.
func (s *Storage) VerifyAvailableComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	return verifyExists(ctx, s.db, "comment not found",
		"SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2", commentId, threadId)
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	return verifyOwner(ctx, s.db, "comment not found", "you are not the owner of this comment",
		"SELECT owner FROM comments WHERE id = $1", commentId, owner)
}

func (s *Storage) GetCommentById(ctx context.Context, commentId domain.CommentId) (domain.DetailComment, error) {
	row := s.db.QueryRowContext(ctx, selectComment+" WHERE c.id = $1", commentId)
	comment, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DetailComment{}, internal_errors.NotFound("comment not found")
	}
	if err != nil {
		return domain.DetailComment{}, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.DetailComment, error) {
	rows, err := s.db.QueryContext(ctx, selectComment+" WHERE c.thread_id = $1 ORDER BY c.date ASC, c.id ASC", threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.DetailComment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) DeleteComment(ctx context.Context, commentId domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET is_deleted = TRUE WHERE id = $1", commentId)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return requireAffected(result, "comment not found")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanComment(row scanner) (domain.DetailComment, error) {
	var c domain.DetailComment
	var deleted bool
	if err := row.Scan(&c.Id, &c.ThreadId, &c.Owner, &c.Username, &c.Date, &c.Content, &deleted); err != nil {
		return domain.DetailComment{}, err
	}
	c.Status = domain.StatusFromDeleted(deleted)
	c.Replies = []domain.DetailReply{}
	return c, nil
}

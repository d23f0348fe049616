package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
	sharedpg "github.com/forumhub/forum-api/shared/storage/pg"
)

const selectReply = `
	SELECT r.id, r.comment_id, r.owner, u.username, r.date, r.content, r.is_deleted
	FROM replies r
	JOIN users u ON u.id = r.owner
`

// AddReply locks the parent comment row and inserts the reply in one transaction.
func (s *Storage) AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error) {
	var added domain.AddedReply
	err := sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := verifyExists(ctx, tx, "comment not found",
			"SELECT 1 FROM comments WHERE id = $1 FOR SHARE", reply.CommentId); err != nil {
			return err
		}
		err := tx.QueryRowContext(ctx, `
			INSERT INTO replies (id, comment_id, owner, content, date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, content, owner
		`, s.id("reply"), reply.CommentId, reply.Owner, reply.Content, s.now()).Scan(&added.Id, &added.Content, &added.Owner)
		if err != nil {
			return mapError("failed to insert reply", err)
		}
		return nil
	})
	if err != nil {
		return domain.AddedReply{}, err
	}
	return added, nil
}

func (s *Storage) VerifyAvailableReply(ctx context.Context, commentId domain.CommentId, replyId domain.ReplyId) error {
	return verifyExists(ctx, s.db, "reply not found",
		"SELECT 1 FROM replies WHERE id = $1 AND comment_id = $2", replyId, commentId)
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, owner domain.UserId) error {
	return verifyOwner(ctx, s.db, "reply not found", "you are not the owner of this reply",
		"SELECT owner FROM replies WHERE id = $1", replyId, owner)
}

func (s *Storage) GetReplyById(ctx context.Context, replyId domain.ReplyId) (domain.DetailReply, error) {
	reply, err := scanReply(s.db.QueryRowContext(ctx, selectReply+" WHERE r.id = $1", replyId))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DetailReply{}, internal_errors.NotFound("reply not found")
	}
	if err != nil {
		return domain.DetailReply{}, fmt.Errorf("failed to get reply: %w", err)
	}
	return reply, nil
}

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.DetailReply, error) {
	return s.queryReplies(ctx, selectReply+" WHERE r.comment_id = $1 ORDER BY r.date ASC, r.id ASC", commentId)
}

func (s *Storage) GetRepliesByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.DetailReply, error) {
	return s.queryReplies(ctx, selectReply+`
		JOIN comments c ON c.id = r.comment_id
		WHERE c.thread_id = $1
		ORDER BY r.date ASC, r.id ASC`, threadId)
}

func (s *Storage) queryReplies(ctx context.Context, query string, arg any) ([]domain.DetailReply, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.DetailReply{}
	for rows.Next() {
		reply, err := scanReply(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}
	return replies, nil
}

func (s *Storage) DeleteReply(ctx context.Context, replyId domain.ReplyId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE replies SET is_deleted = TRUE WHERE id = $1", replyId)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	return requireAffected(result, "reply not found")
}

func scanReply(row scanner) (domain.DetailReply, error) {
	var r domain.DetailReply
	var deleted bool
	if err := row.Scan(&r.Id, &r.CommentId, &r.Owner, &r.Username, &r.Date, &r.Content, &deleted); err != nil {
		return domain.DetailReply{}, err
	}
	r.Status = domain.StatusFromDeleted(deleted)
	return r, nil
}

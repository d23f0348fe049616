// Package pg implements the repository ports on PostgreSQL through
// database/sql and lib/pq. A single Storage serves threads, comments,
// replies and users.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/forumhub/forum-api/backend/internal/repository"
	"github.com/forumhub/forum-api/shared/config"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
	"github.com/forumhub/forum-api/shared/logger"
	sharedpg "github.com/forumhub/forum-api/shared/storage/pg"
	"github.com/forumhub/forum-api/shared/utils"
	"github.com/lib/pq"
)

var (
	_ repository.ThreadRepository  = (*Storage)(nil)
	_ repository.CommentRepository = (*Storage)(nil)
	_ repository.ReplyRepository   = (*Storage)(nil)
	_ repository.UserRepository    = (*Storage)(nil)
)

type Storage struct {
	db    *sql.DB
	newId repository.IdGenerator
	now   func() time.Time
}

type Option func(*Storage)

// WithIdGenerator replaces the random part of generated ids.
func WithIdGenerator(gen repository.IdGenerator) Option {
	return func(s *Storage) { s.newId = gen }
}

func WithClock(now func() time.Time) Option {
	return func(s *Storage) { s.now = now }
}

// New connects to the configured database and applies migrations.
func New(ctx context.Context, cfg *config.Pg, opts ...Option) (*Storage, error) {
	logger.Log.Info("connecting to postgres", "host", cfg.Host, "dbname", cfg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return NewWithDB(db, opts...), nil
}

// NewWithDB wraps an already migrated pool.
func NewWithDB(db *sql.DB, opts ...Option) *Storage {
	s := &Storage{db: db, newId: utils.NewId, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) id(prefix string) string {
	return prefix + "-" + s.newId()
}

// Postgres error codes handled by mapError.
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// mapError turns constraint violations into domain errors. Other errors are
// wrapped with op for context.
func mapError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case foreignKeyViolation:
			switch pqErr.Constraint {
			case "comments_thread_id_fkey":
				return internal_errors.NotFound("thread not found")
			case "replies_comment_id_fkey":
				return internal_errors.NotFound("comment not found")
			default:
				return internal_errors.NotFound("user not found")
			}
		case uniqueViolation:
			if pqErr.Constraint == "users_username_key" {
				return internal_errors.Invalid("REGISTER_USER", internal_errors.ErrUsernameUnavailable)
			}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireAffected reports a NotFoundError when an UPDATE touched no row.
func requireAffected(result sql.Result, notFound string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return internal_errors.NotFound(notFound)
	}
	return nil
}

// verifyExists runs a SELECT 1 style query and reports a NotFoundError for no rows.
func verifyExists(ctx context.Context, q sharedpg.Querier, notFound, query string, args ...any) error {
	var one int
	err := q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.NotFound(notFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}
	return nil
}

// verifyOwner loads the owner column of one row and compares it.
func verifyOwner(ctx context.Context, q sharedpg.Querier, notFound, forbidden, query, id, owner string) error {
	var stored string
	err := q.QueryRowContext(ctx, query, id).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.NotFound(notFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load owner: %w", err)
	}
	if stored != owner {
		return internal_errors.Forbidden(forbidden)
	}
	return nil
}

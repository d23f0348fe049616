// Package memory is an in-process implementation of the repository ports.
// It backs handler tests and local runs without a database; error semantics
// match the pg adapter.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/forumhub/forum-api/backend/internal/repository"
	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
	"github.com/forumhub/forum-api/shared/utils"
)

var (
	_ repository.ThreadRepository  = (*Storage)(nil)
	_ repository.CommentRepository = (*Storage)(nil)
	_ repository.ReplyRepository   = (*Storage)(nil)
	_ repository.UserRepository    = (*Storage)(nil)
)

type user struct {
	id       domain.UserId
	username domain.Username
	password string
}

type thread struct {
	id    domain.ThreadId
	title domain.ThreadTitle
	body  string
	date  time.Time
	owner domain.UserId
}

type comment struct {
	seq      int
	id       domain.CommentId
	threadId domain.ThreadId
	owner    domain.UserId
	content  string
	date     time.Time
	deleted  bool
}

type reply struct {
	seq       int
	id        domain.ReplyId
	commentId domain.CommentId
	owner     domain.UserId
	content   string
	date      time.Time
	deleted   bool
}

type Storage struct {
	mu       sync.RWMutex
	users    map[domain.UserId]*user
	threads  map[domain.ThreadId]*thread
	comments map[domain.CommentId]*comment
	replies  map[domain.ReplyId]*reply
	seq      int

	newId repository.IdGenerator
	now   func() time.Time
}

type Option func(*Storage)

func WithIdGenerator(gen repository.IdGenerator) Option {
	return func(s *Storage) { s.newId = gen }
}

func WithClock(now func() time.Time) Option {
	return func(s *Storage) { s.now = now }
}

func New(opts ...Option) *Storage {
	s := &Storage{
		users:    make(map[domain.UserId]*user),
		threads:  make(map[domain.ThreadId]*thread),
		comments: make(map[domain.CommentId]*comment),
		replies:  make(map[domain.ReplyId]*reply),
		newId:    utils.NewId,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) Ping(context.Context) error { return nil }

func (s *Storage) Cleanup() error { return nil }

// nextSeq orders rows created within the same clock tick. Callers hold mu.
func (s *Storage) nextSeq() int {
	s.seq++
	return s.seq
}

// Threads

func (s *Storage) AddThread(_ context.Context, in domain.AddThread) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[in.Owner]; !ok {
		return domain.AddedThread{}, internal_errors.NotFound("user not found")
	}
	t := &thread{id: "thread-" + s.newId(), title: in.Title, body: in.Body, date: s.now(), owner: in.Owner}
	s.threads[t.id] = t
	return domain.AddedThread{Id: t.id, Title: t.title, Owner: t.owner}, nil
}

func (s *Storage) VerifyAvailableThread(_ context.Context, threadId domain.ThreadId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.threads[threadId]; !ok {
		return internal_errors.NotFound("thread not found")
	}
	return nil
}

func (s *Storage) GetThreadById(_ context.Context, threadId domain.ThreadId) (domain.DetailThread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.threads[threadId]
	if !ok {
		return domain.DetailThread{}, internal_errors.NotFound("thread not found")
	}
	return domain.DetailThread{
		Id:       t.id,
		Title:    t.title,
		Body:     t.body,
		Date:     t.date,
		Username: s.username(t.owner),
		Comments: []domain.DetailComment{},
	}, nil
}

func (s *Storage) username(id domain.UserId) domain.Username {
	if u, ok := s.users[id]; ok {
		return u.username
	}
	return ""
}

// Comments

func (s *Storage) AddComment(_ context.Context, in domain.AddComment) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[in.ThreadId]; !ok {
		return domain.AddedComment{}, internal_errors.NotFound("thread not found")
	}
	if _, ok := s.users[in.Owner]; !ok {
		return domain.AddedComment{}, internal_errors.NotFound("user not found")
	}
	c := &comment{
		seq:      s.nextSeq(),
		id:       "comment-" + s.newId(),
		threadId: in.ThreadId,
		owner:    in.Owner,
		content:  in.Content,
		date:     s.now(),
	}
	s.comments[c.id] = c
	return domain.AddedComment{Id: c.id, Content: c.content, Owner: c.owner}, nil
}

func (s *Storage) VerifyAvailableComment(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.comments[commentId]; !ok || c.threadId != threadId {
		return internal_errors.NotFound("comment not found")
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(_ context.Context, commentId domain.CommentId, owner domain.UserId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[commentId]
	if !ok {
		return internal_errors.NotFound("comment not found")
	}
	if c.owner != owner {
		return internal_errors.Forbidden("you are not the owner of this comment")
	}
	return nil
}

func (s *Storage) GetCommentById(_ context.Context, commentId domain.CommentId) (domain.DetailComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[commentId]
	if !ok {
		return domain.DetailComment{}, internal_errors.NotFound("comment not found")
	}
	return s.detailComment(c), nil
}

func (s *Storage) GetCommentsByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.DetailComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*comment
	for _, c := range s.comments {
		if c.threadId == threadId {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].date.Equal(matched[j].date) {
			return matched[i].date.Before(matched[j].date)
		}
		return matched[i].seq < matched[j].seq
	})

	out := make([]domain.DetailComment, 0, len(matched))
	for _, c := range matched {
		out = append(out, s.detailComment(c))
	}
	return out, nil
}

func (s *Storage) DeleteComment(_ context.Context, commentId domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[commentId]
	if !ok {
		return internal_errors.NotFound("comment not found")
	}
	c.deleted = true
	return nil
}

func (s *Storage) detailComment(c *comment) domain.DetailComment {
	return domain.DetailComment{
		Id:       c.id,
		ThreadId: c.threadId,
		Owner:    c.owner,
		Username: s.username(c.owner),
		Date:     c.date,
		Content:  c.content,
		Status:   domain.StatusFromDeleted(c.deleted),
		Replies:  []domain.DetailReply{},
	}
}

// Replies

func (s *Storage) AddReply(_ context.Context, in domain.AddReply) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[in.CommentId]; !ok {
		return domain.AddedReply{}, internal_errors.NotFound("comment not found")
	}
	if _, ok := s.users[in.Owner]; !ok {
		return domain.AddedReply{}, internal_errors.NotFound("user not found")
	}
	r := &reply{
		seq:       s.nextSeq(),
		id:        "reply-" + s.newId(),
		commentId: in.CommentId,
		owner:     in.Owner,
		content:   in.Content,
		date:      s.now(),
	}
	s.replies[r.id] = r
	return domain.AddedReply{Id: r.id, Content: r.content, Owner: r.owner}, nil
}

func (s *Storage) VerifyAvailableReply(_ context.Context, commentId domain.CommentId, replyId domain.ReplyId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.replies[replyId]; !ok || r.commentId != commentId {
		return internal_errors.NotFound("reply not found")
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(_ context.Context, replyId domain.ReplyId, owner domain.UserId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.replies[replyId]
	if !ok {
		return internal_errors.NotFound("reply not found")
	}
	if r.owner != owner {
		return internal_errors.Forbidden("you are not the owner of this reply")
	}
	return nil
}

func (s *Storage) GetReplyById(_ context.Context, replyId domain.ReplyId) (domain.DetailReply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.replies[replyId]
	if !ok {
		return domain.DetailReply{}, internal_errors.NotFound("reply not found")
	}
	return s.detailReply(r), nil
}

func (s *Storage) GetRepliesByCommentId(_ context.Context, commentId domain.CommentId) ([]domain.DetailReply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectReplies(func(r *reply) bool { return r.commentId == commentId }), nil
}

func (s *Storage) GetRepliesByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.DetailReply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectReplies(func(r *reply) bool {
		c, ok := s.comments[r.commentId]
		return ok && c.threadId == threadId
	}), nil
}

func (s *Storage) collectReplies(match func(*reply) bool) []domain.DetailReply {
	var matched []*reply
	for _, r := range s.replies {
		if match(r) {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].date.Equal(matched[j].date) {
			return matched[i].date.Before(matched[j].date)
		}
		return matched[i].seq < matched[j].seq
	})
	out := make([]domain.DetailReply, 0, len(matched))
	for _, r := range matched {
		out = append(out, s.detailReply(r))
	}
	return out
}

func (s *Storage) DeleteReply(_ context.Context, replyId domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.replies[replyId]
	if !ok {
		return internal_errors.NotFound("reply not found")
	}
	r.deleted = true
	return nil
}

func (s *Storage) detailReply(r *reply) domain.DetailReply {
	return domain.DetailReply{
		Id:        r.id,
		CommentId: r.commentId,
		Owner:     r.owner,
		Username:  s.username(r.owner),
		Date:      r.date,
		Content:   r.content,
		Status:    domain.StatusFromDeleted(r.deleted),
	}
}

// Users

func (s *Storage) VerifyAvailableUsername(_ context.Context, username domain.Username) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.usernameTaken(username) {
		return internal_errors.Invalid("REGISTER_USER", internal_errors.ErrUsernameUnavailable)
	}
	return nil
}

func (s *Storage) usernameTaken(username domain.Username) bool {
	for _, u := range s.users {
		if u.username == username {
			return true
		}
	}
	return false
}

func (s *Storage) AddUser(_ context.Context, in domain.RegisterUser) (domain.RegisteredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usernameTaken(in.Username) {
		return domain.RegisteredUser{}, internal_errors.Invalid("REGISTER_USER", internal_errors.ErrUsernameUnavailable)
	}
	u := &user{id: "user-" + s.newId(), username: in.Username, password: in.Password}
	s.users[u.id] = u
	return domain.RegisteredUser{Id: u.id, Username: u.username}, nil
}

func (s *Storage) GetUserById(_ context.Context, userId domain.UserId) (domain.RegisteredUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userId]
	if !ok {
		return domain.RegisteredUser{}, internal_errors.NotFound("user not found")
	}
	return domain.RegisteredUser{Id: u.id, Username: u.username}, nil
}

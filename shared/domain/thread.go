package domain

import (
	"time"
	"unicode/utf8"

	internal_errors "github.com/forumhub/forum-api/shared/errors"
)

const ThreadTitleMaxLen = 100

// to iterate thru layers: handler -> service -> storage
type AddThread struct {
	Title ThreadTitle
	Body  string
	Owner UserId
}

func NewAddThread(p Payload) (AddThread, error) {
	const entity = "ADD_THREAD"
	v, err := p.requireStrings(entity, "title", "body", "owner")
	if err != nil {
		return AddThread{}, err
	}
	if utf8.RuneCountInString(v[0]) > ThreadTitleMaxLen {
		return AddThread{}, internal_errors.Invalid(entity, internal_errors.ErrTitleLimit)
	}
	return AddThread{Title: v[0], Body: v[1], Owner: v[2]}, nil
}

type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

func NewAddedThread(p Payload) (AddedThread, error) {
	v, err := p.requireStrings("ADDED_THREAD", "id", "title", "owner")
	if err != nil {
		return AddedThread{}, err
	}
	return AddedThread{Id: v[0], Title: v[1], Owner: v[2]}, nil
}

func (t AddedThread) Validate() error {
	if t.Id == "" || t.Title == "" || t.Owner == "" {
		return internal_errors.Invalid("ADDED_THREAD", internal_errors.ErrMissingProperty)
	}
	return nil
}

type DetailThread struct {
	Id       ThreadId        `json:"id"`
	Title    ThreadTitle     `json:"title"`
	Body     string          `json:"body"`
	BodyHTML string          `json:"body_html,omitempty"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []DetailComment `json:"comments"`
}

func NewDetailThread(p Payload) (DetailThread, error) {
	const entity = "DETAIL_THREAD"
	if p.missing("id", "title", "body", "date", "username") {
		return DetailThread{}, internal_errors.Invalid(entity, internal_errors.ErrMissingProperty)
	}
	v, err := p.requireStrings(entity, "id", "title", "body", "username")
	if err != nil {
		return DetailThread{}, err
	}
	date, err := p.timeValue(entity, "date")
	if err != nil {
		return DetailThread{}, err
	}
	return DetailThread{Id: v[0], Title: v[1], Body: v[2], Date: date, Username: v[3]}, nil
}

func (t DetailThread) Validate() error {
	if t.Id == "" || t.Title == "" || t.Date.IsZero() || t.Username == "" {
		return internal_errors.Invalid("DETAIL_THREAD", internal_errors.ErrMissingProperty)
	}
	return nil
}

package domain

import (
	"time"

	internal_errors "github.com/forumhub/forum-api/shared/errors"
)

const DeletedCommentContent = "**comment has been deleted**"

type AddComment struct {
	ThreadId ThreadId
	Content  string
	Owner    UserId
}

func NewAddComment(p Payload) (AddComment, error) {
	v, err := p.requireStrings("ADD_COMMENT", "threadId", "content", "owner")
	if err != nil {
		return AddComment{}, err
	}
	return AddComment{ThreadId: v[0], Content: v[1], Owner: v[2]}, nil
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

func NewAddedComment(p Payload) (AddedComment, error) {
	v, err := p.requireStrings("ADDED_COMMENT", "id", "content", "owner")
	if err != nil {
		return AddedComment{}, err
	}
	return AddedComment{Id: v[0], Content: v[1], Owner: v[2]}, nil
}

func (c AddedComment) Validate() error {
	if c.Id == "" || c.Content == "" || c.Owner == "" {
		return internal_errors.Invalid("ADDED_COMMENT", internal_errors.ErrMissingProperty)
	}
	return nil
}

type DetailComment struct {
	Id          CommentId     `json:"id"`
	ThreadId    ThreadId      `json:"-"`
	Owner       UserId        `json:"-"`
	Username    Username      `json:"username"`
	Date        time.Time     `json:"date"`
	Content     string        `json:"content"`
	ContentHTML string        `json:"content_html,omitempty"`
	Status      Status        `json:"status"`
	Replies     []DetailReply `json:"replies"`
}

// Masked hides the content of a deleted comment while keeping its place in the listing.
func (c DetailComment) Masked() DetailComment {
	if c.Status.IsDeleted() {
		c.Content = DeletedCommentContent
	}
	return c
}

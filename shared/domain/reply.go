package domain

import (
	"time"

	internal_errors "github.com/forumhub/forum-api/shared/errors"
)

const DeletedReplyContent = "**reply has been deleted**"

type AddReply struct {
	ThreadId  ThreadId // optional, scopes the parent comment lookup
	CommentId CommentId
	Content   string
	Owner     UserId
}

func NewAddReply(p Payload) (AddReply, error) {
	const entity = "ADD_REPLY"
	v, err := p.requireStrings(entity, "commentId", "content", "owner")
	if err != nil {
		return AddReply{}, err
	}
	threadId, err := p.optionalString(entity, "threadId")
	if err != nil {
		return AddReply{}, err
	}
	return AddReply{ThreadId: threadId, CommentId: v[0], Content: v[1], Owner: v[2]}, nil
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

func NewAddedReply(p Payload) (AddedReply, error) {
	v, err := p.requireStrings("ADDED_REPLY", "id", "content", "owner")
	if err != nil {
		return AddedReply{}, err
	}
	return AddedReply{Id: v[0], Content: v[1], Owner: v[2]}, nil
}

func (r AddedReply) Validate() error {
	if r.Id == "" || r.Content == "" || r.Owner == "" {
		return internal_errors.Invalid("ADDED_REPLY", internal_errors.ErrMissingProperty)
	}
	return nil
}

type DetailReply struct {
	Id          ReplyId   `json:"id"`
	CommentId   CommentId `json:"-"`
	Owner       UserId    `json:"-"`
	Username    Username  `json:"username"`
	Date        time.Time `json:"date"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	Status      Status    `json:"status"`
}

func (r DetailReply) Masked() DetailReply {
	if r.Status.IsDeleted() {
		r.Content = DeletedReplyContent
	}
	return r
}

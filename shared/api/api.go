// Package api holds the response bodies of the HTTP API. They sit under the
// "data" key of the utils.Response envelope.
package api

import "github.com/forumhub/forum-api/shared/domain"

type AddThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.DetailThread `json:"thread"`
}

type AddCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type RegisterUserResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

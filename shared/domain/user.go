package domain

import (
	"regexp"
	"unicode/utf8"

	internal_errors "github.com/forumhub/forum-api/shared/errors"
)

const UsernameMaxLen = 50

var usernamePattern = regexp.MustCompile(`^[\w]+$`)

// User is the authenticated requester put into the request context.
type User struct {
	Id UserId
}

type RegisterUser struct {
	Username Username
	Password string
}

func NewRegisterUser(p Payload) (RegisterUser, error) {
	const entity = "REGISTER_USER"
	v, err := p.requireStrings(entity, "username", "password")
	if err != nil {
		return RegisterUser{}, err
	}
	if utf8.RuneCountInString(v[0]) > UsernameMaxLen {
		return RegisterUser{}, internal_errors.Invalid(entity, internal_errors.ErrUsernameLimit)
	}
	if !usernamePattern.MatchString(v[0]) {
		return RegisterUser{}, internal_errors.Invalid(entity, internal_errors.ErrUsernameRestrictedChar)
	}
	return RegisterUser{Username: v[0], Password: v[1]}, nil
}

type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
}

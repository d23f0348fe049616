package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// StatusCoder is implemented by every error kind that maps to a non-500 response.
type StatusCoder interface {
	error
	Status() int
}

func (e *ErrorWithStatusCode) Status() int {
	return e.StatusCode
}

// NotFoundError is returned when a referenced thread, comment, reply or user does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Status() int {
	return http.StatusNotFound
}

func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// AuthorizationError is returned when the requester does not own the resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func (e *AuthorizationError) Status() int {
	return http.StatusForbidden
}

func Forbidden(message string) error {
	return &AuthorizationError{Message: message}
}

// Validation kinds. A ValidationError unwraps to one of these.
var (
	ErrMissingProperty        = errors.New("NOT_CONTAIN_NEEDED_PROPERTY")
	ErrDataType               = errors.New("NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrTitleLimit             = errors.New("TITLE_LIMIT_CHAR")
	ErrUsernameLimit          = errors.New("USERNAME_LIMIT_CHAR")
	ErrUsernameRestrictedChar = errors.New("USERNAME_CONTAIN_RESTRICTED_CHARACTER")
	ErrUsernameUnavailable    = errors.New("USERNAME_UNAVAILABLE")
)

// ValidationError reports a malformed payload or a violated business rule.
// Error() renders as ENTITY.KIND, e.g. ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY.
type ValidationError struct {
	Entity string
	Kind   error
}

func (e *ValidationError) Error() string {
	return e.Entity + "." + e.Kind.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func (e *ValidationError) Status() int {
	return http.StatusBadRequest
}

func Invalid(entity string, kind error) error {
	return &ValidationError{Entity: entity, Kind: kind}
}

// Is reports whether any error in err's chain is of type T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

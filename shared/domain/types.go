package domain

type (
	UserId   = string
	Username = string

	ThreadId    = string
	ThreadTitle = string

	CommentId = string
	ReplyId   = string
)

// Status is the lifecycle of a comment or reply row.
// Active -> Deleted is the only transition; Deleted is terminal.
type Status int

const (
	StatusActive Status = iota
	StatusDeleted
)

func StatusFromDeleted(isDeleted bool) Status {
	if isDeleted {
		return StatusDeleted
	}
	return StatusActive
}

func (s Status) IsDeleted() bool {
	return s == StatusDeleted
}

func (s Status) String() string {
	if s == StatusDeleted {
		return "deleted"
	}
	return "active"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

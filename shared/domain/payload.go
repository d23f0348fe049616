package domain

import (
	"time"

	internal_errors "github.com/forumhub/forum-api/shared/errors"
)

// Payload is the raw shape of an inbound request body (decoded JSON plus
// values taken from the path and the auth context). Entities are built
// from it and reject missing keys and wrong primitive types.
type Payload map[string]any

// missing reports keys that are absent, nil or empty strings.
func (p Payload) missing(keys ...string) bool {
	for _, k := range keys {
		v, ok := p[k]
		if !ok || v == nil || v == "" {
			return true
		}
	}
	return false
}

// requireStrings checks presence first and types second, so a payload that is both
// incomplete and mistyped is reported as incomplete.
func (p Payload) requireStrings(entity string, keys ...string) ([]string, error) {
	if p.missing(keys...) {
		return nil, internal_errors.Invalid(entity, internal_errors.ErrMissingProperty)
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		s, ok := p[k].(string)
		if !ok {
			return nil, internal_errors.Invalid(entity, internal_errors.ErrDataType)
		}
		out[i] = s
	}
	return out, nil
}

// optionalString returns "" when key is absent and a type error when it is
// present but not a string.
func (p Payload) optionalString(entity, key string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", internal_errors.Invalid(entity, internal_errors.ErrDataType)
	}
	return s, nil
}

// timeValue accepts a time.Time or an RFC 3339 string.
func (p Payload) timeValue(entity, key string) (time.Time, error) {
	switch v := p[key].(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, internal_errors.Invalid(entity, internal_errors.ErrDataType)
		}
		return t, nil
	default:
		return time.Time{}, internal_errors.Invalid(entity, internal_errors.ErrDataType)
	}
}

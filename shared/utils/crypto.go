package utils

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// NewId is the default id generator: 16 hex characters of a random UUID.
func NewId() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

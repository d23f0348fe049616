// Package jwt issues and verifies the HS256 access tokens of forum users.
// A token carries only the user id in the "uid" claim.
package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
	"github.com/forumhub/forum-api/shared/logger"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a forum access token.
type Claims struct {
	UserId domain.UserId `json:"uid"`
	jwt.RegisteredClaims
}

type JwtService interface {
	NewToken(user domain.User) (string, error)
	// DecodeToken returns the user a valid token was issued to.
	DecodeToken(tokenStr string) (domain.User, error)
}

type Jwt struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{key: []byte(secretKey), ttl: ttl, now: time.Now}
}

var errUnauthorized = &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	if user.Id == "" {
		return "", errors.New("token needs a user id")
	}
	issued := j.now()
	claims := Claims{
		UserId: user.Id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(j.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token for %s: %w", user.Id, err)
	}
	return signed, nil
}

func (j *Jwt) DecodeToken(tokenStr string) (domain.User, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(*jwt.Token) (any, error) { return j.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		logger.Log.Debug("access token rejected", "error", err)
		return domain.User{}, errUnauthorized
	}
	if claims.UserId == "" {
		logger.Log.Warn("access token without uid claim")
		return domain.User{}, errUnauthorized
	}
	return domain.User{Id: claims.UserId}, nil
}

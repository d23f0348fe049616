package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
	jwt_internal "github.com/forumhub/forum-api/shared/jwt"
	"github.com/forumhub/forum-api/shared/utils"
)

type key int

const userKey key = 0

const AccessTokenCookie = "accessToken"

var errNoToken = &internal_errors.ErrorWithStatusCode{Message: "Missing authentication", StatusCode: http.StatusUnauthorized}

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid access token and stores the
// token's user in the request context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// Header first for API clients, then the cookie.
func tokenFromRequest(r *http.Request) string {
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return strings.TrimSpace(token)
	}
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	tokenString := tokenFromRequest(r)
	if tokenString == "" {
		return nil, errNoToken
	}

	user, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns nil when the route is not behind NeedAuth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// GetUserIDFromContext is a rate limit identity for authenticated routes.
func GetUserIDFromContext(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", errors.New("no user in request context")
	}
	return "user_" + user.Id, nil
}

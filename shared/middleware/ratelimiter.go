package middleware

import (
	"fmt"
	"net"
	"net/http"

	internal_errors "github.com/forumhub/forum-api/shared/errors"
	"github.com/forumhub/forum-api/shared/middleware/ratelimiter"
	"github.com/forumhub/forum-api/shared/utils"
)

var errRateLimited = &internal_errors.ErrorWithStatusCode{Message: "Rate limit exceeded, try again later", StatusCode: http.StatusTooManyRequests}

type Limiter interface {
	Allow(key string) bool
}

var _ Limiter = (*ratelimiter.KeyedLimiter)(nil)

// RateLimit throttles requests per identity. identity errors are answered as is.
func RateLimit(rl Limiter, identity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := identity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(id) {
				w.Header().Set("Retry-After", "60")
				utils.WriteErrorAndStatusCode(w, errRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GlobalRateLimit(rl Limiter) func(http.Handler) http.Handler {
	return RateLimit(rl, func(*http.Request) (string, error) { return "global", nil })
}

// GetIP trusts RemoteAddr only; forwarding headers are client controlled.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid remote address %q", r.RemoteAddr)
	}
	return ip, nil
}

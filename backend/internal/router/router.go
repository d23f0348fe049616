package router

import (
	"net/http"
	"time"

	"github.com/forumhub/forum-api/backend/internal/setup"
	mw "github.com/forumhub/forum-api/shared/middleware"
	"github.com/forumhub/forum-api/shared/middleware/metrics"
	rl "github.com/forumhub/forum-api/shared/middleware/ratelimiter"
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New builds the chi router. Limiters passed to Use apply to every route of
// that group combined. The returned stop func ends the limiters' sweeps.
func New(deps *setup.Dependencies) (http.Handler, func()) {
	r := chi.NewRouter()

	var limiters []*rl.KeyedLimiter
	limiter := func(l *rl.KeyedLimiter) *rl.KeyedLimiter {
		limiters = append(limiters, l)
		return l
	}
	stop := func() {
		for _, l := range limiters {
			l.Stop()
		}
	}

	r.Use(chi_middleware.RequestID)
	r.Use(mw.RequestLogger)
	r.Use(chi_middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chi_middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies))

	h := deps.Handler
	auth := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.With(
		mw.RateLimit(limiter(rl.New(1.0/60, 3, time.Hour)), mw.GetIP), // 3 burst, then 1 per minute by IP
		mw.GlobalRateLimit(limiter(rl.PerSecond(100))),
	).Post("/users", h.RegisterUser)

	r.Route("/threads", func(r chi.Router) {
		r.Get("/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(auth.NeedAuth())
			r.Use(mw.RateLimit(limiter(rl.PerSecond(10)), mw.GetUserIDFromContext))

			r.With(mw.RateLimit(limiter(rl.PerMinute(5)), mw.GetUserIDFromContext)).Post("/", h.AddThread)
			r.Post("/{threadId}/comments", h.AddComment)
			r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
			r.Post("/{threadId}/comments/{commentId}/replies", h.AddReply)
			r.Delete("/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
		})
	})

	return r, stop
}

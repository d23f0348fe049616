// Package metrics exposes the Prometheus collectors of the forum API:
// HTTP traffic per chi route and outcomes of the write use cases.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	internal_errors "github.com/forumhub/forum-api/shared/errors"
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "forum"

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	inFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "Requests currently being served.",
	})

	useCaseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "use_case_total",
			Help:      "Use case executions by name and outcome.",
		},
		[]string{"use_case", "outcome"},
	)
)

// Middleware records request metrics labelled with the chi route pattern,
// so /threads/{threadId} is one series regardless of the id.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		inFlight.Inc()
		defer inFlight.Dec()

		ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Outcome classifies a use case result for the use_case_total counter.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case internal_errors.Is[*internal_errors.ValidationError](err):
		return "invalid"
	case internal_errors.Is[*internal_errors.NotFoundError](err):
		return "not_found"
	case internal_errors.Is[*internal_errors.AuthorizationError](err):
		return "forbidden"
	default:
		return "error"
	}
}

func ObserveUseCase(name string, err error) {
	useCaseTotal.WithLabelValues(name, Outcome(err)).Inc()
}

// UseCaseCounter exposes one use_case_total series.
func UseCaseCounter(name, outcome string) prometheus.Counter {
	return useCaseTotal.WithLabelValues(name, outcome)
}

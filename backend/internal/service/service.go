// Package service holds the use cases. Each use case builds its validated
// entity from the request payload, runs the repository checks in a fixed
// order and stops at the first failure.
package service

import (
	"time"

	"github.com/forumhub/forum-api/shared/middleware/metrics"
)

// Renderer turns user markdown into sanitized HTML.
type Renderer interface {
	Render(text string) string
}

// observe records the use case outcome. Call it deferred with a pointer to the
// named error result.
func observe(name string, err *error) {
	metrics.ObserveUseCase(name, *err)
}

// contextTimeout bounds the repository calls of a single use case.
const contextTimeout = 10 * time.Second

package middleware

import (
	"study-deadline-engine/pkg/log"
	"study-deadline-engine/pkg/scope"
)

type Middleware struct {
	l        log.Logger
	sessions *scope.Manager
	limiter  *rateLimiter
}

func New(l log.Logger, sessions *scope.Manager, requestsPerMin int) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
		limiter:  newRateLimiter(requestsPerMin),
	}
}

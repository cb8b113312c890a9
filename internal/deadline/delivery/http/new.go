package http

import (
	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/pkg/log"
)

// Handler is the public interface for the deadline HTTP delivery layer.
type Handler interface {
	Overview(c interface{})
	Ranked(c interface{})
	Triage(c interface{})
	Nudge(c interface{})
	Toggle(c interface{})
}

type handler struct {
	l  log.Logger
	uc deadline.UseCase
}

// New creates a new HTTP handler for the deadline domain.
func New(l log.Logger, uc deadline.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

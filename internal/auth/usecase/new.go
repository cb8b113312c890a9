package usecase

import (
	"study-deadline-engine/internal/auth"
	pkgLog "study-deadline-engine/pkg/log"
	"study-deadline-engine/pkg/scope"
)

type implUseCase struct {
	l        pkgLog.Logger
	google   auth.GoogleVerifier
	sessions *scope.Manager
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, google auth.GoogleVerifier, sessions *scope.Manager) *implUseCase {
	return &implUseCase{
		l:        l,
		google:   google,
		sessions: sessions,
	}
}

package usecase

import (
	"time"

	"study-deadline-engine/internal/completion"
	"study-deadline-engine/internal/deadline/repository"
	"study-deadline-engine/pkg/datemath"
	pkgLog "study-deadline-engine/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.CourseRepository
	completion completion.Store
	dateMath   *datemath.Parser
	clock      func() time.Time
}

// New creates a new deadline UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.CourseRepository,
	completionStore completion.Store,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		completion: completionStore,
		dateMath:   dateMath,
		clock:      time.Now,
	}
}

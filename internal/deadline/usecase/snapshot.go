package usecase

import (
	"context"
	"fmt"
	"time"

	"study-deadline-engine/internal/deadline/engine"
	"study-deadline-engine/internal/model"
)

// snapshot fetches the scope's course records, normalizes them to the
// flat task slice, and overlays the locally cached completion flags on
// top of the statuses the records carry.
func (uc *implUseCase) snapshot(ctx context.Context, sc model.Scope, now time.Time) ([]model.Task, error) {
	records, err := uc.repo.ListCourses(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "deadline.usecase.snapshot.ListCourses: %v", err)
		return nil, fmt.Errorf("failed to list course records: %w", err)
	}

	tasks := engine.Normalize(records, now, uc.dateMath)

	flags, err := uc.completion.Snapshot(ctx)
	if err != nil {
		// The cache being down only costs local-only toggles. Serve
		// the statuses as the records stored them.
		uc.l.Warnf(ctx, "deadline.usecase.snapshot.completion: %v", err)
		return tasks, nil
	}

	for i := range tasks {
		v, ok := flags[tasks[i].ID]
		if !ok {
			continue
		}
		if v {
			tasks[i].Status = model.StatusCompleted
		} else if tasks[i].Completed() {
			tasks[i].Status = model.DefaultStatus(tasks[i].Type)
		}
	}
	return tasks, nil
}

package usecase

import (
	"context"
	"fmt"

	"study-deadline-engine/internal/completion"
	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/internal/deadline/engine"
	"study-deadline-engine/internal/model"
)

// ToggleCompletion flips a task's completion state. The task ID is
// resolved against the scope's current records so a stale or foreign
// ID cannot reach the stores.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, sc model.Scope, input deadline.ToggleInput) (deadline.ToggleOutput, error) {
	if input.TaskID == "" {
		return deadline.ToggleOutput{}, deadline.ErrEmptyTaskID
	}

	courseID, task, err := uc.resolveTask(ctx, sc, input.TaskID)
	if err != nil {
		return deadline.ToggleOutput{}, err
	}

	res, err := uc.completion.Toggle(ctx, sc, completion.ToggleRequest{
		CourseID: courseID,
		Task:     task,
	})
	if err != nil {
		uc.l.Errorf(ctx, "deadline.usecase.ToggleCompletion: %v", err)
		return deadline.ToggleOutput{}, fmt.Errorf("failed to toggle completion: %w", err)
	}

	uc.l.Infof(ctx, "deadline.usecase.ToggleCompletion: task=%s completed=%v state=%s", res.TaskID, res.Completed, res.State)
	return deadline.ToggleOutput{
		TaskID:    res.TaskID,
		Completed: res.Completed,
		NewStatus: res.NewStatus,
		State:     deadline.SyncState(res.State),
	}, nil
}

// resolveTask finds the owning course record for a task ID. Task IDs do
// not separably encode the record ID, so each record is normalized on
// its own and scanned for a match.
func (uc *implUseCase) resolveTask(ctx context.Context, sc model.Scope, taskID string) (string, model.Task, error) {
	records, err := uc.repo.ListCourses(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "deadline.usecase.resolveTask.ListCourses: %v", err)
		return "", model.Task{}, fmt.Errorf("failed to list course records: %w", err)
	}

	now := uc.clock()
	for _, rec := range records {
		for _, t := range engine.Normalize([]model.CourseRecord{rec}, now, uc.dateMath) {
			if t.ID == taskID {
				return rec.ID, t, nil
			}
		}
	}
	return "", model.Task{}, deadline.ErrTaskNotFound
}

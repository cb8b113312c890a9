package usecase

import (
	"context"

	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/internal/deadline/engine"
	"study-deadline-engine/internal/model"
)

// Overview runs one full aggregation pass for the dashboard.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope) (deadline.OverviewOutput, error) {
	now := uc.clock()
	tasks, err := uc.snapshot(ctx, sc, now)
	if err != nil {
		return deadline.OverviewOutput{}, err
	}

	return deadline.OverviewOutput{
		Tasks:  engine.Rank(tasks, now),
		Triage: engine.DetectOverload(tasks, uc.dateMath),
		Nudge:  engine.GenerateNudge(tasks, now, uc.dateMath),
	}, nil
}

func (uc *implUseCase) RankedTasks(ctx context.Context, sc model.Scope) (deadline.RankedOutput, error) {
	now := uc.clock()
	tasks, err := uc.snapshot(ctx, sc, now)
	if err != nil {
		return deadline.RankedOutput{}, err
	}
	return deadline.RankedOutput{Tasks: engine.Rank(tasks, now)}, nil
}

func (uc *implUseCase) Triage(ctx context.Context, sc model.Scope) (*deadline.TriageMode, error) {
	tasks, err := uc.snapshot(ctx, sc, uc.clock())
	if err != nil {
		return nil, err
	}
	return engine.DetectOverload(tasks, uc.dateMath), nil
}

func (uc *implUseCase) Nudge(ctx context.Context, sc model.Scope) (*deadline.NudgeSuggestion, error) {
	now := uc.clock()
	tasks, err := uc.snapshot(ctx, sc, now)
	if err != nil {
		return nil, err
	}
	return engine.GenerateNudge(tasks, now, uc.dateMath), nil
}

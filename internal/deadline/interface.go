package deadline

import (
	"context"

	"study-deadline-engine/internal/model"
)

// UseCase defines the business logic interface for the deadline domain.
type UseCase interface {
	// Overview runs one full aggregation pass: normalize, rank, detect
	// overload, and derive the single live nudge.
	Overview(ctx context.Context, sc model.Scope) (OverviewOutput, error)

	// RankedTasks returns all tasks with priority ranks for the current
	// lookahead window.
	RankedTasks(ctx context.Context, sc model.Scope) (RankedOutput, error)

	// Triage reports the first overloaded calendar week, or nil.
	Triage(ctx context.Context, sc model.Scope) (*TriageMode, error)

	// Nudge derives the single live proactive suggestion, or nil.
	Nudge(ctx context.Context, sc model.Scope) (*NudgeSuggestion, error)

	// ToggleCompletion flips a task's completion state, optimistically
	// writing through to the course record store when the identity allows.
	ToggleCompletion(ctx context.Context, sc model.Scope, input ToggleInput) (ToggleOutput, error)
}

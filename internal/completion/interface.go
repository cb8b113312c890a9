package completion

import (
	"context"

	"study-deadline-engine/internal/model"
)

//go:generate mockery --name Store
type Store interface {
	// Toggle flips the completion flag of a task, writing through to the
	// durable record when the scope allows it.
	Toggle(ctx context.Context, sc model.Scope, req ToggleRequest) (Result, error)
	// Snapshot returns the locally cached completion flags keyed by task ID.
	Snapshot(ctx context.Context) (map[string]bool, error)
}

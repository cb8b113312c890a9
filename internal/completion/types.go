package completion

import "study-deadline-engine/internal/model"

// State reports how far a toggle propagated.
type State string

const (
	// StateSynced means both the durable record and the local cache agree.
	StateSynced State = "synced"
	// StateLocalOnly means the durable write failed or was skipped and only
	// the local cache holds the change.
	StateLocalOnly State = "local_only"
	// StatePermissionDenied means the durable record provably belongs to
	// another user. The local cache is left untouched.
	StatePermissionDenied State = "permission_denied"
)

// ToggleRequest carries the resolved task and the record that owns it.
type ToggleRequest struct {
	CourseID string
	Task     model.Task
}

// Result describes the outcome of a toggle.
type Result struct {
	TaskID    string
	Completed bool
	NewStatus string
	State     State
}

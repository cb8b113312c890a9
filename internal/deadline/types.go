package deadline

import (
	"time"

	"study-deadline-engine/internal/model"
)

// PriorityRankedTask is a Task augmented with a relative priority rank.
// Priority 1 is the most urgent; 0 means unranked (outside the 7-day
// lookahead window or already completed).
type PriorityRankedTask struct {
	model.Task
	Priority int
}

// TriageMode is the schedule-overload state: a calendar week holding
// three or more deadlines, plus a restructuring suggestion. The
// presentation layer keys its shown-once bookkeeping off Week.
type TriageMode struct {
	IsActive   bool
	Week       string // human label of the week's Sunday anchor
	WeekStart  time.Time
	Tasks      []model.Task
	Suggestion string
}

// NudgeType classifies a proactive suggestion.
type NudgeType string

const (
	NudgeOpportunity NudgeType = "opportunity"
	NudgeWarning     NudgeType = "warning"
	NudgeTip         NudgeType = "tip"
)

// NudgePriority signals presentation urgency.
type NudgePriority string

const (
	NudgePriorityHigh   NudgePriority = "high"
	NudgePriorityMedium NudgePriority = "medium"
	NudgePriorityLow    NudgePriority = "low"
)

// NudgeSuggestion is the single proactive suggestion surfaced to the
// user. At most one is live at a time; it is recomputed whenever the
// task set or completion state changes.
type NudgeSuggestion struct {
	Type       NudgeType
	Message    string
	ActionText string // optional call-to-action label
	ActionHref string // optional deep link, opaque to the UI
	Priority   NudgePriority
}

// --- UseCase inputs/outputs ---

// OverviewOutput is one full aggregation pass for the dashboard.
type OverviewOutput struct {
	Tasks  []PriorityRankedTask
	Triage *TriageMode
	Nudge  *NudgeSuggestion
}

type RankedOutput struct {
	Tasks []PriorityRankedTask
}

// ToggleInput identifies the task whose completion is being flipped.
// The course ID plus task name and type is enough to locate the raw
// entry in the owning record.
type ToggleInput struct {
	TaskID string
}

// SyncState describes where a completion toggle landed.
type SyncState string

const (
	SyncStateSynced           SyncState = "synced"
	SyncStateLocalOnly        SyncState = "local_only"
	SyncStatePermissionDenied SyncState = "permission_denied"
)

// ToggleOutput reports the user-visible result of a completion toggle.
type ToggleOutput struct {
	TaskID    string
	Completed bool
	NewStatus string
	State     SyncState
}

package model

import "time"

// TaskType distinguishes the two kinds of deadline-bearing work.
type TaskType string

const (
	TaskTypeAssignment TaskType = "assignment"
	TaskTypeExam       TaskType = "exam"
)

// Task status strings. StatusCompleted is a sentinel: a completed task
// is inactive for ranking and nudging but stays in the task list so
// "all done" states can still be computed.
const (
	StatusCompleted  = "Completed"
	StatusNotStarted = "Not Started"
	StatusUpcoming   = "Upcoming"
)

// Default weights applied when a raw entry carries no usable weight.
const (
	DefaultAssignmentWeight = 10
	DefaultExamWeight       = 20
)

// Task is the normalized unit of work derived from a course record.
// Immutable once created within a single aggregation pass.
type Task struct {
	ID         string    // {courseID}-{name}, exams suffixed with "-exam"
	Type       TaskType
	Name       string
	Date       time.Time // always a valid local wall-clock time
	Course     string    // owning course display name
	CourseCode string
	Weight     float64
	Status     string
}

// Completed reports whether the task carries the completion sentinel.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// DefaultStatus returns the un-completed status for a task type:
// assignments revert to "Not Started", exams to "Upcoming".
func DefaultStatus(tt TaskType) string {
	if tt == TaskTypeExam {
		return StatusUpcoming
	}
	return StatusNotStarted
}

// DefaultWeight returns the fallback weight for a task type.
func DefaultWeight(tt TaskType) float64 {
	if tt == TaskTypeExam {
		return DefaultExamWeight
	}
	return DefaultAssignmentWeight
}

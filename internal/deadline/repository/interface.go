package repository

import (
	"context"

	"study-deadline-engine/internal/model"
)

// CourseRepository is the engine's view of the course-record store.
// Records are read-only except for the single task-status rewrite
// performed by completion toggles.
type CourseRepository interface {
	// ListCourses returns every course record owned by the given user.
	ListCourses(ctx context.Context, userID string) ([]model.CourseRecord, error)

	// GetCourse fetches one course record by ID.
	GetCourse(ctx context.Context, id string) (model.CourseRecord, error)

	// UpdateTaskStatus rewrites one raw task's status inside the owning
	// course record and stamps ownership metadata, so records created
	// before stamping existed still pass the store's access checks.
	UpdateTaskStatus(ctx context.Context, opt UpdateTaskStatusOptions) error
}

// UpdateTaskStatusOptions identifies the raw entry to rewrite.
type UpdateTaskStatusOptions struct {
	CourseID string
	TaskName string
	TaskType model.TaskType
	Status   string
	UserID   string // caller identity, written as the ownership stamp
}

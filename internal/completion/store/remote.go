package store

import (
	"context"

	"study-deadline-engine/internal/deadline/repository"
	"study-deadline-engine/internal/model"
)

// RemoteStore writes completion state through to the durable course
// record store.
type RemoteStore struct {
	repo repository.CourseRepository
}

func NewRemoteStore(repo repository.CourseRepository) *RemoteStore {
	return &RemoteStore{repo: repo}
}

// Write rewrites the task's status inside its owning course record.
func (s *RemoteStore) Write(ctx context.Context, courseID string, task model.Task, status, userID string) error {
	return s.repo.UpdateTaskStatus(ctx, repository.UpdateTaskStatusOptions{
		CourseID: courseID,
		TaskName: task.Name,
		TaskType: task.Type,
		Status:   status,
		UserID:   userID,
	})
}

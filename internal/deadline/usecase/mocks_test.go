package usecase

import (
	"context"

	"study-deadline-engine/internal/completion"
	"study-deadline-engine/internal/deadline/repository"
	"study-deadline-engine/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock course repository backed by function fields.
type mockCourseRepo struct {
	listCoursesFunc      func(ctx context.Context, userID string) ([]model.CourseRecord, error)
	getCourseFunc        func(ctx context.Context, id string) (model.CourseRecord, error)
	updateTaskStatusFunc func(ctx context.Context, opt repository.UpdateTaskStatusOptions) error
}

func (m *mockCourseRepo) ListCourses(ctx context.Context, userID string) ([]model.CourseRecord, error) {
	if m.listCoursesFunc == nil {
		return nil, nil
	}
	return m.listCoursesFunc(ctx, userID)
}

func (m *mockCourseRepo) GetCourse(ctx context.Context, id string) (model.CourseRecord, error) {
	return m.getCourseFunc(ctx, id)
}

func (m *mockCourseRepo) UpdateTaskStatus(ctx context.Context, opt repository.UpdateTaskStatusOptions) error {
	if m.updateTaskStatusFunc == nil {
		return nil
	}
	return m.updateTaskStatusFunc(ctx, opt)
}

// Mock completion store backed by function fields.
type mockCompletionStore struct {
	toggleFunc   func(ctx context.Context, sc model.Scope, req completion.ToggleRequest) (completion.Result, error)
	snapshotFunc func(ctx context.Context) (map[string]bool, error)
}

func (m *mockCompletionStore) Toggle(ctx context.Context, sc model.Scope, req completion.ToggleRequest) (completion.Result, error) {
	return m.toggleFunc(ctx, sc, req)
}

func (m *mockCompletionStore) Snapshot(ctx context.Context) (map[string]bool, error) {
	if m.snapshotFunc == nil {
		return map[string]bool{}, nil
	}
	return m.snapshotFunc(ctx)
}

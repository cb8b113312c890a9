package coursestore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"study-deadline-engine/internal/deadline/repository"
	"study-deadline-engine/internal/model"
	"study-deadline-engine/pkg/docstore"
	pkgLog "study-deadline-engine/pkg/log"
)

// courseDocument is the wire shape of a course record in the store.
type courseDocument struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	UpdatedAt  string `json:"updatedAt"`
	CourseData struct {
		Name        string          `json:"name"`
		Code        string          `json:"code"`
		Assignments []model.RawTask `json:"assignments"`
		Exams       []model.RawTask `json:"exams"`
	} `json:"courseData"`
}

type listEnvelope struct {
	Documents []courseDocument `json:"documents"`
}

type implRepository struct {
	client     *docstore.Client
	collection string
	l          pkgLog.Logger
}

// New creates a CourseRepository backed by the document store.
func New(client *docstore.Client, collection string, l pkgLog.Logger) repository.CourseRepository {
	return &implRepository{
		client:     client,
		collection: collection,
		l:          l,
	}
}

func (r *implRepository) ListCourses(ctx context.Context, userID string) ([]model.CourseRecord, error) {
	var envelope listEnvelope
	filter := url.Values{"userId": {userID}}
	if err := r.client.ListDocuments(ctx, r.collection, filter, &envelope); err != nil {
		return nil, fmt.Errorf("failed to list course records: %w", err)
	}

	records := make([]model.CourseRecord, 0, len(envelope.Documents))
	for _, doc := range envelope.Documents {
		records = append(records, doc.toModel())
	}
	return records, nil
}

func (r *implRepository) GetCourse(ctx context.Context, id string) (model.CourseRecord, error) {
	var doc courseDocument
	if err := r.client.GetDocument(ctx, r.collection, id, &doc); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return model.CourseRecord{}, repository.ErrCourseNotFound
		}
		return model.CourseRecord{}, fmt.Errorf("failed to get course record %s: %w", id, err)
	}
	return doc.toModel(), nil
}

// UpdateTaskStatus does a read-modify-write of the matching raw entry's
// status field, then patches only the collection that changed along
// with the updatedAt and userId stamps.
func (r *implRepository) UpdateTaskStatus(ctx context.Context, opt repository.UpdateTaskStatusOptions) error {
	var doc courseDocument
	if err := r.client.GetDocument(ctx, r.collection, opt.CourseID, &doc); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return repository.ErrCourseNotFound
		}
		return fmt.Errorf("failed to fetch course record for update: %w", err)
	}

	if doc.UserID != "" && doc.UserID != opt.UserID {
		return repository.ErrNotOwner
	}

	field := "courseData.assignments"
	collection := doc.CourseData.Assignments
	if opt.TaskType == model.TaskTypeExam {
		field = "courseData.exams"
		collection = doc.CourseData.Exams
	}

	found := false
	for i := range collection {
		if collection[i].Name == opt.TaskName {
			collection[i].Status = opt.Status
			found = true
			break
		}
	}
	if !found {
		return repository.ErrTaskNotFound
	}

	fields := map[string]any{
		field:       collection,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
		"userId":    opt.UserID,
	}
	if err := r.client.PatchDocument(ctx, r.collection, opt.CourseID, fields); err != nil {
		return fmt.Errorf("failed to patch course record %s: %w", opt.CourseID, err)
	}

	r.l.Infof(ctx, "coursestore: updated %s status=%q in %s", opt.TaskName, opt.Status, opt.CourseID)
	return nil
}

func (d courseDocument) toModel() model.CourseRecord {
	updatedAt, _ := time.Parse(time.RFC3339, d.UpdatedAt)
	return model.CourseRecord{
		ID:          d.ID,
		Name:        d.CourseData.Name,
		Code:        d.CourseData.Code,
		UserID:      d.UserID,
		Assignments: d.CourseData.Assignments,
		Exams:       d.CourseData.Exams,
		UpdatedAt:   updatedAt,
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-deadline-engine/internal/model"
	"study-deadline-engine/pkg/datemath"
)

func testParser(t *testing.T) *datemath.Parser {
	t.Helper()
	dm, err := datemath.NewParser("America/Toronto")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return dm
}

// Wednesday noon.
func testNow(dm *datemath.Parser) time.Time {
	return time.Date(2026, 9, 2, 12, 0, 0, 0, dm.Location())
}

func testRecords() []model.CourseRecord {
	return []model.CourseRecord{
		{
			ID:     "rec-chem",
			Name:   "Organic Chemistry",
			Code:   "CHEM 2OA3",
			UserID: "user-1",
			Assignments: []model.RawTask{
				{Name: "PS 1", DueDate: "2026-09-03", Weight: 10},
				{Name: "Lab Report", DueDate: "2026-09-08", Weight: 5},
				{Name: "Reading 3", DueDate: "2026-09-04", Weight: 2, Status: model.StatusCompleted},
			},
			Exams: []model.RawTask{
				{Name: "Midterm 1", Date: "2026-09-10", Weight: "25"},
			},
		},
		{
			ID:     "rec-stats",
			Name:   "Intro Statistics",
			Code:   "STATS 2B03",
			UserID: "user-1",
			Assignments: []model.RawTask{
				{Name: "Quiz 2", DueDate: "2026-09-09", Weight: 8},
			},
		},
	}
}

func testUseCase(t *testing.T, repo *mockCourseRepo, store *mockCompletionStore) *implUseCase {
	t.Helper()
	dm := testParser(t)
	uc := New(&mockLogger{}, repo, store, dm)
	uc.clock = func() time.Time { return testNow(dm) }
	return uc
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Full Aggregation Pass", func(t *testing.T) {
		repo := &mockCourseRepo{
			listCoursesFunc: func(ctx context.Context, userID string) ([]model.CourseRecord, error) {
				if userID != "user-1" {
					t.Errorf("userID = %q", userID)
				}
				return testRecords(), nil
			},
		}
		uc := testUseCase(t, repo, &mockCompletionStore{})

		out, err := uc.Overview(ctx, sc)
		if err != nil {
			t.Fatalf("Overview: %v", err)
		}

		if len(out.Tasks) != 5 {
			t.Fatalf("expected 5 normalized tasks, got %d", len(out.Tasks))
		}
		// PS 1 is due soonest and incomplete, so it ranks first.
		var first string
		for _, rt := range out.Tasks {
			if rt.Priority == 1 {
				first = rt.Name
			}
		}
		if first != "PS 1" {
			t.Errorf("priority 1 = %q, want PS 1", first)
		}

		// Lab Report, Quiz 2 and Midterm 1 all land in the week of
		// Sunday Sep 6, which crosses the overload threshold.
		if out.Triage == nil || !out.Triage.IsActive {
			t.Fatal("expected active triage mode")
		}
		if len(out.Triage.Tasks) != 3 {
			t.Errorf("triage tasks = %d, want 3", len(out.Triage.Tasks))
		}

		// PS 1 is due tomorrow, which outranks the midterm head start.
		if out.Nudge == nil {
			t.Fatal("expected a live nudge")
		}
		if out.Nudge.Type != "warning" {
			t.Errorf("nudge type = %q, want warning", out.Nudge.Type)
		}
	})

	t.Run("Completion Overlay", func(t *testing.T) {
		repo := &mockCourseRepo{
			listCoursesFunc: func(ctx context.Context, userID string) ([]model.CourseRecord, error) {
				return testRecords(), nil
			},
		}
		store := &mockCompletionStore{
			snapshotFunc: func(ctx context.Context) (map[string]bool, error) {
				return map[string]bool{
					"rec-chem-PS 1":      true,  // completed locally
					"rec-chem-Reading 3": false, // un-completed locally
				}, nil
			},
		}
		uc := testUseCase(t, repo, store)

		out, err := uc.Overview(ctx, sc)
		if err != nil {
			t.Fatalf("Overview: %v", err)
		}

		byID := map[string]string{}
		for _, rt := range out.Tasks {
			byID[rt.ID] = rt.Status
		}
		if byID["rec-chem-PS 1"] != model.StatusCompleted {
			t.Errorf("PS 1 status = %q, want overlay completion", byID["rec-chem-PS 1"])
		}
		if byID["rec-chem-Reading 3"] != "Not Started" {
			t.Errorf("Reading 3 status = %q, want reverted default", byID["rec-chem-Reading 3"])
		}

		// With PS 1 complete the due-tomorrow rule cannot fire, so the
		// heavy midterm takes over.
		if out.Nudge == nil {
			t.Fatal("expected a live nudge")
		}
		if out.Nudge.Type == "warning" {
			t.Errorf("due-tomorrow warning fired for a completed task: %+v", out.Nudge)
		}
	})

	t.Run("Repository Error", func(t *testing.T) {
		repo := &mockCourseRepo{
			listCoursesFunc: func(ctx context.Context, userID string) ([]model.CourseRecord, error) {
				return nil, errors.New("upstream 502")
			},
		}
		uc := testUseCase(t, repo, &mockCompletionStore{})

		if _, err := uc.Overview(ctx, sc); err == nil {
			t.Error("expected error when the record store is down")
		}
	})

	t.Run("Cache Failure Degrades Gracefully", func(t *testing.T) {
		repo := &mockCourseRepo{
			listCoursesFunc: func(ctx context.Context, userID string) ([]model.CourseRecord, error) {
				return testRecords(), nil
			},
		}
		store := &mockCompletionStore{
			snapshotFunc: func(ctx context.Context) (map[string]bool, error) {
				return nil, errors.New("db locked")
			},
		}
		uc := testUseCase(t, repo, store)

		out, err := uc.Overview(ctx, sc)
		if err != nil {
			t.Fatalf("Overview should serve record statuses, got %v", err)
		}
		if len(out.Tasks) != 5 {
			t.Errorf("expected 5 tasks, got %d", len(out.Tasks))
		}
	})
}

func TestRankedTasks(t *testing.T) {
	repo := &mockCourseRepo{
		listCoursesFunc: func(ctx context.Context, userID string) ([]model.CourseRecord, error) {
			return testRecords(), nil
		},
	}
	uc := testUseCase(t, repo, &mockCompletionStore{})

	out, err := uc.RankedTasks(context.Background(), model.Scope{UserID: "user-1"})
	if err != nil {
		t.Fatalf("RankedTasks: %v", err)
	}

	ranked := 0
	for _, rt := range out.Tasks {
		if rt.Priority > 0 {
			ranked++
		}
	}
	// PS 1, Lab Report and Quiz 2 fall inside the 7-day window;
	// Reading 3 is complete and Midterm 1 is past the horizon.
	if ranked != 3 {
		t.Errorf("ranked tasks = %d, want 3", ranked)
	}
}

func TestTriageAndNudge(t *testing.T) {
	repo := &mockCourseRepo{
		listCoursesFunc: func(ctx context.Context, userID string) ([]model.CourseRecord, error) {
			return testRecords(), nil
		},
	}
	uc := testUseCase(t, repo, &mockCompletionStore{})
	sc := model.Scope{UserID: "user-1"}

	tri, err := uc.Triage(context.Background(), sc)
	if err != nil {
		t.Fatalf("Triage: %v", err)
	}
	if tri == nil || tri.Week != "Sep 6, 2026" {
		t.Errorf("unexpected triage: %+v", tri)
	}

	nudge, err := uc.Nudge(context.Background(), sc)
	if err != nil {
		t.Fatalf("Nudge: %v", err)
	}
	if nudge == nil {
		t.Fatal("expected a nudge")
	}
}

package engine_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/internal/deadline/engine"
	"study-deadline-engine/internal/model"
)

func courseTask(course, name string, tt model.TaskType, due time.Time, weight float64, status string) model.Task {
	id := "chat-" + course + "-" + name
	if tt == model.TaskTypeExam {
		id += "-exam"
	}
	return model.Task{
		ID: id, Type: tt, Name: name, Date: due,
		Course: course, CourseCode: strings.ToUpper(course), Weight: weight, Status: status,
	}
}

func TestGenerateNudge_NoTasks(t *testing.T) {
	dm := testParser(t)
	if got := engine.GenerateNudge(nil, testNow(dm), dm); got != nil {
		t.Errorf("expected nil nudge for empty task set, got %+v", got)
	}
}

func TestGenerateNudge_AllComplete(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)

	tasks := []model.Task{
		courseTask("bio", "A1", model.TaskTypeAssignment, now.AddDate(0, 0, 2), 10, model.StatusCompleted),
		courseTask("bio", "A2", model.TaskTypeAssignment, now.AddDate(0, 0, 4), 10, model.StatusCompleted),
	}

	got := engine.GenerateNudge(tasks, now, dm)
	if got == nil {
		t.Fatal("all-complete must produce a nudge, not nil")
	}
	if got.Type != deadline.NudgeOpportunity {
		t.Errorf("type = %s, want opportunity", got.Type)
	}
	if got.Priority != deadline.NudgePriorityLow {
		t.Errorf("priority = %s, want low", got.Priority)
	}
	if !strings.Contains(got.Message, "bio") {
		t.Errorf("message should point at a course with history: %s", got.Message)
	}
	if got.ActionHref == "" {
		t.Error("all-complete nudge carries a review action")
	}
}

func TestGenerateNudge_DueTomorrowWins(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm) // Wed Sep 2, noon

	// One task due tomorrow evening, one heavy task two days out: the
	// warning always beats the heavy-task opportunity.
	tomorrow := time.Date(2026, 9, 3, 18, 0, 0, 0, dm.Location())
	tasks := []model.Task{
		courseTask("chem", "Problem Set 4", model.TaskTypeAssignment, tomorrow, 10, model.StatusNotStarted),
		courseTask("phys", "Midterm", model.TaskTypeExam, now.AddDate(0, 0, 2), 30, model.StatusUpcoming),
	}

	got := engine.GenerateNudge(tasks, now, dm)
	if got == nil {
		t.Fatal("expected a nudge")
	}
	if got.Type != deadline.NudgeWarning {
		t.Fatalf("type = %s, want warning", got.Type)
	}
	if got.Priority != deadline.NudgePriorityHigh {
		t.Errorf("priority = %s, want high", got.Priority)
	}
	if !strings.Contains(got.Message, "Problem Set 4") || !strings.Contains(got.Message, "chem") {
		t.Errorf("warning must name task and course: %s", got.Message)
	}
}

func TestGenerateNudge_DueTomorrowWindowBoundaries(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)
	loc := dm.Location()

	cases := []struct {
		name string
		due  time.Time
		warn bool
	}{
		{"Tomorrow Midnight Inclusive", time.Date(2026, 9, 3, 0, 0, 0, 0, loc), true},
		{"Tomorrow Late Evening", time.Date(2026, 9, 3, 23, 30, 0, 0, loc), true},
		{"Day After Midnight Exclusive", time.Date(2026, 9, 4, 0, 0, 0, 0, loc), false},
		{"Later Today", time.Date(2026, 9, 2, 20, 0, 0, 0, loc), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tasks := []model.Task{
				courseTask("chem", "PS", model.TaskTypeAssignment, tc.due, 10, model.StatusNotStarted),
			}
			got := engine.GenerateNudge(tasks, now, dm)
			if got == nil {
				t.Fatal("expected a nudge")
			}
			isWarn := got.Type == deadline.NudgeWarning
			if isWarn != tc.warn {
				t.Errorf("due %v: warning = %v, want %v", tc.due, isWarn, tc.warn)
			}
		})
	}
}

func TestGenerateNudge_HeavyTaskPrepLinkage(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)

	t.Run("Completed Reading Unlocks Specific Followup", func(t *testing.T) {
		tasks := []model.Task{
			courseTask("chem", "Reading 3", model.TaskTypeAssignment, now.AddDate(0, 0, 1), 5, model.StatusCompleted),
			courseTask("chem", "Midterm 1", model.TaskTypeExam, now.AddDate(0, 0, 3), 25, model.StatusUpcoming),
		}

		got := engine.GenerateNudge(tasks, now, dm)
		if got == nil {
			t.Fatal("expected a nudge")
		}
		if got.Type != deadline.NudgeOpportunity || got.Priority != deadline.NudgePriorityHigh {
			t.Errorf("want high opportunity, got %s/%s", got.Type, got.Priority)
		}
		if !strings.Contains(got.Message, "Reading 3") {
			t.Errorf("message must reference the finished prep work: %s", got.Message)
		}
		if !strings.Contains(got.Message, "pre-exam review") {
			t.Errorf("exam follow-on should be a pre-exam review: %s", got.Message)
		}
	})

	t.Run("Lab Followup", func(t *testing.T) {
		tasks := []model.Task{
			courseTask("bio", "Prep notes", model.TaskTypeAssignment, now.AddDate(0, 0, 1), 5, model.StatusCompleted),
			courseTask("bio", "Lab 4 Report", model.TaskTypeAssignment, now.AddDate(0, 0, 2), 20, model.StatusNotStarted),
		}

		got := engine.GenerateNudge(tasks, now, dm)
		if got == nil {
			t.Fatal("expected a nudge")
		}
		if !strings.Contains(got.Message, "pre-lab quiz") {
			t.Errorf("lab follow-on should be the pre-lab quiz: %s", got.Message)
		}
	})

	t.Run("Prep In Other Course Does Not Count", func(t *testing.T) {
		tasks := []model.Task{
			courseTask("bio", "Reading 1", model.TaskTypeAssignment, now.AddDate(0, 0, 1), 5, model.StatusCompleted),
			courseTask("chem", "Midterm 1", model.TaskTypeExam, now.AddDate(0, 0, 3), 25, model.StatusUpcoming),
		}

		got := engine.GenerateNudge(tasks, now, dm)
		if got == nil {
			t.Fatal("expected a nudge")
		}
		if strings.Contains(got.Message, "Reading 1") {
			t.Errorf("cross-course prep must not link: %s", got.Message)
		}
		if got.Priority != deadline.NudgePriorityMedium {
			t.Errorf("want generic medium head start, got %s", got.Priority)
		}
	})
}

func TestGenerateNudge_HeavyTaskDistanceScaling(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)

	t.Run("Within Three Days Is Medium", func(t *testing.T) {
		tasks := []model.Task{
			courseTask("chem", "Midterm", model.TaskTypeExam, now.AddDate(0, 0, 3), 25, model.StatusUpcoming),
		}
		got := engine.GenerateNudge(tasks, now, dm)
		if got == nil || got.Priority != deadline.NudgePriorityMedium {
			t.Fatalf("want medium, got %+v", got)
		}
		if !strings.Contains(got.Message, "head start") {
			t.Errorf("want head-start framing: %s", got.Message)
		}
	})

	t.Run("Within Week Is Low", func(t *testing.T) {
		tasks := []model.Task{
			courseTask("chem", "Midterm", model.TaskTypeExam, now.AddDate(0, 0, 6), 25, model.StatusUpcoming),
		}
		got := engine.GenerateNudge(tasks, now, dm)
		if got == nil || got.Priority != deadline.NudgePriorityLow {
			t.Fatalf("want low, got %+v", got)
		}
	})

	t.Run("Beyond Week Falls Through", func(t *testing.T) {
		tasks := []model.Task{
			courseTask("chem", "Final", model.TaskTypeExam, now.AddDate(0, 0, 20), 40, model.StatusUpcoming),
		}
		got := engine.GenerateNudge(tasks, now, dm)
		if got == nil {
			t.Fatal("fallback must fire")
		}
		if !strings.Contains(got.Message, "Review") && !strings.Contains(got.Message, "concepts") {
			t.Errorf("distant deadline gets review framing: %s", got.Message)
		}
	})
}

func TestGenerateNudge_Fallback(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)

	t.Run("Near Light Task Gets Ahead Framing", func(t *testing.T) {
		tasks := []model.Task{
			courseTask("bio", "Quiz 1", model.TaskTypeAssignment, now.AddDate(0, 0, 4), 5, model.StatusNotStarted),
		}
		got := engine.GenerateNudge(tasks, now, dm)
		if got == nil {
			t.Fatal("expected fallback nudge")
		}
		if got.Type != deadline.NudgeOpportunity || got.Priority != deadline.NudgePriorityLow {
			t.Errorf("fallback is a low opportunity, got %s/%s", got.Type, got.Priority)
		}
		if !strings.Contains(got.Message, "Quiz 1") {
			t.Errorf("fallback names the earliest active task: %s", got.Message)
		}
	})

	t.Run("Distant Light Task Gets Review Framing", func(t *testing.T) {
		tasks := []model.Task{
			courseTask("bio", "Quiz 9", model.TaskTypeAssignment, now.AddDate(0, 0, 15), 5, model.StatusNotStarted),
		}
		got := engine.GenerateNudge(tasks, now, dm)
		if got == nil {
			t.Fatal("expected fallback nudge")
		}
		if !strings.Contains(got.Message, "concepts") {
			t.Errorf("distant fallback uses review framing: %s", got.Message)
		}
	})
}

// Spec scenario: a due-tomorrow assignment in course A beats a heavy
// exam with completed prep in course B; the warning always wins, even
// over the prep-linked opportunity.
func TestGenerateNudge_PrecedenceScenario(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)
	tomorrow := time.Date(2026, 9, 3, 17, 0, 0, 0, dm.Location())

	tasks := []model.Task{
		courseTask("history", "Essay Draft", model.TaskTypeAssignment, tomorrow, 20, model.StatusNotStarted),
		courseTask("chem", "Reading 3", model.TaskTypeAssignment, now.AddDate(0, 0, 1), 5, model.StatusCompleted),
		courseTask("chem", "Midterm", model.TaskTypeExam, now.AddDate(0, 0, 2), 25, model.StatusUpcoming),
	}

	got := engine.GenerateNudge(tasks, now, dm)
	if got == nil {
		t.Fatal("expected a nudge")
	}
	if got.Type != deadline.NudgeWarning {
		t.Errorf("due-tomorrow must win precedence, got %s", got.Type)
	}
	if !strings.Contains(got.Message, "Essay Draft") {
		t.Errorf("warning names the due-tomorrow task: %s", got.Message)
	}
}

func TestGenerateNudge_Idempotent(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)

	tasks := []model.Task{
		courseTask("bio", "Quiz 1", model.TaskTypeAssignment, now.AddDate(0, 0, 4), 5, model.StatusNotStarted),
		courseTask("chem", "Midterm", model.TaskTypeExam, now.AddDate(0, 0, 6), 25, model.StatusUpcoming),
	}

	first := engine.GenerateNudge(tasks, now, dm)
	second := engine.GenerateNudge(tasks, now, dm)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls with unchanged inputs must match:\n%+v\n%+v", first, second)
	}
}

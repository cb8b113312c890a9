package engine_test

import (
	"reflect"
	"testing"
	"time"

	"study-deadline-engine/internal/deadline/engine"
	"study-deadline-engine/internal/model"
)

func mkTask(name string, due time.Time, weight float64, status string) model.Task {
	return model.Task{
		ID:     "chat-1-" + name,
		Type:   model.TaskTypeAssignment,
		Name:   name,
		Date:   due,
		Course: "Biology",
		Weight: weight,
		Status: status,
	}
}

func TestRank_WindowAndOrder(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)

	tasks := []model.Task{
		mkTask("far", now.AddDate(0, 0, 12), 30, model.StatusNotStarted),
		mkTask("soon-light", now.AddDate(0, 0, 2), 5, model.StatusNotStarted),
		mkTask("done", now.AddDate(0, 0, 1), 40, model.StatusCompleted),
		mkTask("sooner", now.AddDate(0, 0, 1), 10, model.StatusNotStarted),
	}

	ranked := engine.Rank(tasks, now)
	if len(ranked) != len(tasks) {
		t.Fatalf("rank must return every task, got %d", len(ranked))
	}

	prios := map[string]int{}
	for _, r := range ranked {
		prios[r.Name] = r.Priority
	}

	if prios["sooner"] != 1 {
		t.Errorf("sooner priority = %d, want 1", prios["sooner"])
	}
	if prios["soon-light"] != 2 {
		t.Errorf("soon-light priority = %d, want 2", prios["soon-light"])
	}
	if prios["far"] != 0 {
		t.Errorf("outside-window task priority = %d, want 0", prios["far"])
	}
	if prios["done"] != 0 {
		t.Errorf("completed task priority = %d, want 0", prios["done"])
	}
}

func TestRank_WeightBreaksDateTies(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)
	due := now.AddDate(0, 0, 3)

	tasks := []model.Task{
		mkTask("light", due, 10, model.StatusNotStarted),
		mkTask("heavy", due, 25, model.StatusNotStarted),
	}

	ranked := engine.Rank(tasks, now)
	if ranked[1].Priority != 1 || ranked[0].Priority != 2 {
		t.Errorf("heavier task must outrank on equal dates: %+v", ranked)
	}
}

func TestRank_InputOrderBreaksFullTies(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)
	due := now.AddDate(0, 0, 3)

	tasks := []model.Task{
		mkTask("first", due, 10, model.StatusNotStarted),
		mkTask("second", due, 10, model.StatusNotStarted),
	}

	ranked := engine.Rank(tasks, now)
	if ranked[0].Priority != 1 || ranked[1].Priority != 2 {
		t.Errorf("input order must break residual ties: %+v", ranked)
	}
}

func TestRank_Deterministic(t *testing.T) {
	dm := testParser(t)
	now := testNow(dm)
	due := now.AddDate(0, 0, 2)

	tasks := []model.Task{
		mkTask("a", due, 15, model.StatusNotStarted),
		mkTask("b", due, 15, model.StatusNotStarted),
		mkTask("c", now.AddDate(0, 0, 5), 15, model.StatusNotStarted),
	}

	first := engine.Rank(tasks, now)
	second := engine.Rank(tasks, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("rank is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestRank_Empty(t *testing.T) {
	dm := testParser(t)
	if got := engine.Rank(nil, testNow(dm)); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

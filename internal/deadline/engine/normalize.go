// Package engine holds the pure deadline computations: normalization,
// priority ranking, overload detection, and nudge generation. Every
// function here is total over its documented inputs: invalid items are
// filtered, never raised.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"study-deadline-engine/internal/model"
	"study-deadline-engine/pkg/datemath"
)

// Normalize converts raw per-course records into the strict Task shape.
// Entries with a missing, "null", or unparseable date are dropped, as
// are entries due strictly before now. Pure function of its inputs.
func Normalize(records []model.CourseRecord, now time.Time, dm *datemath.Parser) []model.Task {
	tasks := make([]model.Task, 0)

	for _, rec := range records {
		for _, raw := range rec.Assignments {
			if t, ok := normalizeRaw(raw, rec, model.TaskTypeAssignment, now, dm); ok {
				tasks = append(tasks, t)
			}
		}
		for _, raw := range rec.Exams {
			if t, ok := normalizeRaw(raw, rec, model.TaskTypeExam, now, dm); ok {
				tasks = append(tasks, t)
			}
		}
	}

	return tasks
}

func normalizeRaw(raw model.RawTask, rec model.CourseRecord, tt model.TaskType, now time.Time, dm *datemath.Parser) (model.Task, bool) {
	dateStr := raw.DueDate
	if dateStr == "" {
		dateStr = raw.Date
	}

	due, ok := dm.ParseDue(dateStr)
	if !ok {
		return model.Task{}, false
	}
	// A pass yields future-or-present tasks only.
	if due.Before(now) {
		return model.Task{}, false
	}

	status := strings.TrimSpace(raw.Status)
	if status == "" {
		status = model.DefaultStatus(tt)
	}

	return model.Task{
		ID:         TaskID(rec.ID, raw.Name, tt),
		Type:       tt,
		Name:       raw.Name,
		Date:       due,
		Course:     rec.Name,
		CourseCode: rec.Code,
		Weight:     coerceWeight(raw.Weight, model.DefaultWeight(tt)),
		Status:     status,
	}, true
}

// TaskID builds the deterministic task identifier. Exams carry a type
// suffix so a same-named assignment/exam pair in one course cannot collide.
func TaskID(courseID, name string, tt model.TaskType) string {
	if tt == model.TaskTypeExam {
		return fmt.Sprintf("%s-%s-exam", courseID, name)
	}
	return fmt.Sprintf("%s-%s", courseID, name)
}

// coerceWeight accepts a numeric value or a numeric string; anything
// else falls back to the type default.
func coerceWeight(v interface{}, fallback float64) float64 {
	switch w := v.(type) {
	case float64:
		return w
	case float32:
		return float64(w)
	case int:
		return float64(w)
	case int64:
		return float64(w)
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(w), "%"))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return fallback
	default:
		return fallback
	}
}

package engine

import (
	"time"

	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/internal/model"
	"study-deadline-engine/pkg/datemath"
)

// nudgeContext is the shared input handed to each rule.
type nudgeContext struct {
	now    time.Time
	dm     *datemath.Parser
	tasks  []model.Task // full task set, completed included
	active []model.Task // tasks not marked Completed, input order preserved
}

// nudgeRule is one predicate+constructor pair. Fire returns nil when
// the rule does not apply.
type nudgeRule struct {
	name string
	fire func(nc nudgeContext) *deadline.NudgeSuggestion
}

// nudgeRules is evaluated in order, first match wins. The precedence is
// the visible contract: all-done praise, then due-tomorrow warnings,
// then heavy-deadline opportunities, then the generic fallback.
var nudgeRules = []nudgeRule{
	{name: "all_complete", fire: fireAllComplete},
	{name: "due_tomorrow", fire: fireDueTomorrow},
	{name: "heavy_task", fire: fireHeavyTask},
	{name: "fallback", fire: fireFallback},
}

// GenerateNudge derives the single live proactive suggestion for the
// given task set. Returns nil when there are no tasks at all; the
// presentation layer owns the empty-state framing. Idempotent for
// unchanged inputs.
func GenerateNudge(tasks []model.Task, now time.Time, dm *datemath.Parser) *deadline.NudgeSuggestion {
	if len(tasks) == 0 {
		return nil
	}

	nc := nudgeContext{now: now, dm: dm, tasks: tasks}
	for _, t := range tasks {
		if !t.Completed() {
			nc.active = append(nc.active, t)
		}
	}

	for _, rule := range nudgeRules {
		if n := rule.fire(nc); n != nil {
			return n
		}
	}
	return nil
}

// earliestActive returns the active task with the soonest date,
// breaking ties by input order.
func earliestActive(nc nudgeContext) *model.Task {
	var best *model.Task
	for i := range nc.active {
		t := &nc.active[i]
		if best == nil || t.Date.Before(best.Date) {
			best = t
		}
	}
	return best
}

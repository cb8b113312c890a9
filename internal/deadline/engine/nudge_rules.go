package engine

import (
	"fmt"
	"strings"

	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/internal/model"
)

// prepDays is the horizon within which heavy-deadline nudges escalate.
const prepDays = 3

// fireAllComplete praises a fully-done list and points at one course
// worth reviewing. Only fires when tasks exist but none are active.
func fireAllComplete(nc nudgeContext) *deadline.NudgeSuggestion {
	if len(nc.active) > 0 {
		return nil
	}

	course := nc.tasks[0].Course
	href := courseHref(nc.tasks[0])

	return &deadline.NudgeSuggestion{
		Type:       deadline.NudgeOpportunity,
		Message:    fmt.Sprintf("Everything on your list is done. Great time to review %s while it's fresh.", course),
		ActionText: "Review now",
		ActionHref: href,
		Priority:   deadline.NudgePriorityLow,
	}
}

// fireDueTomorrow warns about the first active task falling inside the
// 24-hour window that starts at tomorrow 00:00 local.
func fireDueTomorrow(nc nudgeContext) *deadline.NudgeSuggestion {
	start, end := nc.dm.TomorrowWindow(nc.now)

	for i := range nc.active {
		t := &nc.active[i]
		if t.Date.Before(start) || !t.Date.Before(end) {
			continue
		}
		return &deadline.NudgeSuggestion{
			Type:       deadline.NudgeWarning,
			Message:    fmt.Sprintf("%q for %s is due tomorrow. Make sure you're ready to submit.", t.Name, t.Course),
			ActionText: "Open course",
			ActionHref: courseHref(*t),
			Priority:   deadline.NudgePriorityHigh,
		}
	}
	return nil
}

// fireHeavyTask looks at the earliest active heavy task (weight >=
// HeavyWeight). If the user already finished preparatory work in the
// same course and the deadline is close, it proposes the specific
// follow-on activity; otherwise it suggests a head start, with urgency
// scaled by distance.
func fireHeavyTask(nc nudgeContext) *deadline.NudgeSuggestion {
	var heavy *model.Task
	for i := range nc.active {
		t := &nc.active[i]
		if t.Weight < HeavyWeight {
			continue
		}
		if heavy == nil || t.Date.Before(heavy.Date) {
			heavy = t
		}
	}
	if heavy == nil {
		return nil
	}

	days := nc.dm.WholeDaysUntil(nc.now, heavy.Date)

	if days >= 1 && days <= 7 {
		if prep := completedPrepInCourse(nc.tasks, heavy.Course); prep != nil && days <= prepDays {
			return &deadline.NudgeSuggestion{
				Type: deadline.NudgeOpportunity,
				Message: fmt.Sprintf("You've already finished %q for %s — perfect momentum to start %s for %q.",
					prep.Name, heavy.Course, followOnActivity(heavy), heavy.Name),
				ActionText: "Start now",
				ActionHref: courseHref(*heavy),
				Priority:   deadline.NudgePriorityHigh,
			}
		}
	}

	if days <= prepDays {
		return headStartNudge(heavy, days, deadline.NudgePriorityMedium)
	}
	if days <= 7 {
		return headStartNudge(heavy, days, deadline.NudgePriorityLow)
	}
	return nil
}

// fireFallback always produces something when an active task remains:
// "get ahead" framing inside the week, "review concepts" beyond it.
func fireFallback(nc nudgeContext) *deadline.NudgeSuggestion {
	next := earliestActive(nc)
	if next == nil {
		return nil
	}

	days := nc.dm.WholeDaysUntil(nc.now, next.Date)

	var msg string
	if days <= 7 {
		msg = fmt.Sprintf("Your next deadline, %q, is coming up on %s. A bit of progress today keeps you ahead.",
			next.Name, next.Date.Weekday())
	} else {
		msg = fmt.Sprintf("Nothing urgent this week. Review recent %s concepts so %q feels easy later.",
			next.Course, next.Name)
	}

	return &deadline.NudgeSuggestion{
		Type:       deadline.NudgeOpportunity,
		Message:    msg,
		ActionText: "Open course",
		ActionHref: courseHref(*next),
		Priority:   deadline.NudgePriorityLow,
	}
}

// completedPrepInCourse finds a completed task in the course whose name
// suggests preparatory work.
func completedPrepInCourse(tasks []model.Task, course string) *model.Task {
	for i := range tasks {
		t := &tasks[i]
		if !t.Completed() || t.Course != course {
			continue
		}
		name := strings.ToLower(t.Name)
		if strings.Contains(name, "reading") || strings.Contains(name, "prep") {
			return t
		}
	}
	return nil
}

// followOnActivity names the concrete next step for a heavy task.
func followOnActivity(t *model.Task) string {
	switch {
	case t.Type == model.TaskTypeExam:
		return "a pre-exam review"
	case strings.Contains(strings.ToLower(t.Name), "lab"):
		return "the pre-lab quiz"
	default:
		return "focused prep"
	}
}

func headStartNudge(t *model.Task, days int, prio deadline.NudgePriority) *deadline.NudgeSuggestion {
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return &deadline.NudgeSuggestion{
		Type:       deadline.NudgeOpportunity,
		Message:    fmt.Sprintf("%q is %d %s away. Get a head start today.", t.Name, days, unit),
		ActionText: "Start now",
		ActionHref: courseHref(*t),
		Priority:   prio,
	}
}

// courseHref builds the opaque deep link the UI attaches to a nudge's
// call-to-action.
func courseHref(t model.Task) string {
	if t.CourseCode == "" {
		return ""
	}
	return "/courses/" + t.CourseCode
}

package engine

import (
	"fmt"
	"sort"
	"time"

	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/internal/model"
	"study-deadline-engine/pkg/datemath"
)

const (
	// TriageThreshold is the inclusive per-week task count that
	// activates triage mode.
	TriageThreshold = 3

	// HeavyWeight splits a week's tasks into heavy (>=) and light (<)
	// when building the restructuring suggestion.
	HeavyWeight = 15
)

// weekLabelFormat renders a week's Sunday anchor as its human label.
// The presentation layer uses the label as its shown-once key, so it
// must be unique across years.
const weekLabelFormat = "Jan 2, 2006"

// DetectOverload groups all tasks by Sunday-anchored calendar week and
// reports the first week (ascending) holding TriageThreshold or more.
// Completion status is ignored: a week of done and pending work was
// still scheduled as one week. Detection stops at the first match on
// purpose: simultaneous triage weeks are never reported, and repeated
// calls return the same week until the data changes; shown-once
// bookkeeping belongs to the caller.
func DetectOverload(tasks []model.Task, dm *datemath.Parser) *deadline.TriageMode {
	if len(tasks) == 0 {
		return nil
	}

	weeks := make(map[time.Time][]model.Task)
	for _, t := range tasks {
		anchor := dm.WeekAnchor(t.Date)
		weeks[anchor] = append(weeks[anchor], t)
	}

	anchors := make([]time.Time, 0, len(weeks))
	for anchor := range weeks {
		anchors = append(anchors, anchor)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Before(anchors[j]) })

	for _, anchor := range anchors {
		group := weeks[anchor]
		if len(group) < TriageThreshold {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool { return group[i].Date.Before(group[j].Date) })

		return &deadline.TriageMode{
			IsActive:   true,
			Week:       anchor.Format(weekLabelFormat),
			WeekStart:  anchor,
			Tasks:      group,
			Suggestion: buildSuggestion(group, anchor),
		}
	}

	return nil
}

// buildSuggestion proposes moving the first light task out of the way
// of the heaviest one, when the week splits that way; otherwise it
// falls back to a generic chunking recommendation.
func buildSuggestion(group []model.Task, anchor time.Time) string {
	var light *model.Task
	var heavy *model.Task

	for i := range group {
		t := &group[i]
		if t.Weight >= HeavyWeight {
			if heavy == nil || t.Weight > heavy.Weight {
				heavy = t
			}
		} else if light == nil {
			light = t
		}
	}

	week := anchor.Format(weekLabelFormat)

	if light != nil && heavy != nil {
		heavyLabel := "major assignment"
		if heavy.Type == model.TaskTypeExam {
			heavyLabel = "midterm"
		}
		return fmt.Sprintf(
			"You have %d deadlines the week of %s. Try finishing %q a few days early so you're free for the %s on %s.",
			len(group), week, light.Name, heavyLabel, heavy.Date.Weekday(),
		)
	}

	return fmt.Sprintf(
		"You have %d deadlines the week of %s. Break each one into smaller chunks and start early.",
		len(group), week,
	)
}

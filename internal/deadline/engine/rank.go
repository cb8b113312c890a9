package engine

import (
	"sort"
	"time"

	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/internal/model"
)

// LookaheadWindow is the horizon within which tasks receive priority ranks.
const LookaheadWindow = 7 * 24 * time.Hour

// Rank assigns relative priority ranks to tasks due within the
// lookahead window, excluding completed tasks. Qualifying tasks are
// ordered by earlier date, then higher weight, then original input
// position. That ordering is total, so two calls on the same input
// always produce the same assignment. Everything else carries priority 0.
func Rank(tasks []model.Task, now time.Time) []deadline.PriorityRankedTask {
	horizon := now.Add(LookaheadWindow)

	ranked := make([]deadline.PriorityRankedTask, len(tasks))
	for i, t := range tasks {
		ranked[i] = deadline.PriorityRankedTask{Task: t}
	}

	idx := make([]int, 0, len(tasks))
	for i, t := range tasks {
		if t.Completed() {
			continue
		}
		if t.Date.After(horizon) {
			continue
		}
		idx = append(idx, i)
	}

	sort.SliceStable(idx, func(a, b int) bool {
		ta, tb := tasks[idx[a]], tasks[idx[b]]
		if !ta.Date.Equal(tb.Date) {
			return ta.Date.Before(tb.Date)
		}
		if ta.Weight != tb.Weight {
			return ta.Weight > tb.Weight
		}
		// Final tiebreak: original collection order.
		return idx[a] < idx[b]
	})

	for rank, i := range idx {
		ranked[i].Priority = rank + 1
	}

	return ranked
}

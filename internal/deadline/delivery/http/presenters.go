package http

import (
	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/internal/model"
	"study-deadline-engine/pkg/response"
)

// --- Request DTOs ---

type toggleReq struct {
	TaskID string `json:"-"` // populated from URI param
}

func (r toggleReq) toInput() deadline.ToggleInput {
	return deadline.ToggleInput{TaskID: r.TaskID}
}

// --- Response DTOs ---

type taskResp struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Name       string        `json:"name"`
	Date       response.Date `json:"date"`
	Course     string        `json:"course"`
	CourseCode string        `json:"courseCode"`
	Weight     float64       `json:"weight"`
	Status     string        `json:"status"`
	Priority   int           `json:"priority,omitempty"`
}

func newTaskResp(t model.Task, priority int) taskResp {
	return taskResp{
		ID:         t.ID,
		Type:       string(t.Type),
		Name:       t.Name,
		Date:       response.Date(t.Date),
		Course:     t.Course,
		CourseCode: t.CourseCode,
		Weight:     t.Weight,
		Status:     t.Status,
		Priority:   priority,
	}
}

type triageResp struct {
	IsActive   bool          `json:"isActive"`
	Week       string        `json:"week"`
	WeekStart  response.Date `json:"weekStart"`
	Tasks      []taskResp    `json:"tasks"`
	Suggestion string        `json:"suggestion"`
}

func newTriageResp(t *deadline.TriageMode) *triageResp {
	if t == nil {
		return nil
	}
	tasks := make([]taskResp, 0, len(t.Tasks))
	for _, tk := range t.Tasks {
		tasks = append(tasks, newTaskResp(tk, 0))
	}
	return &triageResp{
		IsActive:   t.IsActive,
		Week:       t.Week,
		WeekStart:  response.Date(t.WeekStart),
		Tasks:      tasks,
		Suggestion: t.Suggestion,
	}
}

type nudgeResp struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	ActionText string `json:"actionText,omitempty"`
	ActionHref string `json:"actionHref,omitempty"`
	Priority   string `json:"priority"`
}

func newNudgeResp(n *deadline.NudgeSuggestion) *nudgeResp {
	if n == nil {
		return nil
	}
	return &nudgeResp{
		Type:       string(n.Type),
		Message:    n.Message,
		ActionText: n.ActionText,
		ActionHref: n.ActionHref,
		Priority:   string(n.Priority),
	}
}

type overviewResp struct {
	Tasks  []taskResp  `json:"tasks"`
	Triage *triageResp `json:"triage"`
	Nudge  *nudgeResp  `json:"nudge"`
}

func (h *handler) newOverviewResp(o deadline.OverviewOutput) overviewResp {
	return overviewResp{
		Tasks:  newRankedTasks(o.Tasks),
		Triage: newTriageResp(o.Triage),
		Nudge:  newNudgeResp(o.Nudge),
	}
}

type rankedResp struct {
	Tasks []taskResp `json:"tasks"`
}

func newRankedTasks(tasks []deadline.PriorityRankedTask) []taskResp {
	out := make([]taskResp, 0, len(tasks))
	for _, rt := range tasks {
		out = append(out, newTaskResp(rt.Task, rt.Priority))
	}
	return out
}

type toggleResp struct {
	TaskID    string `json:"taskId"`
	Completed bool   `json:"completed"`
	NewStatus string `json:"newStatus"`
	State     string `json:"state"`
}

func newToggleResp(o deadline.ToggleOutput) toggleResp {
	return toggleResp{
		TaskID:    o.TaskID,
		Completed: o.Completed,
		NewStatus: o.NewStatus,
		State:     string(o.State),
	}
}

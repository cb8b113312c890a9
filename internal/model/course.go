package model

import "time"

// RawTask is a loosely-shaped assignment or exam entry as stored by the
// document-ingestion pipeline. Most fields are optional and weight may
// arrive as a number or a numeric string; the normalizer is the single
// boundary that turns these into strict Tasks.
type RawTask struct {
	Name        string      `json:"name"`
	DueDate     string      `json:"dueDate,omitempty"` // assignments
	Date        string      `json:"date,omitempty"`    // exams
	Weight      interface{} `json:"weight,omitempty"`  // number or numeric string
	Status      string      `json:"status,omitempty"`
	Description string      `json:"description,omitempty"`
}

// CourseRecord is one course's deadline data as owned by the course
// record store. Read-only to the engine except for the single status
// field touched by completion toggles.
type CourseRecord struct {
	ID          string
	Name        string
	Code        string
	UserID      string // ownership stamp; empty on records created before stamping existed
	Assignments []RawTask
	Exams       []RawTask
	UpdatedAt   time.Time
}

// Package model defines domain types for the daybook planner and ledger.
package model

import "time"

// Status is the lifecycle state of an action.
type Status string

const (
	StatusActive    Status = "active"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Priority ranks an action's urgency.
type Priority string

const (
	PriorityCanWait      Priority = "can_wait"
	PriorityNotImportant Priority = "not_important"
	PriorityImportant    Priority = "important"
	PriorityCritical     Priority = "critical"
	PriorityUrgent       Priority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCanWait, PriorityNotImportant, PriorityImportant, PriorityCritical, PriorityUrgent:
		return true
	}
	return false
}

// Label returns a human-readable name for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityCanWait:
		return "Can wait"
	case PriorityNotImportant:
		return "Normal"
	case PriorityImportant:
		return "Important"
	case PriorityCritical:
		return "Critical"
	case PriorityUrgent:
		return "Urgent"
	}
	return string(p)
}

// Subtask is a checklist item inside an action.
type Subtask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// Action is a user task, optionally scheduled to a calendar date and
// clock time, optionally linked to a planning step and a life sphere.
type Action struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date,omitempty"` // YYYY-MM-DD, empty = unscheduled
	Time        string    `json:"time,omitempty"` // zero-padded HH:MM, empty = untimed
	Priority    Priority  `json:"priority"`
	StepID      string    `json:"stepId,omitempty"`
	SphereID    string    `json:"sphereId,omitempty"`
	Subtasks    []Subtask `json:"subtasks,omitempty"`
	Status      Status    `json:"status"`
	// SortOrder establishes stable manual ordering among untimed actions
	// on the same day. Defaults to the creation unix-milli timestamp.
	SortOrder   int64      `json:"sortOrder"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"` // set iff Status == done
}

// SubtaskProgress returns completed and total subtask counts.
func (a Action) SubtaskProgress() (done, total int) {
	for _, s := range a.Subtasks {
		if s.IsCompleted {
			done++
		}
	}
	return done, len(a.Subtasks)
}

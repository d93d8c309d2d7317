package task

import "time"

// Status represents the workflow state of a task.
type Status int

const (
	StatusToDo Status = iota
	StatusInProgress
	StatusTesting
	StatusDone
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusToDo:
		return "ToDo"
	case StatusInProgress:
		return "InProgress"
	case StatusTesting:
		return "Testing"
	case StatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Priority represents task urgency, ordered Low < Medium < High < Critical.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// String returns the display name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Task is the core domain entity representing a tracked work item.
//
// ID is assigned by the repository and is stable for the task's lifetime.
// CreatedDate is stamped at insertion and never overwritten by updates.
// AssignedToUserID and CreatedByUserID reference the user directory but are
// not validated against it; dangling references are tolerated.
type Task struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Status           Status     `json:"status"`
	Priority         Priority   `json:"priority"`
	CreatedDate      time.Time  `json:"created_date"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	AssignedToUserID int        `json:"assigned_to_user_id"`
	CreatedByUserID  int        `json:"created_by_user_id"`
	IsStarred        bool       `json:"is_starred"`
}

// Clone returns an independent copy of the task. Mutating the copy never
// affects the stored instance.
func (t *Task) Clone() *Task {
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

// IsOverdue reports whether the task's due date is strictly before now and
// the task is not Done. Done tasks are never overdue regardless of date.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusDone
}

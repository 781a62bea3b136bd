package model

// Status is the workflow stage of a task. The values are the display
// labels and are persisted as-is.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in board column order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusCompleted}

func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string { return string(p) }

// Defaults applied when the form has no selection.
const (
	DefaultStatus   = StatusToDo
	DefaultPriority = PriorityMedium
)

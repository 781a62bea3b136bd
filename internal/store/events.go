package store

import "taskboard/internal/model"

type ChangeKind string

const (
	TaskCreated ChangeKind = "task_created"
	TaskUpdated ChangeKind = "task_updated"
	TaskDeleted ChangeKind = "task_deleted"
)

// Change is emitted after every successful mutation.
type Change struct {
	Kind ChangeKind `json:"type"`
	Task model.Task `json:"task"`
}

// Listener receives changes synchronously, after the store lock is released.
type Listener func(Change)

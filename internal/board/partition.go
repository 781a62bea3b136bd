// Package board groups tasks into status columns and turns drag-and-drop
// gestures between columns into status updates.
package board

import "taskboard/internal/model"

// Buckets maps every status to its tasks in snapshot order.
type Buckets map[model.Status][]model.Task

// Column is a bucket in display position.
type Column struct {
	Status model.Status `json:"status"`
	Tasks  []model.Task `json:"tasks"`
}

// Partition places each task in the bucket of its status. All statuses are
// present in the result, possibly with an empty slice.
func Partition(tasks []model.Task) Buckets {
	b := make(Buckets, len(model.Statuses))
	for _, s := range model.Statuses {
		b[s] = []model.Task{}
	}
	for _, t := range tasks {
		if _, ok := b[t.Status]; ok {
			b[t.Status] = append(b[t.Status], t)
		}
	}
	return b
}

// Columns returns the buckets in board order: To Do, In Progress, Completed.
func (b Buckets) Columns() []Column {
	cols := make([]Column, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		tasks := b[s]
		if tasks == nil {
			tasks = []model.Task{}
		}
		cols = append(cols, Column{Status: s, Tasks: tasks})
	}
	return cols
}

// At returns the task at a bucket-relative index.
func (b Buckets) At(p Position) (model.Task, bool) {
	tasks := b[p.Bucket]
	if p.Index < 0 || p.Index >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[p.Index], true
}

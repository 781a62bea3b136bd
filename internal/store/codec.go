package store

import (
	"fmt"

	"github.com/bytedance/sonic"

	"taskboard/internal/model"
)

// Encode serializes the full collection as a JSON array.
func Encode(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return sonic.Marshal(tasks)
}

// Decode parses a blob produced by Encode. Every record must pass
// validation and IDs must be unique.
func Decode(data []byte) ([]model.Task, error) {
	var tasks []model.Task
	if err := sonic.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("task %d: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

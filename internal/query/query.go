// Package query filters and sorts task snapshots. Functions never modify
// their input.
package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"taskboard/internal/model"
)

// All disables filtering on a dimension. The zero value does the same.
const All = "All"

var ErrUnknownSortKey = errors.New("unknown sort key")

type SortKey string

const (
	SortByDueDate  SortKey = "dueDate"
	SortByStatus   SortKey = "status"
	SortByPriority SortKey = "priority"
)

// DefaultSort matches the list view's initial ordering.
const DefaultSort = SortByDueDate

// Criteria selects tasks by status and priority; both must match.
type Criteria struct {
	Status   model.Status
	Priority model.Priority
}

// ParseCriteria builds Criteria from raw filter values. Empty strings and
// "All" mean no filter.
func ParseCriteria(status, priority string) (Criteria, error) {
	var c Criteria
	if status != "" && status != All {
		s := model.Status(status)
		if !s.Valid() {
			return Criteria{}, model.NewValidationError(model.FieldError{Field: "status", Rule: "status"})
		}
		c.Status = s
	}
	if priority != "" && priority != All {
		p := model.Priority(priority)
		if !p.Valid() {
			return Criteria{}, model.NewValidationError(model.FieldError{Field: "priority", Rule: "priority"})
		}
		c.Priority = p
	}
	return c, nil
}

func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return DefaultSort, nil
	}
	switch k := SortKey(s); k {
	case SortByDueDate, SortByStatus, SortByPriority:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

func (c Criteria) matches(t model.Task) bool {
	if c.Status != "" && string(c.Status) != All && t.Status != c.Status {
		return false
	}
	if c.Priority != "" && string(c.Priority) != All && t.Priority != c.Priority {
		return false
	}
	return true
}

// Filter returns the tasks matching c, preserving their order.
func Filter(tasks []model.Task, c Criteria) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Sort returns a stably sorted copy of tasks.
//
// By due date, tasks without one sort as if due at the Unix epoch. By status
// or priority, the display labels are compared lexicographically.
func Sort(tasks []model.Task, key SortKey) ([]model.Task, error) {
	var compare func(a, b model.Task) int
	switch key {
	case SortByDueDate:
		compare = compareDue
	case SortByStatus:
		compare = func(a, b model.Task) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case SortByPriority:
		compare = func(a, b model.Task) int { return strings.Compare(string(a.Priority), string(b.Priority)) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}

	out := slices.Clone(tasks)
	if out == nil {
		out = []model.Task{}
	}
	slices.SortStableFunc(out, compare)
	return out, nil
}

// Apply filters, then sorts.
func Apply(tasks []model.Task, c Criteria, key SortKey) ([]model.Task, error) {
	return Sort(Filter(tasks, c), key)
}

// compareDue orders undated tasks before every dated one, including dates
// before 1970.
func compareDue(a, b model.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return -1
	case b.DueDate == nil:
		return 1
	}
	return a.DueDate.Compare(b.DueDate.Time)
}

package query_test

import (
	"testing"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func due(y int, m time.Month, d int) *model.Date {
	date := model.NewDate(y, m, d)
	return &date
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func sample() []model.Task {
	return []model.Task{
		{ID: "1", Title: "a", Status: model.StatusToDo, Priority: model.PriorityHigh, DueDate: due(2024, 3, 1)},
		{ID: "2", Title: "b", Status: model.StatusCompleted, Priority: model.PriorityLow},
		{ID: "3", Title: "c", Status: model.StatusInProgress, Priority: model.PriorityMedium, DueDate: due(2024, 1, 15)},
		{ID: "4", Title: "d", Status: model.StatusToDo, Priority: model.PriorityLow, DueDate: due(2024, 1, 15)},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria query.Criteria
		want     []string
	}{
		{"all", query.Criteria{}, []string{"1", "2", "3", "4"}},
		{"explicit all", query.Criteria{Status: query.All, Priority: query.All}, []string{"1", "2", "3", "4"}},
		{"status", query.Criteria{Status: model.StatusToDo}, []string{"1", "4"}},
		{"priority", query.Criteria{Priority: model.PriorityLow}, []string{"2", "4"}},
		{"both", query.Criteria{Status: model.StatusToDo, Priority: model.PriorityLow}, []string{"4"}},
		{"none", query.Criteria{Status: model.StatusCompleted, Priority: model.PriorityHigh}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(query.Filter(sample(), tt.criteria)))
		})
	}
}

func TestSort_DueDatePutsMissingFirstAndIsStable(t *testing.T) {
	tasks := []model.Task{
		{ID: "A", DueDate: due(2024, 1, 1)},
		{ID: "B"},
		{ID: "C", DueDate: due(2024, 1, 1)},
	}

	got, err := query.Sort(tasks, query.SortByDueDate)

	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, ids(got))
	assert.Equal(t, []string{"A", "B", "C"}, ids(tasks), "input must not be reordered")
}

func TestSort_DueDateMissingBeforePre1970(t *testing.T) {
	tasks := []model.Task{
		{ID: "old", DueDate: due(1969, time.July, 20)},
		{ID: "none"},
		{ID: "new", DueDate: due(2024, time.May, 1)},
	}

	got, err := query.Sort(tasks, query.SortByDueDate)

	require.NoError(t, err)
	assert.Equal(t, []string{"none", "old", "new"}, ids(got))
}

func TestSort_ByLabels(t *testing.T) {
	byStatus, err := query.Sort(sample(), query.SortByStatus)
	require.NoError(t, err)
	// Completed < In Progress < To Do
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(byStatus))

	byPriority, err := query.Sort(sample(), query.SortByPriority)
	require.NoError(t, err)
	// High < Low < Medium
	assert.Equal(t, []string{"1", "2", "4", "3"}, ids(byPriority))
}

func TestSort_EmptyLabelSortsFirst(t *testing.T) {
	tasks := []model.Task{{ID: "x", Status: model.StatusToDo}, {ID: "y"}}

	got, err := query.Sort(tasks, query.SortByStatus)

	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, ids(got))
}

func TestSort_UnknownKey(t *testing.T) {
	_, err := query.Sort(sample(), "title")
	assert.ErrorIs(t, err, query.ErrUnknownSortKey)
}

func TestApply_FiltersBeforeSorting(t *testing.T) {
	got, err := query.Apply(sample(), query.Criteria{Status: model.StatusToDo}, query.SortByDueDate)

	require.NoError(t, err)
	assert.Equal(t, []string{"4", "1"}, ids(got))
}

func TestParseCriteria(t *testing.T) {
	c, err := query.ParseCriteria("All", "")
	require.NoError(t, err)
	assert.Equal(t, query.Criteria{}, c)

	c, err = query.ParseCriteria("In Progress", "High")
	require.NoError(t, err)
	assert.Equal(t, query.Criteria{Status: model.StatusInProgress, Priority: model.PriorityHigh}, c)

	_, err = query.ParseCriteria("Doing", "")
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestParseSortKey(t *testing.T) {
	k, err := query.ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, query.SortByDueDate, k)

	k, err = query.ParseSortKey("priority")
	require.NoError(t, err)
	assert.Equal(t, query.SortByPriority, k)

	_, err = query.ParseSortKey("title")
	assert.ErrorIs(t, err, query.ErrUnknownSortKey)
}

package model

// TaskDraft is a task payload that has not been assigned an ID yet.
type TaskDraft struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Description string   `json:"description,omitempty"`
	Status      Status   `json:"status" validate:"status"`
	Priority    Priority `json:"priority" validate:"priority"`
	DueDate     *Date    `json:"dueDate,omitempty"`
}

type Task struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required,notblank"`
	Description string   `json:"description,omitempty"`
	Status      Status   `json:"status" validate:"status"`
	Priority    Priority `json:"priority" validate:"priority"`
	DueDate     *Date    `json:"dueDate,omitempty"`
}

// WithID turns the draft into a full record.
func (d TaskDraft) WithID(id string) Task {
	return Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Status:      d.Status,
		Priority:    d.Priority,
		DueDate:     d.DueDate.clone(),
	}
}

// Draft strips the ID, e.g. to prefill an edit form.
func (t Task) Draft() TaskDraft {
	return TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate.clone(),
	}
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	t.DueDate = t.DueDate.clone()
	return t
}

func (d TaskDraft) Validate() error {
	return validateStruct(d)
}

func (t Task) Validate() error {
	return validateStruct(t)
}

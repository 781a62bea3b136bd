// Package form converts submitted task forms into validated drafts.
package form

import (
	"errors"
	"strings"

	"taskboard/internal/model"
)

// Input is the task form as submitted: every field is raw text.
type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// FromTask prefills the form for editing t.
func FromTask(t model.Task) Input {
	in := Input{
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
	}
	if t.DueDate != nil {
		in.DueDate = t.DueDate.String()
	}
	return in
}

// Draft validates the input. Empty status and priority fall back to
// To Do and Medium; an empty due date means none.
func (in Input) Draft() (model.TaskDraft, error) {
	d := model.TaskDraft{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      model.Status(in.Status),
		Priority:    model.Priority(in.Priority),
	}
	if d.Status == "" {
		d.Status = model.DefaultStatus
	}
	if d.Priority == "" {
		d.Priority = model.DefaultPriority
	}

	var fields []model.FieldError
	if due := strings.TrimSpace(in.DueDate); due != "" {
		date, err := model.ParseDate(due)
		if err != nil {
			fields = append(fields, model.FieldError{Field: "dueDate", Rule: "date"})
		} else {
			d.DueDate = &date
		}
	}

	if err := d.Validate(); err != nil {
		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			return model.TaskDraft{}, err
		}
		fields = append(verr.Fields(), fields...)
	}
	if len(fields) > 0 {
		return model.TaskDraft{}, model.NewValidationError(fields...)
	}
	return d, nil
}

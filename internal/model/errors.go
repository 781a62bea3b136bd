package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/hashicorp/go-multierror"
)

// FieldError describes one failed constraint of a task payload.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

// ValidationError is returned when a payload violates the task constraints.
// It never reaches persistence.
type ValidationError struct {
	errs *multierror.Error
}

func NewValidationError(fields ...FieldError) *ValidationError {
	var merr *multierror.Error
	for _, f := range fields {
		merr = multierror.Append(merr, f)
	}
	if merr != nil {
		merr.ErrorFormat = joinFieldErrors
	}
	return &ValidationError{errs: merr}
}

func (e *ValidationError) Error() string {
	if e.errs == nil {
		return "invalid task"
	}
	return "invalid task: " + e.errs.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.errs.ErrorOrNil()
}

// Fields lists the individual failures in validation order.
func (e *ValidationError) Fields() []FieldError {
	if e.errs == nil {
		return nil
	}
	out := make([]FieldError, 0, len(e.errs.Errors))
	for _, err := range e.errs.Errors {
		var fe FieldError
		if errors.As(err, &fe) {
			out = append(out, fe)
		}
	}
	return out
}

func joinFieldErrors(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "status", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	})
	mustRegister(v, "priority", func(fl validator.FieldLevel) bool {
		return Priority(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("model: register %s validation: %v", tag, err))
	}
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
	}
	return NewValidationError(fields...)
}

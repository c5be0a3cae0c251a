package model

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")
	ErrEmptyCart        = errors.New("shopping cart is empty")

	ErrSelfFollow     = fmt.Errorf("%w: cannot subscribe to yourself", ErrConflict)
	ErrAmountOverflow = errors.New("ingredient amount overflow")
)

// ValidationError carries every violated rule of a rejected payload.
type ValidationError struct {
	errs error
}

func NewValidationError(violations ...error) *ValidationError {
	return &ValidationError{errs: multierr.Combine(violations...)}
}

// Add records another violation. Nil errors are ignored.
func (v *ValidationError) Add(err error) {
	v.errs = multierr.Append(v.errs, err)
}

func (v *ValidationError) Addf(format string, args ...any) {
	v.Add(fmt.Errorf(format, args...))
}

// Err returns nil when nothing was recorded, so callers can return it directly.
func (v *ValidationError) Err() error {
	if v == nil || v.errs == nil {
		return nil
	}

	return v
}

func (v *ValidationError) Violations() []string {
	errs := multierr.Errors(v.errs)
	messages := make([]string, 0, len(errs))

	for _, err := range errs {
		messages = append(messages, err.Error())
	}

	return messages
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), v.errs.Error())
}

func (v *ValidationError) Unwrap() error {
	return ErrValidation
}

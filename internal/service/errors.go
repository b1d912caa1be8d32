package service

import (
	"errors"
	"strings"

	"github.com/dayanaadylkhanova/sales-stats/internal/entity"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidRange = errors.New("days must be greater than zero")
	ErrNotFound     = errors.New("no sales found in the given period")
)

// ValidationError lists the rejected fields of a request. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Fields []entity.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

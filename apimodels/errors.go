package apimodels

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError collects every field error found in a request body.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError(field, msg, typ string) *ValidationError {
	var verr ValidationError
	verr.add(field, msg, typ)
	return &verr
}

func (e *ValidationError) add(field, msg, typ string) {
	loc := []string{"body"}
	if field != "" {
		loc = append(loc, field)
	}
	e.Errors = append(e.Errors, FieldError{Loc: loc, Msg: msg, Type: typ})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

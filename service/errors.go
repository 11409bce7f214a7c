package service

import (
	"errors"
	"strings"
)

// ValidationError reports which request fields violated the schema.
// Handlers surface it as a 400 with the field list; no storage call is
// made when validation fails.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// AsValidationError unwraps a ValidationError from an error chain
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

package application

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation signals the submission violated a required-field rule. A batch
// fails as a whole: nothing from it is persisted.
var ErrValidation = errors.New("order validation failed")

// ValidationError lists every offending entry of a rejected batch.
type ValidationError struct {
	// Fields maps "<index>.<field>" to the reason it was rejected.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, reason))
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Package store holds the in-memory task list of one session.
package store

import (
	"errors"
	"strings"
)

// Task is a single to-do item. Tasks are never modified after creation.
type Task struct {
	ID          int
	Title       string
	Description string
}

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("preencha todos os campos")

// ValidationError reports which required fields were empty on Create.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Fields, ", ") + " required"
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// validate checks the creation inputs. Whitespace counts as content.
func validate(title, description string) error {
	var missing []string
	if len(title) < 1 {
		missing = append(missing, "title")
	}
	if len(description) < 1 {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

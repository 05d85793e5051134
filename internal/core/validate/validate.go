// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
)

// MaxTaskNameLength bounds task names, in runes. The add popup enforces the
// same limit as it is typed.
const MaxTaskNameLength = 120

// TaskName validates a task name is non-empty and within MaxTaskNameLength.
// Whitespace is kept as typed, so "  " is a valid name.
func TaskName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if n := utf8.RuneCountInString(name); n > MaxTaskNameLength {
		return fmt.Errorf("name is %d characters, at most %d allowed", n, MaxTaskNameLength)
	}
	return nil
}

// TaskNameField returns a criterio validator for task names.
func TaskNameField(field, name string) error {
	return criterio.Run(field, name, TaskName)
}

// Package composing assembles scored content into the fixed portfolio document.
package composing

import "fmt"

// InvalidCategoryError reports a caller-supplied category outside the closed set.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category: %q is not a recognized category", e.Category)
}

// InsufficientContentError reports that strict composition was requested with
// fewer content items than the required minimum.
type InsufficientContentError struct {
	Provided int
	Minimum  int
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf("insufficient content: %d items provided, at least %d required", e.Provided, e.Minimum)
}

// InvalidOptionsError wraps a struct-validation failure on compose options.
type InvalidOptionsError struct {
	Message string
	Cause   error
}

func (e *InvalidOptionsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid compose options: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid compose options: %s", e.Message)
}

func (e *InvalidOptionsError) Unwrap() error {
	return e.Cause
}

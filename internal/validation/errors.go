// Package validation checks exported resume PDFs and screens external text before it
// reaches a model prompt.
package validation

import "fmt"

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PageLimitError reports an exported document that runs past its page limit.
type PageLimitError struct {
	Pages int
	Max   int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("page limit exceeded: document has %d pages, limit is %d", e.Pages, e.Max)
}

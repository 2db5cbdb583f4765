package extraction

import (
	"errors"
	"fmt"
)

// ErrExtractionFailed matches every *ExtractionFailedError via errors.Is.
var ErrExtractionFailed = errors.New("could not parse resume via AI, try again or use manual upload")

// ErrEmptyJobDescription is returned by Tailor before any request is made.
var ErrEmptyJobDescription = errors.New("job description is required")

// ExtractionFailedError reports a failed AI extraction or tailoring request. Cause is the
// model call or decoding error that triggered it.
type ExtractionFailedError struct {
	Message string
	Cause   error
}

func (e *ExtractionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionFailedError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrExtractionFailed.
func (e *ExtractionFailedError) Is(target error) bool {
	return target == ErrExtractionFailed
}

// UserMessage is the actionable message to show instead of the technical error.
func (e *ExtractionFailedError) UserMessage() string {
	return ErrExtractionFailed.Error()
}

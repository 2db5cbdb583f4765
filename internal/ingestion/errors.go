package ingestion

import "fmt"

// PDFError is returned when a PDF cannot be opened or its text cannot be read.
type PDFError struct {
	Message string
	Page    int
	Cause   error
}

func (e *PDFError) Error() string {
	msg := e.Message
	if e.Page > 0 {
		msg = fmt.Sprintf("%s (page %d)", msg, e.Page)
	}
	if e.Cause != nil {
		return fmt.Sprintf("pdf error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("pdf error: %s", msg)
}

func (e *PDFError) Unwrap() error {
	return e.Cause
}

package rendering

import "fmt"

// TemplateError represents an unknown template name or a layout that fails to parse
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure executing a layout or exporting a document
type RenderError struct {
	Template Template
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	prefix := "render error"
	if e.Template != "" {
		prefix = fmt.Sprintf("render error (%s)", e.Template)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

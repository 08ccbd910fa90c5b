package callback

import (
	"fmt"
	"strings"
)

// ErrorContext describes a conversion failure threaded through OnError hooks.
// Whether marking it handled suppresses the failure is arbitrated by the
// engine driving the invocation, never by this layer.
type ErrorContext struct {
	Path    string
	Member  string
	Err     error
	handled bool
}

func (e *ErrorContext) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("failed to convert %s.%s, %v", e.Path, e.Member, e.Err)
	}
	return fmt.Sprintf("failed to convert %s, %v", e.Path, e.Err)
}

// Handled returns true if a hook marked the failure as handled.
func (e *ErrorContext) Handled() bool {
	return e.handled
}

// MarkHandled flags the failure as handled.
func (e *ErrorContext) MarkHandled() {
	e.handled = true
}

// NewErrorContext creates an error context; a nested error context is
// flattened with its path prefixed by the supplied one.
func NewErrorContext(path string, err error) *ErrorContext {
	if eCtx, ok := err.(*ErrorContext); ok {
		if strings.HasPrefix(eCtx.Path, "[") {
			path = path + eCtx.Path
		} else if eCtx.Path != "" {
			path = path + "." + eCtx.Path
		}
		err = eCtx.Err
	}
	return &ErrorContext{Path: path, Err: err}
}

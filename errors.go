package contextpack

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig is returned when the assembler configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")
)

// AssemblyError represents an error with additional context
type AssemblyError struct {
	Op        string // Operation that failed
	Err       error  // Underlying error
	SessionID string // Session ID if applicable
}

// Error implements the error interface
func (e *AssemblyError) Error() string {
	if e.SessionID != "" {
		return fmt.Sprintf("%s (session=%s): %v", e.Op, e.SessionID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *AssemblyError) Unwrap() error {
	return e.Err
}

// WithSession sets the session ID on the error and returns it for chaining
func (e *AssemblyError) WithSession(sessionID string) *AssemblyError {
	e.SessionID = sessionID
	return e
}

// NewAssemblyError creates a new AssemblyError
func NewAssemblyError(op string, err error) *AssemblyError {
	return &AssemblyError{
		Op:  op,
		Err: err,
	}
}

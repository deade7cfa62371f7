package tools

import (
	"errors"
	"fmt"
)

// ValidationError reports a caller-supplied argument that violates a
// tool's input contract. Always carries the offending field.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Constraint)
}

func validationErr(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Constraint: fmt.Sprintf(format, args...)}
}

// UnknownToolError reports an invocation of a tool name that was never
// registered.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// ErrCredentialMissing gates write tools when no signing identity was
// configured at startup.
var ErrCredentialMissing = errors.New(
	"write operation requires PRIVATE_KEY and BASE_RPC_URL; set them in your environment and restart the server")

// ExternalError wraps a failure raised by the platform API or the chain
// client. The underlying message is surfaced to the caller untouched.
type ExternalError struct {
	Err error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("external call failed: %v", e.Err)
}

func (e *ExternalError) Unwrap() error {
	return e.Err
}

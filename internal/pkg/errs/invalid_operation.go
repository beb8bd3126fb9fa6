package errs

import (
	"errors"
	"fmt"
)

var ErrInvalidOperation = errors.New("invalid operation")

// InvalidOperationError reports an operation that is not allowed in the
// current state of an aggregate, e.g. completing a task that was never started.
type InvalidOperationError struct {
	Operation string
	Reason    string
	Cause     error
}

func NewInvalidOperationError(operation, reason string) *InvalidOperationError {
	return &InvalidOperationError{
		Operation: operation,
		Reason:    reason,
	}
}

func NewInvalidOperationErrorWithCause(operation, reason string, cause error) *InvalidOperationError {
	return &InvalidOperationError{
		Operation: operation,
		Reason:    reason,
		Cause:     cause,
	}
}

func (e *InvalidOperationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %v)", ErrInvalidOperation, e.Operation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidOperation, e.Operation, e.Reason)
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

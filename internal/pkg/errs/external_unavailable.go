package errs

import (
	"errors"
	"fmt"
)

var ErrExternalUnavailable = errors.New("external service unavailable")

// ExternalUnavailableError reports a collaborator (geocoder, notifier) that
// could not be reached or answered with a failure.
type ExternalUnavailableError struct {
	Service string
	Cause   error
}

func NewExternalUnavailableError(service string, cause error) *ExternalUnavailableError {
	return &ExternalUnavailableError{
		Service: service,
		Cause:   cause,
	}
}

func (e *ExternalUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrExternalUnavailable, e.Service, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrExternalUnavailable, e.Service)
}

func (e *ExternalUnavailableError) Unwrap() error {
	return ErrExternalUnavailable
}

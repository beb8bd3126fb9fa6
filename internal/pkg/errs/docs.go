// Package errs provides standardized error types for the logistics service.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter classifies failures by sentinel:
//   - ErrObjectNotFound: the referenced task, driver or article does not exist
//   - ErrInvalidOperation: the aggregate state forbids the operation
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: rejected input
//   - ErrExternalUnavailable: the geocoder or another collaborator failed
package errs

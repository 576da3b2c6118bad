// Package errs provides the typed errors shared by the stowage domain and its
// adapters.
//
// Each type pairs a struct carrying the details (parameter name, offending value,
// optional cause) with a sentinel it unwraps to:
//   - ValueIsRequiredError unwraps to ErrValueIsRequired
//   - ValueIsInvalidError unwraps to ErrValueIsInvalid
//   - ValueIsOutOfRangeError unwraps to ErrValueIsOutOfRange
//   - ObjectNotFoundError unwraps to ErrObjectNotFound
//
// Callers classify with errors.Is against the sentinel; the HTTP adapter maps the
// sentinels to status codes.
package errs

// Package errs provides standardized error types for the delivery lifecycle service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per failure kind the service reports:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced entity does not exist
//   - PermissionDeniedError: authenticated but not permitted
//   - StateConflictError: a lifecycle precondition does not hold
//   - ResourceExhaustedError: no free resource in a pool (e.g. no available drones)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is classification
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// The sentinel, not the message text, is the contract: the HTTP adapter maps
// sentinels to status codes and callers must branch on errors.Is, never on
// message contents.
package errs

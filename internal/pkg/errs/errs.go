package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures. Callers branch with errors.Is
// against these; the typed errors below carry the details.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrUnauthenticated   = errors.New("caller is not authenticated")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrStateConflict     = errors.New("state conflict")
	ErrResourceExhausted = errors.New("resource exhausted")
)

// sanitize renders an arbitrary value as a single-line string so error
// messages stay log-safe.
func sanitize(value any) string {
	s := fmt.Sprintf("%s", value)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its
// permitted interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the named parameter.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, sanitize(e.ParamName), e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause))
	}
	return strings.ReplaceAll(strings.ReplaceAll(msg, "\n", " "), "\r", " ")
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// PermissionDeniedError indicates that an authenticated caller is not
// allowed to perform the requested operation.
type PermissionDeniedError struct {
	Details string
	Cause   error
}

// NewPermissionDeniedError creates a PermissionDeniedError with the given details.
func NewPermissionDeniedError(details string) *PermissionDeniedError {
	return &PermissionDeniedError{Details: details}
}

// NewPermissionDeniedErrorWithCause creates a PermissionDeniedError wrapping an underlying cause.
func NewPermissionDeniedErrorWithCause(details string, cause error) *PermissionDeniedError {
	return &PermissionDeniedError{Details: details, Cause: cause}
}

func (e *PermissionDeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPermissionDenied, sanitize(e.Details), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrPermissionDenied, sanitize(e.Details))
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// StateConflictError indicates that an operation's state-machine
// precondition does not hold for the entity's current state.
type StateConflictError struct {
	Details string
	Cause   error
}

// NewStateConflictError creates a StateConflictError with the given details.
func NewStateConflictError(details string) *StateConflictError {
	return &StateConflictError{Details: details}
}

// NewStateConflictErrorWithCause creates a StateConflictError wrapping an underlying cause.
func NewStateConflictErrorWithCause(details string, cause error) *StateConflictError {
	return &StateConflictError{Details: details, Cause: cause}
}

func (e *StateConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStateConflict, sanitize(e.Details), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrStateConflict, sanitize(e.Details))
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// ResourceExhaustedError indicates that a pooled resource has no free
// members to satisfy the request.
type ResourceExhaustedError struct {
	Details string
	Cause   error
}

// NewResourceExhaustedError creates a ResourceExhaustedError with the given details.
func NewResourceExhaustedError(details string) *ResourceExhaustedError {
	return &ResourceExhaustedError{Details: details}
}

// NewResourceExhaustedErrorWithCause creates a ResourceExhaustedError wrapping an underlying cause.
func NewResourceExhaustedErrorWithCause(details string, cause error) *ResourceExhaustedError {
	return &ResourceExhaustedError{Details: details, Cause: cause}
}

func (e *ResourceExhaustedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrResourceExhausted, sanitize(e.Details), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrResourceExhausted, sanitize(e.Details))
}

func (e *ResourceExhaustedError) Unwrap() error {
	return ErrResourceExhausted
}

// UnauthenticatedError indicates that the caller presented no valid
// credentials.
type UnauthenticatedError struct {
	Details string
	Cause   error
}

// NewUnauthenticatedError creates an UnauthenticatedError with the given details.
func NewUnauthenticatedError(details string) *UnauthenticatedError {
	return &UnauthenticatedError{Details: details}
}

// NewUnauthenticatedErrorWithCause creates an UnauthenticatedError wrapping an underlying cause.
func NewUnauthenticatedErrorWithCause(details string, cause error) *UnauthenticatedError {
	return &UnauthenticatedError{Details: details, Cause: cause}
}

func (e *UnauthenticatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthenticated, sanitize(e.Details), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrUnauthenticated, sanitize(e.Details))
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

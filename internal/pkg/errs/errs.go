package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrInvalidState      = errors.New("invalid state")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// ObjectNotFoundError reports that an entity referenced by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() []error {
	return chain(ErrObjectNotFound, e.Cause)
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() []error {
	return chain(ErrValueIsInvalid, e.Cause)
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() []error {
	return chain(ErrValueIsOutOfRange, e.Cause)
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() []error {
	return chain(ErrValueIsRequired, e.Cause)
}

// InvalidStateError reports an operation that is not legal from the entity's
// current status. The caller must re-fetch the entity before deciding what to do.
type InvalidStateError struct {
	Entity string
	ID     any
	State  string
	Action string
	Cause  error
}

func NewInvalidStateError(entity string, id any, state, action string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, ID: id, State: state, Action: action}
}

func NewInvalidStateErrorWithCause(entity string, id any, state, action string, cause error) *InvalidStateError {
	return &InvalidStateError{Entity: entity, ID: id, State: state, Action: action, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s %s %s in state %s",
		ErrInvalidState, e.Action, e.Entity, sanitize(e.ID), e.State)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidStateError) Unwrap() []error {
	return chain(ErrInvalidState, e.Cause)
}

// StoreUnavailableError reports that the entity store could not be reached.
// The operation was not applied and may be retried with backoff.
type StoreUnavailableError struct {
	Operation string
	Cause     error
}

func NewStoreUnavailableError(operation string) *StoreUnavailableError {
	return &StoreUnavailableError{Operation: operation}
}

func NewStoreUnavailableErrorWithCause(operation string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Operation: operation, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStoreUnavailable, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreUnavailable, e.Operation)
}

func (e *StoreUnavailableError) Unwrap() []error {
	return chain(ErrStoreUnavailable, e.Cause)
}

// chain keeps both the category sentinel and the concrete cause visible to errors.Is.
func chain(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

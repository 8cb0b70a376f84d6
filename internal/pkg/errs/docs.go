// Package errs provides standardized error types for the prep-center workflow engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//   - ObjectNotFoundError: For when a referenced entity does not exist
//   - InvalidStateError: For operations that are not legal from the entity's current status
//   - StoreUnavailableError: For when the entity store cannot be reached
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels; the HTTP adapter
// maps each sentinel to a status code.
package errs

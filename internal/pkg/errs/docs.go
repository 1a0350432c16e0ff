// Package errs provides standardized error types for the order desk.
// Every type pairs a sentinel error with a struct carrying the details, so callers
// can branch with errors.Is while logs keep the full message.
//
// The package covers the error taxonomy used across the service:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: a referenced order, reservation or record does not exist
//   - ConflictError: a write lost a race, e.g. a serial number already consumed
//   - UpstreamUnavailableError: a store round-trip failed or timed out
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs

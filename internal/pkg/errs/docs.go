// Package errs provides standardized error types for the e-waste pickup service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure kinds the service reports:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError / ValueIsOutOfRangeError: a value fails validation
//   - ObjectNotFoundError: an object cannot be found
//   - AccessForbiddenError: the caller lacks the role or ownership to proceed
//   - CredentialIsInvalidError: a bearer credential cannot be verified
//   - ConcurrentModificationError: a conditional write lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Handlers and adapters classify errors with errors.Is against the sentinels
// rather than matching on message text.
package errs

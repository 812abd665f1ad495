// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes validation errors for common scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//
// It also includes the lifecycle errors callers branch on:
//   - AlreadyClaimedError: For when a claim loses the race for an order
//   - UnauthorizedError: For when an actor acts on an order it does not own
//   - InvalidTransitionError: For when a status change skips or repeats a step
//   - LedgerWriteFailedError: For when a committed change could not be recorded
//     in the history ledger
//   - StoreUnavailableError: For when the backing store cannot be reached
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrAlreadyClaimed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels rather than
// matching on message text, which keeps transport mappings and retry
// decisions stable as messages evolve.
package errs

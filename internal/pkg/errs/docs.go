// Package errs provides standardized error types for the tracking service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) matched with errors.Is
//   - a struct type carrying the offending parameter, matched with errors.As
//   - constructors with and without a cause
//
// Adapters translate these types to transport status codes: ObjectNotFoundError
// becomes 404, the value errors become 400.
package errs

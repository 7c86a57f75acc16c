// Package errors provides error handling conventions for the usdcheck tools.
//
// Errors are created and wrapped through this package, which delegates to
// github.com/cockroachdb/errors so that every error carries a stack trace
// while still working with the standard [errors.Is] and [errors.As]
// semantics.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific failure conditions:
//
//	if errors.Is(err, usderrors.ErrCannotOpen) {
//	    // the engine rejected the file
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): validation passed, possibly with warnings
//   - ExitUser (1): validation failed, the file could not be opened, or
//     the command line was malformed
//   - ExitSystem (2): an unexpected system failure
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. Commands return it and main maps it to a process exit code
// with [ExitCode]:
//
//	err := usderrors.NewUserError(usderrors.ErrUsage, "Pass exactly one file")
//	os.Exit(usderrors.ExitCode(err))
package errors

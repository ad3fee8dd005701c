// Package errors provides typed errors with exit codes for plastic-ctl.
//
// # Error Types
//
// PlasticError is the base error type that wraps an error with an exit code:
//
//	type PlasticError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess           = 0  // Success
//	ExitGeneralError      = 1  // General/unknown errors
//	ExitWorkspaceNotFound = 2  // No workspace bound to the given path
//	ExitToolFailed        = 3  // cm invocation failed
//	ExitConfigError       = 4  // Configuration error
//	ExitSelectorError     = 5  // Selector operation failed
//	ExitFilesystemError   = 6  // Filesystem operation failed
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.WorkspaceNotFound("/build/main")
//	errors.ToolFailed("mkwk", err)
//	errors.SelectorError("apply selector", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors

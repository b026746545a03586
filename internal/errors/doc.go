// Package errors provides typed errors with exit codes for deployctl.
//
// # Error Types
//
// DeployError is the base error type that wraps an error with an exit code:
//
//	type DeployError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitNotFound     = 2  // Config file or manifest does not exist
//	ExitIOError      = 3  // Directory creation or file write failed
//	ExitConfigError  = 4  // Configuration content invalid
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ConfigNotFound("/etc/coldfront/config.yml", err)
//	errors.IOError("cannot create output directory", err)
//	errors.ConfigError("manifest validation failed", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors

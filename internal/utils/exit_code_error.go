package utils

const (
	// ExitCodeFailure reports that at least one repository failed or was skipped.
	ExitCodeFailure = 1
	// ExitCodeNoRepositories reports that no repositories were selected for listing.
	ExitCodeNoRepositories = 2
)

// ExitCodeError requests a specific process exit code.
// An empty Message means the user-facing output was already printed.
type ExitCodeError struct {
	Code    int
	Message string
}

// NewExitCodeError constructs an ExitCodeError.
func NewExitCodeError(code int, message string) ExitCodeError {
	return ExitCodeError{Code: code, Message: message}
}

// Error returns the message carried by the error.
func (exitCodeError ExitCodeError) Error() string {
	return exitCodeError.Message
}

package errors

import "errors"

// Library-wide error messages are here.
var (
	ErrScriptPathEmpty        = errors.New("script path is empty")
	ErrWorkflowPathEmpty      = errors.New("workflow path is empty")
	ErrCannotInitializeChecks = errors.New("unable to initialize checks")
	ErrVerificationFailed     = errors.New("setup verification failed")
)

package unifi

import (
	"errors"
	"fmt"
)

// Process exit codes. Zero covers both success and a user-aborted teardown.
const (
	ExitOK          = 0
	ExitMissingTool = 1
	ExitUsage       = 2
	ExitUnsafePath  = 3
)

// ExitError carries the process exit code for main to apply.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string { return e.Msg }

func exitErrf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned by Run to a process exit code.
// Errors without an explicit code are treated as fatal step failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitMissingTool
}

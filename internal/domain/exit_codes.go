package domain

import (
	"context"
	"errors"
)

// ExitCode is the process exit status
type ExitCode int

const (
	ExitUnknown             ExitCode = -1
	ExitOK                  ExitCode = 0
	ExitConfigNotFound      ExitCode = 1
	ExitConfigInvalid       ExitCode = 2
	ExitJiraConnectError    ExitCode = 3
	ExitCurrentUserNotFound ExitCode = 4
)

// ExitCodeFor maps an error returned by a command to the process exit code
func ExitCodeFor(err error) ExitCode {
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return ExitOK
	case errors.Is(err, ErrConfigNotFound):
		return ExitConfigNotFound
	case errors.Is(err, ErrConfigInvalid):
		return ExitConfigInvalid
	case errors.Is(err, ErrJiraConnect):
		return ExitJiraConnectError
	case errors.Is(err, ErrCurrentUserNotFound):
		return ExitCurrentUserNotFound
	default:
		return ExitUnknown
	}
}

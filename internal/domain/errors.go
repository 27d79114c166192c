package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAborted             = errors.New("aborted by user")
	ErrConfigInvalid       = errors.New("configuration is not valid")
	ErrConfigNotFound      = errors.New("configuration not found")
	ErrCurrentUserNotFound = errors.New("current user not found")
	ErrJiraConnect         = errors.New("unable to connect to Jira")
)

// RemoteError is a failed call to the Jira API
type RemoteError struct {
	StatusCode int // 0 when no response was received
	Errors     []string
}

func (e *RemoteError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("jira request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("jira request failed with status %d: %s", e.StatusCode, strings.Join(e.Errors, "; "))
}

// AsRemoteError extracts a RemoteError from err.
// Errors of any other type are wrapped with a zero status code.
func AsRemoteError(err error) *RemoteError {
	if err == nil {
		return nil
	}
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr
	}
	return &RemoteError{Errors: []string{err.Error()}}
}

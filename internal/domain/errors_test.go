package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ExitCode
	}{
		{"nil", nil, ExitOK},
		{"config not found", fmt.Errorf("loading: %w", ErrConfigNotFound), ExitConfigNotFound},
		{"config invalid", fmt.Errorf("loading: %w", ErrConfigInvalid), ExitConfigInvalid},
		{"connect", fmt.Errorf("client: %w", ErrJiraConnect), ExitJiraConnectError},
		{"current user", ErrCurrentUserNotFound, ExitCurrentUserNotFound},
		{"interrupted", fmt.Errorf("getting ticket: %w", context.Canceled), ExitOK},
		{"anything else", errors.New("boom"), ExitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFor(tt.err))
		})
	}
}

func TestAsRemoteError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, AsRemoteError(nil))
	})

	t.Run("wrapped remote error", func(t *testing.T) {
		original := &RemoteError{StatusCode: 404, Errors: []string{"Issue does not exist"}}
		remoteErr := AsRemoteError(fmt.Errorf("get issue: %w", original))
		require.NotNil(t, remoteErr)
		assert.Same(t, original, remoteErr)
	})

	t.Run("plain error", func(t *testing.T) {
		remoteErr := AsRemoteError(errors.New("connection refused"))
		require.NotNil(t, remoteErr)
		assert.Equal(t, 0, remoteErr.StatusCode)
		assert.Equal(t, []string{"connection refused"}, remoteErr.Errors)
	})
}

func TestRemoteError_Error(t *testing.T) {
	err := &RemoteError{StatusCode: 400, Errors: []string{"summary: required", "project: invalid"}}
	assert.Equal(t, "jira request failed with status 400: summary: required; project: invalid", err.Error())

	empty := &RemoteError{StatusCode: 500}
	assert.Equal(t, "jira request failed with status 500", empty.Error())
}

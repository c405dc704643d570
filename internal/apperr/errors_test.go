package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoteError_Unwrap(t *testing.T) {
	err := fmt.Errorf("loading users: %w", &RemoteError{Kind: ErrAuth, Op: "list users", StatusCode: 401})
	require.ErrorIs(t, err, ErrAuth)
	require.True(t, IsAuth(err))
	require.False(t, errors.Is(err, ErrNetwork))

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, 401, remote.StatusCode)
	require.Contains(t, err.Error(), "status 401")
}

func TestRemoteError_Message(t *testing.T) {
	err := &RemoteError{Kind: ErrActionFailed, Op: "set tasker status", StatusCode: 500, Message: "boom"}
	require.Equal(t, "set tasker status: action failed: boom", err.Error())
}

func TestValidation(t *testing.T) {
	err := Validation("file %q is not an image", "a.txt")
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), `"a.txt"`)
}

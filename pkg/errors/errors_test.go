// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_path",
			code:    errors.ErrInvalidPath,
			message: "not a repository: /tmp/x",
			wantStr: "[INVALID_PATH] not a repository: /tmp/x",
		},
		{
			name:    "missing_source",
			code:    errors.ErrMissingSourceFile,
			message: "missing .bashrc",
			wantStr: "[MISSING_SOURCE_FILE] missing .bashrc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")

	err := errors.Wrapf(cause, errors.ErrRemove, "failed to remove %s", "/home/u/.bashrc")
	require.NotNil(t, err)

	assert.Equal(t, "[REMOVE_FAILED] failed to remove /home/u/.bashrc: permission denied", err.Error())
	assert.Same(t, cause, stderrors.Unwrap(err))

	assert.Nil(t, errors.Wrap(nil, errors.ErrRemove, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrRemove, "nothing %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrWrongProject, "wrong"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrWrongProject, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrRootNotFound, "wrong")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrWrongProject))
	assert.Equal(t, errors.ErrWrongProject, errors.GetErrorCode(err))
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
	assert.Nil(t, errors.GetErrorDetails(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrWrongProject, "mismatch").
		WithDetail("expected", "utils").
		WithDetail("actual", "other")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "utils", details["expected"])
	assert.Equal(t, "other", details["actual"])

	bare := &errors.Error{Code: errors.ErrInternal}
	bare.WithDetail("k", 1)
	assert.Equal(t, 1, bare.Details["k"])
}

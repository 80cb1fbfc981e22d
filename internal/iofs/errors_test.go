package iofs

import (
	"errors"
	"testing"

	"github.com/enadata/consmeta/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateDirError_Structure verifies error structure.
func TestCreateDirError_Structure(t *testing.T) {
	testDir := "/test/dir"
	originalErr := errors.New("permission denied")

	err := CreateDirError(testDir, originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok,
		"Error should be of type *gn.Error")

	assert.Equal(t, errcode.CreateDirError, gnErr.Code,
		"Error code should be CreateDirError")
	assert.Contains(t, gnErr.Msg, "%s",
		"Message should contain format placeholder")

	require.Len(t, gnErr.Vars, 1)
	assert.Equal(t, testDir, gnErr.Vars[0],
		"Variable should be the directory path")

	assert.ErrorIs(t, gnErr.Err, originalErr,
		"Should wrap original error")
	assert.Contains(t, gnErr.Err.Error(), "cannot create")
}

// TestAllErrors_ErrorWrapping verifies proper error
// wrapping.
func TestAllErrors_ErrorWrapping(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name  string
		error error
		code  gn.ErrorCode
	}{
		{
			name:  "CreateDirError",
			error: CreateDirError("/dir", originalErr),
			code:  errcode.CreateDirError,
		},
		{
			name:  "CopyFileError",
			error: CopyFileError("/config.yaml", originalErr),
			code:  errcode.CopyFileError,
		},
		{
			name:  "ReadFileError",
			error: ReadFileError("/names.txt", originalErr),
			code:  errcode.ReadFileError,
		},
		{
			name:  "ClientLibDirError",
			error: ClientLibDirError("/opt/oracle", originalErr),
			code:  errcode.ClientLibDirError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr := tt.error.(*gn.Error)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.ErrorIs(t, gnErr.Err, originalErr,
				"Should wrap original error")
		})
	}
}

func TestClientLibDirMsg(t *testing.T) {
	assert.Equal(t,
		"ERROR: Environment variable $ORACLE_CLIENT_LIB must point at a valid directory",
		ClientLibDirMsg,
	)
}

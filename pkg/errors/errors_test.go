package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrModNotFound, "no such mod")
	assert.Equal(t, "[MOD_NOT_FOUND] no such mod", err.Error())
	assert.Equal(t, ErrModNotFound, err.Code)
	assert.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrNameAlreadyExists, "mod %q is already installed", "better-minimap")
	assert.Contains(t, err.Error(), `mod "better-minimap" is already installed`)
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrIO, "failed to delete file")

	assert.Equal(t, "[IO_ERROR] failed to delete file: permission denied", err.Error())
	assert.Equal(t, inner, stderrors.Unwrap(err))

	assert.Nil(t, Wrap(nil, ErrIO, "nothing"))
}

func TestWrap_PreservesSentinels(t *testing.T) {
	err := Wrap(os.ErrNotExist, ErrDriftDetected, "file gone")
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestIs_MatchesByCode(t *testing.T) {
	a := New(ErrPathConflict, "one conflict")
	b := New(ErrPathConflict, "another conflict")
	c := New(ErrDuplicatePath, "dupe")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrLockHeld, "busy")
	assert.True(t, IsErrorCode(err, ErrLockHeld))
	assert.False(t, IsErrorCode(err, ErrIO))

	// Wrapped in a plain fmt error, the code still resolves.
	wrapped := fmt.Errorf("context: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrLockHeld))

	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrLockHeld))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrDriftDetected, GetErrorCode(New(ErrDriftDetected, "drift")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPathConflict, "conflict").
		WithDetail("path", "archive/pc/mod/a.archive").
		WithDetail("owner", "other-mod")

	details := GetErrorDetails(err)
	assert.Equal(t, "archive/pc/mod/a.archive", details["path"])
	assert.Equal(t, "other-mod", details["owner"])

	assert.Nil(t, GetErrorDetails(fmt.Errorf("plain")))
}

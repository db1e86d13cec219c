package qhull

import (
	"errors"
	"testing"

	"github.com/hullworks/qhull-go/internal/bindings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeErrorMessage(t *testing.T) {
	err := &ComputeError{Op: "compute", Code: CodeSingular}
	assert.Equal(t, "qhull: compute failed: singular input (code 2)", err.Error())

	withDiag := &ComputeError{Op: "compute", Code: CodePrecision, Diag: "qhull precision warning"}
	assert.Equal(t,
		"qhull: compute failed: precision error (code 3)\nqhull precision warning",
		withDiag.Error())
}

func TestRemapNative(t *testing.T) {
	assert.NoError(t, remapNative("compute", nil))

	native := &bindings.NativeError{Code: bindings.CodeInput, Diag: "bad input"}
	err := remapNative("init", native)
	var cerr *ComputeError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "init", cerr.Op)
	assert.Equal(t, CodeInput, cerr.Code)
	assert.Equal(t, "bad input", cerr.Diag)

	// Sentinels pass through untouched.
	assert.ErrorIs(t, remapNative("compute", ErrGuardActive), ErrGuardActive)
	assert.ErrorIs(t, remapNative("compute", bindings.ErrContextClosed), bindings.ErrContextClosed)
}

func TestInitErrorUnwrap(t *testing.T) {
	err := &InitError{Err: ErrNotBuilt}
	assert.True(t, errors.Is(err, ErrNotBuilt))
}

// A runtime allocation failure must not look like a missing-bindings
// build, or skip-aware callers would silently ignore it.
func TestInitFailureDistinctFromNotBuilt(t *testing.T) {
	err := &InitError{Err: ErrInitFailed}
	assert.True(t, errors.Is(err, ErrInitFailed))
	assert.False(t, errors.Is(err, ErrNotBuilt))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "points", Reason: "point set is empty"}
	assert.Equal(t, "qhull: invalid points: point set is empty", err.Error())
}

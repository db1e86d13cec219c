package qhull

import (
	"errors"
	"fmt"

	"github.com/hullworks/qhull-go/internal/bindings"
)

// ErrorCode identifies a native Qhull failure class.
type ErrorCode = bindings.ErrorCode

// Native error codes re-exported for callers that branch on the class
// of a ComputeError.
const (
	CodeInput     = bindings.CodeInput
	CodeSingular  = bindings.CodeSingular
	CodePrecision = bindings.CodePrecision
	CodeMemory    = bindings.CodeMemory
	CodeInternal  = bindings.CodeInternal
	CodeOther     = bindings.CodeOther
	CodeTopology  = bindings.CodeTopology
	CodeWide      = bindings.CodeWide
)

var (
	// ErrNotBuilt reports that the native Qhull bindings are not linked
	// into this binary. Surfaced (wrapped in *InitError) from Compute on
	// non-cgo builds and on Windows.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrInitFailed reports that allocating native state failed at
	// runtime even though the bindings are linked. Tests that skip on
	// ErrNotBuilt do not skip on this.
	ErrInitFailed = bindings.ErrInitFailed

	// ErrGuardActive reports an attempt to start a guarded native call
	// while another one is in flight on the same context.
	ErrGuardActive = bindings.ErrGuardActive

	// ErrMissingData reports a query for adjacency or detail that was
	// not computed under the active option set. Recompute with the
	// needed option enabled.
	ErrMissingData = errors.New("qhull: requested detail was not computed under the active options")

	// ErrHullClosed reports a second Close of a Hull.
	ErrHullClosed = errors.New("qhull: hull has been closed")
)

// ValidationError reports malformed input detected before any native
// call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("qhull: invalid %s: %s", e.Field, e.Reason)
}

// InitError reports that native state allocation or initialization
// failed. No partially constructed context survives an InitError.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("qhull: native initialization failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ComputeError reports that a guarded native operation failed via the
// longjmp mechanism. Code is the native error status; Diag is the
// best-effort capture of what Qhull wrote to its error stream before
// jumping.
type ComputeError struct {
	Op   string
	Code ErrorCode
	Diag string
}

func (e *ComputeError) Error() string {
	msg := fmt.Sprintf("qhull: %s failed: %s (code %d)", e.Op, e.Code, int(e.Code))
	if e.Diag != "" {
		msg += "\n" + e.Diag
	}
	return msg
}

// remapNative converts bindings-layer errors into the public taxonomy.
// Sentinels (ErrGuardActive, ErrNotBuilt, ErrContextClosed) pass
// through untouched so errors.Is keeps working.
func remapNative(op string, err error) error {
	if err == nil {
		return nil
	}
	var ne *bindings.NativeError
	if errors.As(err, &ne) {
		return &ComputeError{Op: op, Code: ne.Code, Diag: ne.Diag}
	}
	return err
}

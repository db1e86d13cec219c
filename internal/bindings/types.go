package bindings

import (
	"errors"
	"fmt"
)

// ErrorCode is a native Qhull error status as delivered through the
// longjmp mechanism. The values mirror the qh_ERR* constants in
// libqhull_r.h; CodeNested is produced by the guard shim itself and
// never by Qhull.
type ErrorCode int

const (
	CodeNone      ErrorCode = 0
	CodeInput     ErrorCode = 1 // qh_ERRinput
	CodeSingular  ErrorCode = 2 // qh_ERRsingular
	CodePrecision ErrorCode = 3 // qh_ERRprec
	CodeMemory    ErrorCode = 4 // qh_ERRmem
	CodeInternal  ErrorCode = 5 // qh_ERRqhull
	CodeOther     ErrorCode = 6 // qh_ERRother
	CodeTopology  ErrorCode = 7 // qh_ERRtopology
	CodeWide      ErrorCode = 8 // qh_ERRwide
	CodeDebug     ErrorCode = 9 // qh_ERRdebug

	// CodeNested reports that a recovery point was already live when a
	// guarded call was attempted.
	CodeNested ErrorCode = 10071
)

func (c ErrorCode) String() string {
	switch c {
	case CodeNone:
		return "ok"
	case CodeInput:
		return "input error"
	case CodeSingular:
		return "singular input"
	case CodePrecision:
		return "precision error"
	case CodeMemory:
		return "insufficient memory"
	case CodeInternal:
		return "internal error"
	case CodeOther:
		return "other error"
	case CodeTopology:
		return "topology error"
	case CodeWide:
		return "wide facet"
	case CodeDebug:
		return "debug stop"
	case CodeNested:
		return "nested guarded call"
	default:
		return fmt.Sprintf("unknown error %d", int(c))
	}
}

var (
	// ErrNotBuilt reports that the native Qhull bindings were not linked
	// into the current binary (cgo disabled or unsupported platform).
	ErrNotBuilt = errors.New("qhull/bindings: native bindings not built")

	// ErrInitFailed reports that allocating native state (the qhT block
	// or its capture streams) failed at runtime. Distinct from
	// ErrNotBuilt: the bindings are linked, the process is out of a
	// resource.
	ErrInitFailed = errors.New("qhull/bindings: native state allocation failed")

	// ErrContextClosed reports a use of a Context after Close.
	ErrContextClosed = errors.New("qhull/bindings: context closed")

	// ErrGuardActive reports an attempt to start a guarded call while
	// another one is in flight on the same Context.
	ErrGuardActive = errors.New("qhull/bindings: guarded call already active")
)

// NativeError carries the jump status of a failed guarded call plus
// whatever Qhull wrote to its error stream before jumping.
type NativeError struct {
	Code ErrorCode
	Diag string
}

func (e *NativeError) Error() string {
	if e.Diag == "" {
		return fmt.Sprintf("qhull/bindings: native call failed: %s (code %d)", e.Code, int(e.Code))
	}
	return fmt.Sprintf("qhull/bindings: native call failed: %s (code %d)\n%s", e.Code, int(e.Code), e.Diag)
}

// Facet, Vertex and Ridge are opaque handles into the native output
// graph. They are only meaningful together with the Context that
// produced them and become invalid when that Context is closed.
type (
	Facet  uintptr
	Vertex uintptr
	Ridge  uintptr
)

// guardState is the host-side half of the nesting check. The C shim
// re-checks the NOerrexit slot in the qhT block, but the flag here
// rejects nested calls before any native state is touched and is
// restored on every exit path.
type guardState struct {
	active bool
}

func (g *guardState) enter() error {
	if g.active {
		return ErrGuardActive
	}
	g.active = true
	return nil
}

func (g *guardState) exit() {
	g.active = false
}

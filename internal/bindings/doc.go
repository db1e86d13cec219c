// Package bindings contains all cgo bindings to the reentrant Qhull C
// library (libqhull_r). This package should ONLY be imported by the
// pkg/qhull package. All cgo complexity is isolated here.
//
// # Design Principles
//
//  1. Isolation: ALL cgo code lives in this package. No other package
//     imports "C".
//
//  2. Guarded calls: Qhull reports fatal errors by longjmp'ing to a
//     jmp_buf stored in the qhT state block. A longjmp must never cross
//     a Go stack frame, so every fallible Qhull entrypoint is invoked
//     from a C shim function that registers the recovery point with
//     setjmp immediately around the call. The shim lives entirely in C;
//     the only state crossing the boundary is the qhT pointer and a
//     plain-data argument struct.
//
//  3. Lifecycle: the qhT block, the C copy of the input coordinates and
//     the tmpfile streams Qhull writes to are owned by Context and
//     released exactly once by Close.
//
//  4. Opaque handles: facets, vertices and ridges are handed to the
//     caller as uintptr values. The raw C pointers never leave this
//     package's public surface.
//
// # Threading
//
// A Context is NOT safe for concurrent use. The guard slot in the qhT
// block is a single recovery point, so nested or overlapping guarded
// calls on one Context are rejected with ErrGuardActive. Independent
// Contexts may run on separate goroutines.
package bindings

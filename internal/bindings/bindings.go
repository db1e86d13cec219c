//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -L/usr/local/lib -lqhull_r -lm

#include <stdio.h>
#include <stdlib.h>
#include <string.h>
#include <setjmp.h>
#include <libqhull_r/libqhull_r.h>

#define QHGO_OP_INITFLAGS   1
#define QHGO_OP_INITB       2
#define QHGO_OP_QHULL       3
#define QHGO_OP_CHECK       4
#define QHGO_OP_SETVORONOI  5
#define QHGO_OP_GETAREA     6

#define QHGO_ERR_NESTED     10071
#define QHGO_ERR_BADOP      10072

typedef struct {
	coordT *points;
	int numpoints;
	int dim;
} qhgo_initb_t;

// qhgo_guard reproduces qhull's QH_TRY_ idiom. The recovery point is
// registered in this frame, immediately around the native entrypoint,
// and nothing with host-side cleanup obligations lives here, so a
// longjmp never crosses a Go frame. NOerrexit doubles as the "recovery
// point live" marker: overwriting a live jmp_buf would lose the outer
// jump target, so a nested call is refused before setjmp runs.
static int qhgo_guard(qhT *qh, int op, void *data) {
	int status;

	if (!qh->NOerrexit) {
		return QHGO_ERR_NESTED;
	}
	qh->NOerrexit = False;
	status = setjmp(qh->errexit);
	if (status == 0) {
		switch (op) {
		case QHGO_OP_INITFLAGS:
			qh_initflags(qh, (char *)data);
			break;
		case QHGO_OP_INITB: {
			qhgo_initb_t *a = (qhgo_initb_t *)data;
			qh_init_B(qh, a->points, a->numpoints, a->dim, False);
			break;
		}
		case QHGO_OP_QHULL:
			qh_qhull(qh);
			break;
		case QHGO_OP_CHECK:
			qh_check_output(qh);
			break;
		case QHGO_OP_SETVORONOI:
			qh_setvoronoi_all(qh);
			break;
		case QHGO_OP_GETAREA:
			qh_getarea(qh, qh->facet_list);
			break;
		default:
			status = QHGO_ERR_BADOP;
		}
	}
	qh->NOerrexit = True;
	return status;
}

static qhT *qhgo_new_qh(FILE *fout, FILE *ferr) {
	qhT *qh = (qhT *)calloc(1, sizeof(qhT));
	if (!qh) {
		return NULL;
	}
	qh_init_A(qh, NULL, fout, ferr, 0, NULL);
	return qh;
}

static void qhgo_free_qh(qhT *qh) {
	int curlong, totlong;
	qh_freeqhull(qh, !qh_ALL);
	qh_memfreeshort(qh, &curlong, &totlong);
	free(qh);
}

// qhgo_drain copies everything written to f so far and rewinds it for
// the next capture. The caller frees the returned buffer.
static char *qhgo_drain(FILE *f, int *len) {
	long end;
	char *buf;

	*len = 0;
	if (!f) {
		return NULL;
	}
	fflush(f);
	end = ftell(f);
	if (end <= 0) {
		rewind(f);
		return NULL;
	}
	rewind(f);
	buf = (char *)malloc((size_t)end);
	if (!buf) {
		return NULL;
	}
	*len = (int)fread(buf, 1, (size_t)end, f);
	rewind(f);
	return buf;
}
*/
import "C"

import (
	"unsafe"
)

// Available reports whether the native Qhull library is linked in.
func Available() bool { return true }

// Context owns one native qhT state block together with the C-side
// resources that must outlive individual calls: the copied input
// coordinates (qh_init_B retains the pointer) and the tmpfile streams
// Qhull's informational and error output is routed to. Exactly one
// Close tears all of it down.
type Context struct {
	qh     *C.qhT
	coords unsafe.Pointer
	out    *C.FILE
	errf   *C.FILE
	guard  guardState
	closed bool
}

// New allocates and initializes a native context. Qhull's output and
// error streams are redirected to tmpfiles so the library never writes
// to the process streams.
func New() (*Context, error) {
	out := C.tmpfile()
	if out == nil {
		return nil, ErrInitFailed
	}
	errf := C.tmpfile()
	if errf == nil {
		C.fclose(out)
		return nil, ErrInitFailed
	}
	qh := C.qhgo_new_qh(out, errf)
	if qh == nil {
		C.fclose(out)
		C.fclose(errf)
		return nil, ErrInitFailed
	}
	return &Context{qh: qh, out: out, errf: errf}, nil
}

// Close releases the native state block, the coordinate copy and the
// stream buffers. A second Close is a contract violation and returns
// ErrContextClosed without touching native state.
func (c *Context) Close() error {
	if c.closed {
		return ErrContextClosed
	}
	c.closed = true
	C.qhgo_free_qh(c.qh)
	c.qh = nil
	if c.coords != nil {
		C.free(c.coords)
		c.coords = nil
	}
	C.fclose(c.out)
	C.fclose(c.errf)
	return nil
}

// guarded runs one native operation under the longjmp recovery shim
// and translates the outcome into an ordinary error. The guard flag is
// restored on every exit path so the next call can run.
func (c *Context) guarded(op C.int, data unsafe.Pointer) error {
	if c.closed {
		return ErrContextClosed
	}
	if err := c.guard.enter(); err != nil {
		return err
	}
	defer c.guard.exit()
	status := C.qhgo_guard(c.qh, op, data)
	if status == 0 {
		return nil
	}
	if status == C.QHGO_ERR_NESTED {
		return ErrGuardActive
	}
	return &NativeError{Code: ErrorCode(status), Diag: c.drainErr()}
}

// InitFlags applies a qhull option string. The string must start with
// the program name, conventionally "qhull".
func (c *Context) InitFlags(flags string) error {
	cs := C.CString(flags)
	defer C.free(unsafe.Pointer(cs))
	return c.guarded(C.QHGO_OP_INITFLAGS, unsafe.Pointer(cs))
}

// InitPoints copies the flat coordinate array into C memory and hands
// it to qh_init_B. The copy stays alive until Close; Qhull keeps the
// pointer for the whole computation.
func (c *Context) InitPoints(coords []float64, dim, count int) error {
	if c.closed {
		return ErrContextClosed
	}
	n := len(coords)
	buf := C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.double(0))))
	if buf == nil {
		return &NativeError{Code: CodeMemory}
	}
	dst := unsafe.Slice((*C.double)(buf), n)
	for i, v := range coords {
		dst[i] = C.double(v)
	}
	args := C.qhgo_initb_t{
		points:    (*C.coordT)(buf),
		numpoints: C.int(count),
		dim:       C.int(dim),
	}
	if err := c.guarded(C.QHGO_OP_INITB, unsafe.Pointer(&args)); err != nil {
		C.free(buf)
		return err
	}
	c.coords = buf
	return nil
}

// Compute runs the hull computation proper.
func (c *Context) Compute() error {
	return c.guarded(C.QHGO_OP_QHULL, nil)
}

// CheckOutput verifies the consistency of the computed output graph.
func (c *Context) CheckOutput() error {
	return c.guarded(C.QHGO_OP_CHECK, nil)
}

// SetVoronoiAll computes Voronoi centers for all facets.
func (c *Context) SetVoronoiAll() error {
	return c.guarded(C.QHGO_OP_SETVORONOI, nil)
}

// ComputeArea computes total area and volume statistics.
func (c *Context) ComputeArea() error {
	return c.guarded(C.QHGO_OP_GETAREA, nil)
}

// Mode flags, applied before InitPoints. These mirror the fields the
// option parser would set for the d/v flags, minus the implicit input
// projection: callers lift Delaunay input themselves.

func (c *Context) SetDelaunay(on bool)     { c.qh.DELAUNAY = cbool(on) }
func (c *Context) SetVoronoi(on bool)      { c.qh.VORONOI = cbool(on) }
func (c *Context) SetScaleLast(on bool)    { c.qh.SCALElast = cbool(on) }
func (c *Context) SetTriangulate(on bool)  { c.qh.TRIangulate = cbool(on) }
func (c *Context) SetKeepCoplanar(on bool) { c.qh.KEEPcoplanar = cbool(on) }

func cbool(on bool) C.boolT {
	if on {
		return C.boolT(C.True)
	}
	return C.boolT(C.False)
}

// NumFacets reports the number of facets in the output graph.
func (c *Context) NumFacets() int { return int(c.qh.num_facets) }

// NumVertices reports the number of vertices in the output graph.
func (c *Context) NumVertices() int { return int(c.qh.num_vertices) }

// HullDim reports the dimension the native computation ran in. For
// lifted Delaunay input this is one more than the input dimension.
func (c *Context) HullDim() int { return int(c.qh.hull_dim) }

// TotArea returns the total facet area after ComputeArea.
func (c *Context) TotArea() float64 { return float64(c.qh.totarea) }

// TotVolume returns the total volume after ComputeArea.
func (c *Context) TotVolume() float64 { return float64(c.qh.totvol) }

// DrainOutput returns everything Qhull wrote to its informational
// stream since the last drain.
func (c *Context) DrainOutput() string {
	if c.closed {
		return ""
	}
	return drain(c.out)
}

func (c *Context) drainErr() string {
	return drain(c.errf)
}

func drain(f *C.FILE) string {
	var n C.int
	buf := C.qhgo_drain(f, &n)
	if buf == nil {
		return ""
	}
	s := C.GoStringN(buf, n)
	C.free(unsafe.Pointer(buf))
	return s
}

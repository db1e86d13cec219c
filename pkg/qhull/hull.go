package qhull

import (
	"context"
	"io"
	"iter"

	"github.com/hullworks/qhull-go/internal/bindings"
)

// Hull is the frozen result of one computation. It owns the native
// context for its entire lifetime; Close tears the context down and
// invalidates every view derived from the hull. No mutation surface is
// exposed after construction.
type Hull struct {
	ctx     *bindings.Context
	dim     int
	hullDim int
	lifted  bool
	voronoi bool
	hasArea bool
	diag    string
	closed  bool
}

// Compute creates a native context from cfg, runs the guarded compute
// pipeline and wraps the populated context on success. On any failure
// the context is torn down before the error is returned; no partial
// Hull ever escapes.
func Compute(cfg *Config) (*Hull, error) {
	if cfg == nil {
		return nil, &ValidationError{Field: "config", Reason: "nil"}
	}
	log := cfg.log

	ctx, err := bindings.New()
	if err != nil {
		return nil, &InitError{Err: err}
	}

	h := &Hull{
		ctx:     ctx,
		dim:     cfg.dim,
		lifted:  cfg.mode == ModeDelaunay || cfg.mode == ModeVoronoi,
		voronoi: cfg.mode == ModeVoronoi,
		hasArea: cfg.wantArea,
	}
	if err := h.run(cfg); err != nil {
		ctx.Close()
		return nil, err
	}
	if cfg.diag != nil && h.diag != "" {
		io.WriteString(cfg.diag, h.diag)
	}
	log.Debug(context.Background(), "computation complete",
		"mode", cfg.mode.String(),
		"facets", h.ctx.NumFacets(),
		"vertices", h.ctx.NumVertices(),
	)
	return h, nil
}

func (h *Hull) run(cfg *Config) error {
	log := cfg.log
	bg := context.Background()

	flags := cfg.commandFlags()
	log.Debug(bg, "applying options", "flags", flags)
	if err := remapNative("initflags", h.ctx.InitFlags(flags)); err != nil {
		return err
	}

	switch cfg.mode {
	case ModeDelaunay:
		h.ctx.SetDelaunay(true)
		h.ctx.SetScaleLast(true)
		h.ctx.SetTriangulate(true)
		h.ctx.SetKeepCoplanar(true)
	case ModeVoronoi:
		h.ctx.SetDelaunay(true)
		h.ctx.SetVoronoi(true)
		h.ctx.SetScaleLast(true)
		h.ctx.SetKeepCoplanar(true)
	}

	coords, dim := cfg.nativeCoords()
	h.hullDim = dim
	count := len(coords) / dim
	log.Debug(bg, "loading points", "count", count, "dim", dim)
	if err := remapNative("init", h.ctx.InitPoints(coords, dim, count)); err != nil {
		return err
	}

	log.Debug(bg, "running qhull")
	if err := remapNative("compute", h.ctx.Compute()); err != nil {
		return err
	}
	if err := remapNative("check output", h.ctx.CheckOutput()); err != nil {
		return err
	}
	if h.voronoi {
		if err := remapNative("voronoi centers", h.ctx.SetVoronoiAll()); err != nil {
			return err
		}
	}
	if cfg.wantArea {
		if err := remapNative("area", h.ctx.ComputeArea()); err != nil {
			return err
		}
	}
	h.diag = h.ctx.DrainOutput()
	return nil
}

// Close releases the native context. A second Close returns
// ErrHullClosed; any view use after Close panics.
func (h *Hull) Close() error {
	if h.closed {
		return ErrHullClosed
	}
	h.closed = true
	return h.ctx.Close()
}

// live panics when the hull has been closed. Views call it on every
// access so stale handles fail fast instead of touching freed native
// memory.
func (h *Hull) live() {
	if h.closed {
		panic("qhull: use of Hull after Close")
	}
}

// Dim returns the declared input dimension.
func (h *Hull) Dim() int { return h.dim }

// NumFacets returns the number of facets in the output graph.
func (h *Hull) NumFacets() int {
	h.live()
	return h.ctx.NumFacets()
}

// NumVertices returns the number of vertices in the output graph.
func (h *Hull) NumVertices() int {
	h.live()
	return h.ctx.NumVertices()
}

// Facets returns a restartable sequence over all facets in the
// library's internal list order. The order is stable for a given input
// and option set but carries no geometric meaning.
func (h *Hull) Facets() iter.Seq[Facet] {
	return func(yield func(Facet) bool) {
		h.live()
		for p := h.ctx.FirstFacet(); p != 0; p = h.ctx.NextFacet(p) {
			if !yield(Facet{h: h, ptr: p, id: h.ctx.FacetID(p)}) {
				return
			}
		}
	}
}

// Simplices returns the simplicial facets. For a Delaunay hull these
// exclude the upper envelope, leaving exactly the triangulation.
func (h *Hull) Simplices() iter.Seq[Facet] {
	return func(yield func(Facet) bool) {
		for f := range h.Facets() {
			if !f.IsSimplicial() {
				continue
			}
			if h.lifted && f.IsUpperDelaunay() {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Vertices returns a restartable sequence over all vertices, same
// ordering contract as Facets.
func (h *Hull) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		h.live()
		for p := h.ctx.FirstVertex(); p != 0; p = h.ctx.NextVertex(p) {
			if !yield(Vertex{h: h, ptr: p, id: h.ctx.VertexID(p)}) {
				return
			}
		}
	}
}

// Area returns the total facet area, or ErrMissingData when the
// computation did not request it (Builder.AreaVolume).
func (h *Hull) Area() (float64, error) {
	h.live()
	if !h.hasArea {
		return 0, ErrMissingData
	}
	return h.ctx.TotArea(), nil
}

// Volume returns the total volume under the same contract as Area.
func (h *Hull) Volume() (float64, error) {
	h.live()
	if !h.hasArea {
		return 0, ErrMissingData
	}
	return h.ctx.TotVolume(), nil
}

// Diagnostics returns the informational text the native library wrote
// during the computation.
func (h *Hull) Diagnostics() string { return h.diag }

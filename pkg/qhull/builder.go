package qhull

import (
	"fmt"
	"io"
	"strings"

	"github.com/hullworks/qhull-go/pkg/qhull/logging"
)

// Mode selects which structure the native library computes.
type Mode int

const (
	// ModeHull computes the convex hull of the input points.
	ModeHull Mode = iota
	// ModeDelaunay triangulates the input via the lifted paraboloid.
	ModeDelaunay
	// ModeVoronoi computes the dual of the Delaunay triangulation.
	ModeVoronoi
	// ModeHalfspace intersects halfspaces about an interior point.
	ModeHalfspace
)

func (m Mode) String() string {
	switch m {
	case ModeHull:
		return "hull"
	case ModeDelaunay:
		return "delaunay"
	case ModeVoronoi:
		return "voronoi"
	case ModeHalfspace:
		return "halfspace"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Builder assembles a computation's inputs. Chain the setters and call
// Build (or Compute); cross-field validation happens in Build, before
// any native call.
type Builder struct {
	dim        int
	points     [][]float64
	mode       Mode
	interior   []float64
	extra      string
	distRound  float64
	angleRound float64
	wantArea   bool
	log        logging.Logger
	diag       io.Writer
}

// New starts a builder for inputs of the given dimension.
func New(dim int) *Builder {
	return &Builder{dim: dim}
}

// AddPoint appends one coordinate tuple. In halfspace mode a tuple is
// the dim normal coefficients followed by the offset.
func (b *Builder) AddPoint(coords ...float64) *Builder {
	p := make([]float64, len(coords))
	copy(p, coords)
	b.points = append(b.points, p)
	return b
}

// AddPoints appends a sequence of coordinate tuples.
func (b *Builder) AddPoints(points [][]float64) *Builder {
	for _, p := range points {
		b.AddPoint(p...)
	}
	return b
}

// Delaunay requests a Delaunay triangulation. The input is lifted to
// the paraboloid in dimension dim+1 before the native call.
func (b *Builder) Delaunay() *Builder {
	b.mode = ModeDelaunay
	return b
}

// Voronoi requests the Voronoi diagram (dual of the Delaunay
// triangulation). Facet centers become the Voronoi vertices.
func (b *Builder) Voronoi() *Builder {
	b.mode = ModeVoronoi
	return b
}

// Halfspace switches to halfspace-intersection mode. Each input tuple
// is a halfspace (normal coefficients plus offset, length dim+1) and
// interior must be a point strictly inside all of them.
func (b *Builder) Halfspace(interior ...float64) *Builder {
	b.mode = ModeHalfspace
	b.interior = make([]float64, len(interior))
	copy(b.interior, interior)
	return b
}

// ExtraOptions passes a raw qhull option string through to the native
// option parser, e.g. "Qt" or "QJ".
func (b *Builder) ExtraOptions(flags string) *Builder {
	b.extra = strings.TrimSpace(flags)
	return b
}

// DistanceRound overrides the maximum roundoff error for distance
// computations (qhull option E).
func (b *Builder) DistanceRound(eps float64) *Builder {
	b.distRound = eps
	return b
}

// AngleRound overrides the cosine tolerance for angle tests (qhull
// option A).
func (b *Builder) AngleRound(eps float64) *Builder {
	b.angleRound = eps
	return b
}

// AreaVolume requests total area and volume statistics; read them with
// Hull.Area and Hull.Volume.
func (b *Builder) AreaVolume() *Builder {
	b.wantArea = true
	return b
}

// Logger routes the wrapper's debug logging. Default: discard.
func (b *Builder) Logger(l logging.Logger) *Builder {
	b.log = l
	return b
}

// Diagnostics receives the informational text the native library
// produces during the computation. Default: discard.
func (b *Builder) Diagnostics(w io.Writer) *Builder {
	b.diag = w
	return b
}

// Build validates the assembled inputs and freezes them into a Config.
// All failures are *ValidationError; no native call is attempted.
func (b *Builder) Build() (*Config, error) {
	if b.dim < 1 {
		return nil, &ValidationError{Field: "dimension", Reason: fmt.Sprintf("must be >= 1, got %d", b.dim)}
	}
	if len(b.points) == 0 {
		return nil, &ValidationError{Field: "points", Reason: "point set is empty"}
	}

	tupleLen := b.dim
	if b.mode == ModeHalfspace {
		tupleLen = b.dim + 1
	}
	for i, p := range b.points {
		if len(p) != tupleLen {
			return nil, &ValidationError{
				Field:  "points",
				Reason: fmt.Sprintf("tuple %d has length %d, want %d", i, len(p), tupleLen),
			}
		}
	}

	if b.mode == ModeHalfspace {
		if len(b.interior) != b.dim {
			return nil, &ValidationError{
				Field:  "interior",
				Reason: fmt.Sprintf("halfspace mode requires an interior point of length %d, got %d", b.dim, len(b.interior)),
			}
		}
		for i, hs := range b.points {
			if dist := halfspaceDistance(hs, b.interior); dist >= 0 {
				return nil, &ValidationError{
					Field:  "interior",
					Reason: fmt.Sprintf("point is not strictly inside halfspace %d (distance %g)", i, dist),
				}
			}
		}
	}

	cfg := &Config{
		dim:        b.dim,
		mode:       b.mode,
		points:     clonePoints(b.points),
		interior:   append([]float64(nil), b.interior...),
		extra:      b.extra,
		distRound:  b.distRound,
		angleRound: b.angleRound,
		wantArea:   b.wantArea,
		log:        b.log,
		diag:       b.diag,
	}
	if cfg.log == nil {
		cfg.log = logging.Discard()
	}
	return cfg, nil
}

// Compute is shorthand for Build followed by Compute.
func (b *Builder) Compute() (*Hull, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}
	return Compute(cfg)
}

// Config is a frozen, validated set of computation inputs. Build one
// with a Builder; a Config never changes after construction and may be
// reused for several computations.
type Config struct {
	dim        int
	mode       Mode
	points     [][]float64
	interior   []float64
	extra      string
	distRound  float64
	angleRound float64
	wantArea   bool
	log        logging.Logger
	diag       io.Writer
}

// Dim returns the declared input dimension.
func (c *Config) Dim() int { return c.dim }

// Mode returns the computation mode.
func (c *Config) Mode() Mode { return c.mode }

// NumPoints returns the number of input tuples.
func (c *Config) NumPoints() int { return len(c.points) }

// commandFlags builds the option string handed to the native option
// parser.
func (c *Config) commandFlags() string {
	var sb strings.Builder
	sb.WriteString("qhull")
	if c.distRound > 0 {
		fmt.Fprintf(&sb, " E%g", c.distRound)
	}
	if c.angleRound > 0 {
		fmt.Fprintf(&sb, " A%g", c.angleRound)
	}
	if c.extra != "" {
		sb.WriteString(" ")
		sb.WriteString(c.extra)
	}
	return sb.String()
}

// nativeCoords prepares the flat coordinate array the native library
// consumes, together with the dimension it runs in. Delaunay and
// Voronoi inputs are lifted to the paraboloid; halfspaces are replaced
// by their dual points about the interior point.
func (c *Config) nativeCoords() (coords []float64, dim int) {
	switch c.mode {
	case ModeDelaunay, ModeVoronoi:
		return flattenPoints(liftToParaboloid(c.points, c.dim)), c.dim + 1
	case ModeHalfspace:
		return flattenPoints(halfspaceDuals(c.points, c.interior)), c.dim
	default:
		return flattenPoints(c.points), c.dim
	}
}

func clonePoints(points [][]float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = append([]float64(nil), p...)
	}
	return out
}

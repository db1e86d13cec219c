package qhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildValidConfig(t *testing.T) {
	cfg, err := New(2).
		AddPoint(0, 0).
		AddPoint(1, 0).
		AddPoint(0, 1).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Dim())
	assert.Equal(t, ModeHull, cfg.Mode())
	assert.Equal(t, 3, cfg.NumPoints())
}

func TestBuildDimensionMismatch(t *testing.T) {
	_, err := New(2).
		AddPoint(0, 0).
		AddPoint(1, 0, 0).
		Build()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "points", verr.Field)
}

func TestBuildRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*Config, error)
		field string
	}{
		{
			name:  "dimension zero",
			build: func() (*Config, error) { return New(0).AddPoint().Build() },
			field: "dimension",
		},
		{
			name:  "negative dimension",
			build: func() (*Config, error) { return New(-3).Build() },
			field: "dimension",
		},
		{
			name:  "empty point set",
			build: func() (*Config, error) { return New(2).Build() },
			field: "points",
		},
		{
			name: "halfspace tuple too short",
			build: func() (*Config, error) {
				return New(2).Halfspace(0, 0).AddPoint(1, 0).Build()
			},
			field: "points",
		},
		{
			name: "halfspace missing interior point",
			build: func() (*Config, error) {
				return New(2).Halfspace().AddPoint(1, 0, -1).Build()
			},
			field: "interior",
		},
		{
			name: "interior point outside halfspace",
			build: func() (*Config, error) {
				return New(2).Halfspace(2, 0).AddPoint(1, 0, -1).Build()
			},
			field: "interior",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

// Duplicate points pass validation; degeneracy handling is deferred to
// the native library.
func TestBuildAcceptsDuplicatePoints(t *testing.T) {
	cfg, err := New(2).
		AddPoints([][]float64{{0, 0}, {0, 0}, {1, 0}, {0, 1}}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.NumPoints())
}

func TestConfigIsFrozen(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	b := New(2).AddPoints(points)
	cfg, err := b.Build()
	require.NoError(t, err)

	// Mutating the caller's slices must not leak into the config.
	points[0][0] = 99
	b.AddPoint(5, 5)
	coords, dim := cfg.nativeCoords()
	assert.Equal(t, 2, dim)
	assert.Equal(t, []float64{0, 0, 1, 0, 0, 1}, coords)
}

func TestCommandFlags(t *testing.T) {
	cfg, err := New(2).AddPoint(0, 0).Build()
	require.NoError(t, err)
	assert.Equal(t, "qhull", cfg.commandFlags())

	cfg, err = New(2).
		AddPoint(0, 0).
		DistanceRound(1e-10).
		AngleRound(1e-12).
		ExtraOptions("Qt QJ").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "qhull E1e-10 A1e-12 Qt QJ", cfg.commandFlags())
}

func TestNativeCoordsByMode(t *testing.T) {
	t.Run("hull passes points through", func(t *testing.T) {
		cfg, err := New(2).AddPoints([][]float64{{1, 2}, {3, 4}}).Build()
		require.NoError(t, err)
		coords, dim := cfg.nativeCoords()
		assert.Equal(t, 2, dim)
		assert.Equal(t, []float64{1, 2, 3, 4}, coords)
	})

	t.Run("delaunay lifts one dimension up", func(t *testing.T) {
		cfg, err := New(1).Delaunay().AddPoints([][]float64{{-1}, {0}, {1}}).Build()
		require.NoError(t, err)
		coords, dim := cfg.nativeCoords()
		assert.Equal(t, 2, dim)
		assert.Equal(t, []float64{-1, 1, 0, 0, 1, 1}, coords)
	})

	t.Run("halfspace substitutes dual points", func(t *testing.T) {
		cfg, err := New(2).
			Halfspace(0, 0).
			AddPoints([][]float64{
				{1, 0, -1},
				{-1, 0, -1},
				{0, 1, -1},
				{0, -1, -1},
			}).
			Build()
		require.NoError(t, err)
		coords, dim := cfg.nativeCoords()
		assert.Equal(t, 2, dim)
		assert.Equal(t, []float64{1, 0, -1, 0, 0, 1, 0, -1}, coords)
	})
}

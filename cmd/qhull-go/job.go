package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hullworks/qhull-go/pkg/qhull"
)

// jobFile is the YAML description of one computation.
//
//	dimension: 2
//	mode: hull            # hull | delaunay | voronoi | halfspace
//	points:
//	  - [0, 0]
//	  - [1, 0]
//	  - [0, 1]
//	interior: [0, 0]      # halfspace mode only
//	options: "Qt"         # raw qhull flags, optional
//	area_volume: true     # request area/volume statistics
type jobFile struct {
	Dimension  int         `yaml:"dimension"`
	Mode       string      `yaml:"mode"`
	Points     [][]float64 `yaml:"points"`
	Interior   []float64   `yaml:"interior"`
	Options    string      `yaml:"options"`
	AreaVolume bool        `yaml:"area_volume"`
}

func loadJob(path string) (*jobFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	var job jobFile
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}
	return &job, nil
}

// builder maps the job onto a qhull.Builder. Input validation beyond
// the mode name is left to Builder.Build.
func (j *jobFile) builder() (*qhull.Builder, error) {
	b := qhull.New(j.Dimension).AddPoints(j.Points)
	switch j.Mode {
	case "", "hull":
	case "delaunay":
		b.Delaunay()
	case "voronoi":
		b.Voronoi()
	case "halfspace":
		b.Halfspace(j.Interior...)
	default:
		return nil, fmt.Errorf("unknown mode %q (want hull, delaunay, voronoi or halfspace)", j.Mode)
	}
	if j.Options != "" {
		b.ExtraOptions(j.Options)
	}
	if j.AreaVolume {
		b.AreaVolume()
	}
	return b, nil
}

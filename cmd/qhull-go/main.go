// Command qhull-go computes a convex hull, Delaunay triangulation,
// Voronoi diagram or halfspace intersection described by a YAML job
// file and prints a summary of the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hullworks/qhull-go/pkg/qhull"
	"github.com/hullworks/qhull-go/pkg/qhull/logging"
)

func main() {
	jobPath := flag.String("job", "", "path to a YAML job file")
	verbose := flag.Bool("v", false, "log computation phases to stderr")
	showFacets := flag.Bool("facets", false, "print the vertex ids of every facet")
	flag.Parse()

	if *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	job, err := loadJob(*jobPath)
	if err != nil {
		log.Fatalf("load job: %v", err)
	}
	b, err := job.builder()
	if err != nil {
		log.Fatalf("configure job: %v", err)
	}
	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		b.Logger(logging.New(slog.New(handler)))
		b.Diagnostics(os.Stderr)
	}

	cfg, err := b.Build()
	if err != nil {
		log.Fatalf("configure job: %v", err)
	}

	hull, err := qhull.Compute(cfg)
	if err != nil {
		if errors.Is(err, qhull.ErrNotBuilt) {
			fmt.Printf("native qhull library unavailable: %v\n", err)
			return
		}
		log.Fatalf("compute: %v", err)
	}
	defer func() {
		if cerr := hull.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	fmt.Printf("mode: %s\n", cfg.Mode())
	fmt.Printf("dimension: %d\n", hull.Dim())
	fmt.Printf("vertices: %d\n", hull.NumVertices())
	fmt.Printf("facets: %d\n", hull.NumFacets())
	if area, err := hull.Area(); err == nil {
		vol, _ := hull.Volume()
		fmt.Printf("area: %g\nvolume: %g\n", area, vol)
	}

	if *showFacets {
		for f := range hull.Facets() {
			vs, err := f.Vertices()
			if err != nil {
				log.Fatalf("facet %d vertices: %v", f.ID(), err)
			}
			fmt.Printf("facet %d:", f.ID())
			for v := range vs {
				fmt.Printf(" %d", v.ID())
			}
			fmt.Println()
		}
	}
}

// Package main renders a shaded-relief image from a CSV elevation grid.
// It smooths the grid, computes the hill shade, and stacks the banded
// fill, shade overlay, and contour lines into a single figure.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/oceanbight/reliefmap/hillshade"
	"github.com/oceanbight/reliefmap/internal/grid"
)

// Config holds the render settings parsed from flags.
type Config struct {
	TopoFile string
	LonFile  string
	LatFile  string
	Smooth   float64
	Factor   float64
	Output   string
	WidthIn  float64
	HeightIn float64
}

func main() {
	var cfg Config
	flag.StringVar(&cfg.TopoFile, "topo", "", "CSV file with the elevation grid (required)")
	flag.StringVar(&cfg.LonFile, "lon", "", "CSV file with longitudes, one per grid column")
	flag.StringVar(&cfg.LatFile, "lat", "", "CSV file with latitudes, one per grid row")
	flag.Float64Var(&cfg.Smooth, "smooth", 5, "Gaussian smoothing sigma")
	flag.Float64Var(&cfg.Factor, "factor", 0.2, "shading factor; smaller backs the shading off")
	flag.StringVar(&cfg.Output, "o", "", "output image (.png, .pdf, .svg); default relief_<timestamp>.png")
	flag.Float64Var(&cfg.WidthIn, "width", 10, "figure width in inches")
	flag.Float64Var(&cfg.HeightIn, "height", 8, "figure height in inches")
	flag.Parse()

	if cfg.TopoFile == "" {
		flag.Usage()
		log.Fatal("missing required -topo flag")
	}
	if (cfg.LonFile == "") != (cfg.LatFile == "") {
		log.Fatal("-lon and -lat must be supplied together")
	}
	if cfg.Output == "" {
		cfg.Output = fmt.Sprintf("relief_%s.png", time.Now().Format("20060102_150405"))
	}

	topo, err := grid.ReadCSV(cfg.TopoFile)
	if err != nil {
		log.Fatalf("load topo: %v", err)
	}

	var lon, lat []float64
	if cfg.LonFile != "" {
		if lon, err = grid.ReadCoordCSV(cfg.LonFile); err != nil {
			log.Fatalf("load lon: %v", err)
		}
		if lat, err = grid.ReadCoordCSV(cfg.LatFile); err != nil {
			log.Fatalf("load lat: %v", err)
		}
	} else {
		// No coordinate files: plot in grid-index space.
		r, c := topo.Dims()
		lon = indexCoords(c)
		lat = indexCoords(r)
	}

	hs, err := hillshade.New(topo, lon, lat, hillshade.Config{
		SmoothSigma:   cfg.Smooth,
		ShadingFactor: cfg.Factor,
	})
	if err != nil {
		log.Fatalf("build hill shade: %v", err)
	}

	p := plot.New()
	p.Title.Text = cfg.TopoFile
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	if err := hs.PlotTopo(p, nil); err != nil {
		log.Fatalf("plot: %v", err)
	}
	if err := p.Save(vg.Length(cfg.WidthIn)*vg.Inch, vg.Length(cfg.HeightIn)*vg.Inch, cfg.Output); err != nil {
		log.Fatalf("save plot: %v", err)
	}
	log.Printf("wrote %s", cfg.Output)
}

func indexCoords(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Package main writes a standalone HTML preview of a CSV elevation grid,
// for quick inspection in a browser without an image viewer or a full
// render pass. Cells are drawn as a dense scatter colored by elevation.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/oceanbight/reliefmap/internal/grid"
	"gonum.org/v1/gonum/mat"
)

// bluesRamp mirrors the brewer Blues palette used by the image renderer.
var bluesRamp = []string{
	"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
	"#4292c6", "#2171b5", "#08519c", "#08306b",
}

func main() {
	var (
		topoFile = flag.String("topo", "", "CSV file with the elevation grid (required)")
		output   = flag.String("o", "relief_preview.html", "output HTML file")
		maxCells = flag.Int("max-cells", 20000, "downsample the grid to at most this many cells")
	)
	flag.Parse()

	if *topoFile == "" {
		flag.Usage()
		log.Fatal("missing required -topo flag")
	}

	topo, err := grid.ReadCSV(*topoFile)
	if err != nil {
		log.Fatalf("load topo: %v", err)
	}

	r, c := topo.Dims()

	// Downsample by stride to stay within maxCells.
	stride := 1
	if r*c > *maxCells {
		stride = int(math.Ceil(math.Sqrt(float64(r*c) / float64(*maxCells))))
	}

	data := make([]opts.ScatterData, 0, r*c/(stride*stride)+1)
	for i := 0; i < r; i += stride {
		for j := 0; j < c; j += stride {
			data = append(data, opts.ScatterData{Value: []interface{}{j, i, topo.At(i, j)}})
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Relief Preview", Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Elevation", Subtitle: fmt.Sprintf("grid=%dx%d stride=%d cells=%d", r, c, stride, len(data))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: c - 1, Name: "Column", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: r - 1, Name: "Row", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(mat.Min(topo)),
			Max:        float32(mat.Max(topo)),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: bluesRamp},
		}),
	)
	scatter.AddSeries("elevation", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		log.Fatalf("render chart: %v", err)
	}
	log.Printf("wrote %s", *output)
}

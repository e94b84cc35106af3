package hillshade

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/oceanbight/reliefmap/cmaps"
	"github.com/oceanbight/reliefmap/internal/grid"
)

// Layer spacing in elevation units.
const (
	fillStep  = 100 // filled band spacing
	lineStep  = 500 // contour line spacing
	overRange = 500 // head-room added above the maximum on the fill scale

	overlayOpacity = 0.5
	lineWidthPt    = 0.25
)

// contourGray is the 10% gray used for the thin contour lines.
var contourGray = color.NRGBA{R: 26, G: 26, B: 26, A: 255}

// DefaultBasePalette returns the base colormap used when PlotTopo's
// caller does not supply one: the brewer "Blues" sequential palette
// resampled to the requested band count.
func DefaultBasePalette(bands int) (palette.Palette, error) {
	p, err := brewer.GetPalette(brewer.TypeSequential, "Blues", 9)
	if err != nil {
		return nil, fmt.Errorf("hillshade: brewer palette: %w", err)
	}
	return cmaps.Resample(p, bands)
}

// PlotTopo draws the shaded relief onto p in three layers, back to front:
// a rasterized fill of the raw elevation banded every 100 units (with
// head-room of 500 above the maximum and clamping beyond both ends), the
// hill shade through the alpha-graded black colormap at half opacity, and
// thin contour lines every 500 units in dark gray. pal colors the fill
// layer; nil selects the default Blues palette.
//
// PlotTopo errors when the HillShade was built without coordinates or
// when the elevation range is degenerate (no contour levels exist between
// min and max).
func (h *HillShade) PlotTopo(p *plot.Plot, pal palette.Palette) error {
	if !h.hasExtent {
		return errors.New("hillshade: PlotTopo needs coordinates supplied at construction")
	}

	minDepth := mat.Min(h.Topo)
	maxDepth := mat.Max(h.Topo)
	if !(maxDepth > minDepth) {
		return fmt.Errorf("hillshade: degenerate elevation range [%g, %g]", minDepth, maxDepth)
	}

	bands := int((maxDepth + overRange - minDepth) / fillStep)
	if bands < 2 {
		bands = 2
	}
	if pal == nil {
		var err error
		pal, err = DefaultBasePalette(bands)
		if err != nil {
			return err
		}
	}

	base := grid.Dense{Data: h.Topo, XCoords: h.Lon, YCoords: h.Lat}
	fill := plotter.NewHeatMap(base, pal)
	fill.Min = minDepth
	fill.Max = maxDepth + overRange
	cols := pal.Colors()
	fill.Underflow = cols[0]
	fill.Overflow = cols[len(cols)-1]
	fill.Rasterized = true
	p.Add(fill)

	overlay := plotter.NewHeatMap(
		grid.Dense{Data: h.Shade, XCoords: h.Lon, YCoords: h.Lat},
		cmaps.WithOpacity(h.Colormap, overlayOpacity),
	)
	overlay.Min = 0
	overlay.Max = 1
	overlay.Rasterized = true
	p.Add(overlay)

	lines := plotter.NewContour(base, levelsBetween(minDepth, maxDepth, lineStep), cmaps.Listed{contourGray})
	lines.LineStyles = []draw.LineStyle{{Color: contourGray, Width: vg.Points(lineWidthPt)}}
	p.Add(lines)

	return nil
}

// levelsBetween returns lo, lo+step, ... strictly below hi.
func levelsBetween(lo, hi, step float64) []float64 {
	var levels []float64
	for v := lo; v < hi; v += step {
		levels = append(levels, v)
	}
	return levels
}

package hillshade

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/oceanbight/reliefmap/cmaps"
)

// Config carries the tunable parameters of the hill-shade pipeline.
type Config struct {
	// SmoothSigma is the standard deviation of the Gaussian blur applied
	// to the elevation grid before shading. Zero selects the default;
	// pass a negative value to skip smoothing entirely.
	SmoothSigma float64
	// ShadingFactor is the exponent applied to the raw light intensity.
	// Values below 1 back the shading off.
	ShadingFactor float64
	// Alpha optionally replaces the overlay colormap's opacity ramp. When
	// set it must hold cmaps.Levels values in [0,1].
	Alpha []float64
}

// DefaultConfig returns the parameters the published figures use.
func DefaultConfig() Config {
	return Config{SmoothSigma: 5, ShadingFactor: 0.2}
}

// HillShade derives everything needed to overlay shaded relief on a map:
// a smoothed elevation grid, a light intensity grid, and an alpha-graded
// black colormap. All fields are computed at construction and must be
// treated as read-only afterwards.
type HillShade struct {
	Topo     *mat.Dense
	Lon, Lat []float64

	// Smoothed is the Gaussian-smoothed elevation grid.
	Smoothed *mat.Dense
	// Shade holds the light intensity in [0,1], already raised to the
	// shading factor.
	Shade *mat.Dense
	// Colormap is black with an opaque-to-transparent alpha ramp, for
	// rendering Shade over a colored base layer.
	Colormap cmaps.Listed

	extent    [4]float64
	hasExtent bool
}

// New builds the hill shade for topo. lon and lat are optional but must
// be supplied together; when present they fix the display extent used by
// PlotTopo. Zero Config fields fall back to DefaultConfig values. The
// shapes of topo and the coordinate vectors are not cross-checked here; a
// mismatch surfaces from the plotting layer.
func New(topo *mat.Dense, lon, lat []float64, cfg Config) (*HillShade, error) {
	if topo == nil {
		return nil, errors.New("hillshade: nil elevation grid")
	}
	if (lon == nil) != (lat == nil) {
		return nil, errors.New("hillshade: longitude and latitude must be supplied together")
	}
	if cfg.SmoothSigma == 0 {
		cfg.SmoothSigma = DefaultConfig().SmoothSigma
	}
	if cfg.ShadingFactor == 0 {
		cfg.ShadingFactor = DefaultConfig().ShadingFactor
	}

	h := &HillShade{Topo: topo, Lon: lon, Lat: lat}
	if lon != nil {
		if len(lon) == 0 || len(lat) == 0 {
			return nil, errors.New("hillshade: empty coordinate vector")
		}
		// Latitude bounds are flipped so row 0 lands at the top of an
		// image-style display.
		h.extent = [4]float64{floats.Min(lon), floats.Max(lon), floats.Max(lat), floats.Min(lat)}
		h.hasExtent = true
	}

	kmap, err := cmaps.Linear(cmaps.Levels, cmaps.Stop{Pos: 0, Col: color.Black})
	if err != nil {
		return nil, fmt.Errorf("hillshade: build colormap: %w", err)
	}
	h.Colormap, err = cmaps.AddAlpha(kmap, cfg.Alpha)
	if err != nil {
		return nil, fmt.Errorf("hillshade: alpha channel: %w", err)
	}

	h.Smoothed = GaussianSmooth(topo, cfg.SmoothSigma)
	h.Shade = Shade(h.Smoothed, cfg.ShadingFactor)
	return h, nil
}

// TopoExtent returns the display extent as (min lon, max lon, max lat,
// min lat). It errors when the HillShade was built without coordinates.
func (h *HillShade) TopoExtent() ([4]float64, error) {
	if !h.hasExtent {
		return [4]float64{}, errors.New("hillshade: no coordinates supplied at construction")
	}
	return h.extent, nil
}

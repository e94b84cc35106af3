// Package hillshade generates shaded-relief overlays for topographic and
// bathymetric maps.
//
// Responsibilities: Gaussian smoothing of elevation grids, light-source
// intensity computation, the alpha-graded overlay colormap, and a
// convenience renderer that stacks a banded elevation fill, the shade
// overlay, and thin contour lines onto a gonum/plot plot.
// Key types: HillShade, Config, LightSource.
//
// Everything is computed eagerly at construction; a HillShade is
// read-only afterwards and safe to share between goroutines on that
// basis.
package hillshade

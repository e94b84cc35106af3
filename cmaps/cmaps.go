// Package cmaps builds discrete colormaps for scientific plotting:
// piecewise-linear ramps, three-color diverging maps, and alpha-channel
// manipulation. Every table implements gonum/plot's palette.Palette so it
// plugs directly into heat maps and contour plotters.
package cmaps

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// Levels is the table size used for generated colormaps.
const Levels = 256

// Listed is a fixed, ordered color table.
type Listed []color.Color

var _ palette.Palette = Listed(nil)

// Colors implements palette.Palette.
func (l Listed) Colors() []color.Color { return l }

// Stop is a color pinned to a position in [0,1] on a ramp.
type Stop struct {
	Pos float64
	Col color.Color
}

// Linear interpolates an n-entry table through the given stops. Stop
// positions must be ascending within [0,1]. The table is constant before
// the first stop and after the last; a single stop therefore yields a
// constant-color table.
func Linear(n int, stops ...Stop) (Listed, error) {
	if n < 2 {
		return nil, fmt.Errorf("cmaps: table size %d too small", n)
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("cmaps: no color stops")
	}
	for i, s := range stops {
		if s.Pos < 0 || s.Pos > 1 {
			return nil, fmt.Errorf("cmaps: stop %d position %g outside [0,1]", i, s.Pos)
		}
		if i > 0 && s.Pos < stops[i-1].Pos {
			return nil, fmt.Errorf("cmaps: stop positions must be ascending")
		}
		if s.Col == nil {
			return nil, fmt.Errorf("cmaps: stop %d has no color", i)
		}
	}
	out := make(Listed, n)
	for i := range out {
		out[i] = colorAt(float64(i)/float64(n-1), stops)
	}
	return out, nil
}

func colorAt(t float64, stops []Stop) color.NRGBA {
	if t <= stops[0].Pos {
		return toNRGBA(stops[0].Col)
	}
	last := stops[len(stops)-1]
	if t >= last.Pos {
		return toNRGBA(last.Col)
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Pos {
			continue
		}
		lo, hi := stops[i-1], stops[i]
		span := hi.Pos - lo.Pos
		if span == 0 {
			return toNRGBA(hi.Col)
		}
		return lerp(toNRGBA(lo.Col), toNRGBA(hi.Col), (t-lo.Pos)/span)
	}
	return toNRGBA(last.Col)
}

// AddAlpha returns a copy of p with its alpha channel replaced. A nil
// alpha uses a linear ramp from opaque at entry 0 to transparent at the
// last entry. A non-nil alpha must hold one value in [0,1] per entry.
func AddAlpha(p palette.Palette, alpha []float64) (Listed, error) {
	cols := p.Colors()
	n := len(cols)
	if n == 0 {
		return nil, fmt.Errorf("cmaps: empty palette")
	}
	if alpha == nil {
		alpha = make([]float64, n)
		alpha[0] = 1
		for i := 1; i < n; i++ {
			alpha[i] = 1 - float64(i)/float64(n-1)
		}
	}
	if len(alpha) != n {
		return nil, fmt.Errorf("cmaps: %d alpha values for %d colors", len(alpha), n)
	}
	out := make(Listed, n)
	for i, c := range cols {
		a := alpha[i]
		if a < 0 || a > 1 {
			return nil, fmt.Errorf("cmaps: alpha %d value %g outside [0,1]", i, a)
		}
		nc := toNRGBA(c)
		nc.A = uint8(math.Round(a * 255))
		out[i] = nc
	}
	return out, nil
}

// Diverging builds an n-color diverging colormap running low through mid
// to high. The usual scientific choice is blue to white to red with 11
// colors.
func Diverging(n int, low, mid, high color.Color) (Listed, error) {
	return Linear(n, Stop{Pos: 0, Col: low}, Stop{Pos: 0.5, Col: mid}, Stop{Pos: 1, Col: high})
}

// Resample linearly resamples p to an n-entry table.
func Resample(p palette.Palette, n int) (Listed, error) {
	cols := p.Colors()
	if len(cols) == 0 {
		return nil, fmt.Errorf("cmaps: empty palette")
	}
	if len(cols) == 1 {
		return Linear(n, Stop{Pos: 0, Col: cols[0]})
	}
	stops := make([]Stop, len(cols))
	for i, c := range cols {
		stops[i] = Stop{Pos: float64(i) / float64(len(cols)-1), Col: c}
	}
	return Linear(n, stops...)
}

// WithOpacity scales the alpha channel of every entry in p by opacity,
// clamped to [0,1]. The palette itself is left untouched.
func WithOpacity(p palette.Palette, opacity float64) Listed {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	cols := p.Colors()
	out := make(Listed, len(cols))
	for i, c := range cols {
		nc := toNRGBA(c)
		nc.A = uint8(math.Round(float64(nc.A) * opacity))
		out[i] = nc
	}
	return out
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}

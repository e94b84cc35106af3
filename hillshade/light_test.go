package hillshade

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func bumpyGrid(r, c int) *mat.Dense {
	g := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g.Set(i, j, 1000*math.Sin(float64(i)/3)*math.Cos(float64(j)/4))
		}
	}
	return g
}

func TestIntensityBounded(t *testing.T) {
	ls := LightSource{AzimuthDeg: DefaultAzimuthDeg, AltitudeDeg: DefaultAltitudeDeg}
	out := ls.Intensity(bumpyGrid(20, 30))
	r, c := out.Dims()
	if r != 20 || c != 30 {
		t.Fatalf("intensity dims = (%d, %d), want (20, 30)", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := out.At(i, j)
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("intensity at (%d, %d) = %v, outside [0,1]", i, j, v)
			}
		}
	}
}

func TestIntensityStretchesToFullRange(t *testing.T) {
	ls := LightSource{AzimuthDeg: DefaultAzimuthDeg, AltitudeDeg: DefaultAltitudeDeg}
	out := ls.Intensity(bumpyGrid(20, 30))
	if d := math.Abs(mat.Min(out)); d > 1e-9 {
		t.Errorf("stretched minimum = %v, want 0", mat.Min(out))
	}
	if d := math.Abs(mat.Max(out) - 1); d > 1e-9 {
		t.Errorf("stretched maximum = %v, want 1", mat.Max(out))
	}
}

func TestIntensityKnownPlane(t *testing.T) {
	// Elevation rising with row index slopes away from the top of the
	// display. With the default light the unstretched intensity is
	// (-gx*lx - gy*ly + lz)/sqrt(2) with gx = 0 and gy = -1 in up-axis
	// terms: about 0.355097 everywhere. The mirrored slope (the sign
	// error this guards against) would give 0.456063 instead.
	g := mat.NewDense(8, 8, nil)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			g.Set(i, j, float64(i))
		}
	}

	ls := LightSource{AzimuthDeg: DefaultAzimuthDeg, AltitudeDeg: DefaultAltitudeDeg}
	out := ls.Intensity(g)

	az := (90 - DefaultAzimuthDeg) * math.Pi / 180
	alt := DefaultAltitudeDeg * math.Pi / 180
	ly := math.Sin(az) * math.Cos(alt)
	lz := math.Sin(alt)
	want := (-(-1)*ly + lz) / math.Sqrt2

	if math.Abs(want-0.355097) > 1e-5 {
		t.Fatalf("reference value drifted: %v", want)
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if d := math.Abs(out.At(i, j) - want); d > 1e-9 {
				t.Fatalf("intensity at (%d, %d) = %v, want %v", i, j, out.At(i, j), want)
			}
		}
	}
}

func TestIntensityFlatSurface(t *testing.T) {
	g := mat.NewDense(5, 5, nil)
	ls := LightSource{AzimuthDeg: DefaultAzimuthDeg, AltitudeDeg: DefaultAltitudeDeg}
	out := ls.Intensity(g)

	// With no gradient the dot product reduces to sin(altitude),
	// clamped: a uniform level, not a stretched one.
	want := clamp01(math.Sin(DefaultAltitudeDeg * math.Pi / 180))
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if d := math.Abs(out.At(i, j) - want); d > 1e-12 {
				t.Fatalf("flat intensity at (%d, %d) = %v, want %v", i, j, out.At(i, j), want)
			}
		}
	}
}

func TestShadeBacksOff(t *testing.T) {
	g := bumpyGrid(20, 30)

	// A smaller factor compresses intensities toward 1, so the grid
	// minimum must not decrease as the factor shrinks.
	sharp := Shade(g, 1.0)
	soft := Shade(g, 0.2)
	if mat.Min(soft) < mat.Min(sharp) {
		t.Errorf("factor 0.2 minimum %v below factor 1.0 minimum %v",
			mat.Min(soft), mat.Min(sharp))
	}
	if mat.Max(soft) > 1 || mat.Max(sharp) > 1 {
		t.Error("shade exceeded 1")
	}
}

func TestShadeDeterministic(t *testing.T) {
	g := bumpyGrid(15, 15)
	a := Shade(g, 0.2)
	b := Shade(g, 0.2)
	if !mat.EqualApprox(a, b, 1e-10) {
		t.Error("identical inputs produced different shade grids")
	}
}

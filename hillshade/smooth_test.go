package hillshade

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestGaussianSmoothPreservesShape(t *testing.T) {
	g := mat.NewDense(7, 11, nil)
	for i := 0; i < 7; i++ {
		for j := 0; j < 11; j++ {
			g.Set(i, j, float64(i*j))
		}
	}
	s := GaussianSmooth(g, 2)
	r, c := s.Dims()
	if r != 7 || c != 11 {
		t.Fatalf("smoothed dims = (%d, %d), want (7, 11)", r, c)
	}
}

func TestGaussianSmoothConstant(t *testing.T) {
	g := mat.NewDense(5, 5, nil)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			g.Set(i, j, 42)
		}
	}
	s := GaussianSmooth(g, 5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if d := math.Abs(s.At(i, j) - 42); d > 1e-10 {
				t.Fatalf("constant grid changed at (%d, %d): %v", i, j, s.At(i, j))
			}
		}
	}
}

func TestGaussianSmoothBounded(t *testing.T) {
	// Smoothing is an average: output stays within the input range.
	g := mat.NewDense(10, 10, nil)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			g.Set(i, j, math.Sin(float64(i))*math.Cos(float64(j)))
		}
	}
	lo, hi := mat.Min(g), mat.Max(g)
	s := GaussianSmooth(g, 3)
	if mat.Min(s) < lo-1e-10 || mat.Max(s) > hi+1e-10 {
		t.Errorf("smoothed range [%v, %v] escapes input range [%v, %v]",
			mat.Min(s), mat.Max(s), lo, hi)
	}
}

func TestGaussianSmoothZeroSigmaCopies(t *testing.T) {
	g := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	s := GaussianSmooth(g, 0)
	if !mat.Equal(g, s) {
		t.Error("sigma 0 should return the input unchanged")
	}
	s.Set(0, 0, 99)
	if g.At(0, 0) != 1 {
		t.Error("sigma 0 must return a copy, not the input matrix")
	}
}

func TestReflectIndex(t *testing.T) {
	cases := []struct{ i, n, want int }{
		{0, 4, 0},
		{3, 4, 3},
		{-1, 4, 0},
		{-2, 4, 1},
		{4, 4, 3},
		{5, 4, 2},
		{-1, 1, 0},
		{9, 4, 1},
	}
	for _, tc := range cases {
		if got := reflectIndex(tc.i, tc.n); got != tc.want {
			t.Errorf("reflectIndex(%d, %d) = %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}

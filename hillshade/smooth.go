package hillshade

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// GaussianSmooth applies an isotropic 2-D Gaussian blur with standard
// deviation sigma to g. The kernel is separable and truncated at 4σ, and
// boundaries reflect (d c b a | a b c d | d c b a). The result has the
// shape of g; a non-positive sigma returns an unsmoothed copy.
func GaussianSmooth(g *mat.Dense, sigma float64) *mat.Dense {
	if sigma <= 0 {
		return mat.DenseCopyOf(g)
	}

	k := gaussKernel(sigma)
	radius := len(k) / 2
	r, c := g.Dims()

	// Horizontal pass, then vertical.
	tmp := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			acc := 0.0
			for t, w := range k {
				acc += w * g.At(i, reflectIndex(j+t-radius, c))
			}
			tmp.Set(i, j, acc)
		}
	}

	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			acc := 0.0
			for t, w := range k {
				acc += w * tmp.At(reflectIndex(i+t-radius, r), j)
			}
			out.Set(i, j, acc)
		}
	}
	return out
}

// gaussKernel returns a normalised Gaussian kernel truncated at 4σ.
func gaussKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	k := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range k {
		x := float64(i - radius)
		k[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// reflectIndex maps an out-of-range index into [0,n). Reflection is
// periodic with period 2n.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}

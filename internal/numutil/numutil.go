// Package numutil provides small numeric helpers shared by the plotting
// packages: nearest-index search over sorted data and shape introspection
// of loosely typed containers.
package numutil

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Near returns the index of the value in a closest to target. a must be
// sorted in ascending order. When target is equidistant from its two
// neighbours the right one wins.
func Near(a []float64, target float64) (int, error) {
	if len(a) == 0 {
		return 0, errors.New("numutil: nearest-index search on empty slice")
	}
	if len(a) == 1 {
		return 0, nil
	}
	idx := sort.SearchFloat64s(a, target)
	if idx < 1 {
		idx = 1
	}
	if idx > len(a)-1 {
		idx = len(a) - 1
	}
	if target-a[idx-1] < a[idx]-target {
		idx--
	}
	return idx, nil
}

// NearAll is Near applied to every element of targets.
func NearAll(a, targets []float64) ([]int, error) {
	out := make([]int, len(targets))
	for i, t := range targets {
		idx, err := Near(a, t)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		out[i] = idx
	}
	return out, nil
}

// Shapes reports the dimensional shape of every entry in a string-keyed
// map: matrices map to [rows cols], nested slices to their per-axis
// lengths, and scalars to an empty shape. Any map with string keys works,
// whatever its value type; any other value for v yields nil.
func Shapes(v any) map[string][]int {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	out := make(map[string][]int, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = shapeOf(iter.Value().Interface())
	}
	return out
}

func shapeOf(v any) []int {
	if mx, ok := v.(mat.Matrix); ok {
		r, c := mx.Dims()
		return []int{r, c}
	}
	shape := []int{}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			break
		}
		rv = rv.Index(0)
		if rv.Kind() == reflect.Interface {
			rv = rv.Elem()
		}
	}
	return shape
}

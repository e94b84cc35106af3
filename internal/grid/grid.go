// Package grid adapts matrix-backed elevation grids to the GridXYZ
// interface used by gonum/plot heat maps and contour plotters, and loads
// rectangular grids from CSV for the command-line tools.
package grid

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Dense couples a dense matrix with optional X and Y coordinate vectors.
// Row r, column c of the matrix holds the value at (XCoords[c],
// YCoords[r]); a nil coordinate vector falls back to the grid index.
// Dense implements plotter.GridXYZ.
type Dense struct {
	Data    *mat.Dense
	XCoords []float64 // column coordinates, ascending
	YCoords []float64 // row coordinates, ascending
}

// Dims returns the column and row counts of the grid.
func (g Dense) Dims() (c, r int) {
	r, c = g.Data.Dims()
	return c, r
}

// Z returns the value at column c, row r.
func (g Dense) Z(c, r int) float64 { return g.Data.At(r, c) }

// X returns the coordinate of column c.
func (g Dense) X(c int) float64 {
	if g.XCoords == nil {
		return float64(c)
	}
	return g.XCoords[c]
}

// Y returns the coordinate of row r.
func (g Dense) Y(r int) float64 {
	if g.YCoords == nil {
		return float64(r)
	}
	return g.YCoords[r]
}

// ReadCSV loads a rectangular numeric grid from a CSV file. Every record
// must have the same number of fields.
func ReadCSV(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read grid %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("grid %s is empty", path)
	}

	rows := len(records)
	cols := len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("grid %s: row %d has %d fields, want %d", path, i, len(rec), cols)
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("grid %s: row %d field %d: %w", path, i, j, err)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}

// ReadCoordCSV loads a coordinate vector from a CSV file holding a single
// row or a single column of numbers.
func ReadCoordCSV(path string) ([]float64, error) {
	m, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}
	r, c := m.Dims()
	switch {
	case r == 1:
		return m.RawRowView(0), nil
	case c == 1:
		out := make([]float64, r)
		for i := range out {
			out[i] = m.At(i, 0)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("coordinates %s: want a single row or column, got %dx%d", path, r, c)
	}
}

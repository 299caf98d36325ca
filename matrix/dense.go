// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.

package matrix

import (
	"fmt"
	"strings"
)

// error context tags
const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxAddAt = "AddAt"
	ctxRow   = "Row"
)

// denseErrorf wraps err with the method tag and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix. Zero-sized shapes are legal (a graph
// with no vertices has a 0×0 weight matrix); negative sizes are not.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

func (d *Dense) inBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < d.r && j < d.c
}

// At returns the element at (i,j).
func (d *Dense) At(i, j int) (float64, error) {
	if !d.inBounds(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set assigns v at (i,j).
func (d *Dense) Set(i, j int, v float64) error {
	if !d.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// AddAt adds delta to the element at (i,j).
func (d *Dense) AddAt(i, j int, delta float64) error {
	if !d.inBounds(i, j) {
		return denseErrorf(ctxAddAt, i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] += delta

	return nil
}

// Row returns row i as a slice sharing the matrix storage. Writes through the
// slice mutate the matrix.
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return d.data[i*d.c : (i+1)*d.c : (i+1)*d.c], nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return &Dense{r: d.r, c: d.c, data: buf}
}

// IsSymmetric reports whether d is square and d[i][j] == d[j][i] for all i,j.
func (d *Dense) IsSymmetric() bool {
	if d.r != d.c {
		return false
	}
	for i := 0; i < d.r; i++ {
		for j := i + 1; j < d.c; j++ {
			if d.data[i*d.c+j] != d.data[j*d.c+i] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix one bracketed row per line.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString("[")
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", d.data[i*d.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Package table loads rectangular numeric tables from comma-delimited text.
package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DefaultPath is the file read when no input is given.
const DefaultPath = "velocity.csv"

// Table is an R x C grid of float64 values. Row i is one snapshot, column j
// one spatial grid point.
type Table struct {
	m *mat.Dense // nil when the table is empty
}

// New returns a table over rows. All rows must have the same length.
func New(rows [][]float64) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Table{}, nil
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, &kindError{kind: ErrParse, err: fieldCountError(i+1, len(row), c)}
		}
		data = append(data, row...)
	}
	return &Table{m: mat.NewDense(len(rows), c, data)}, nil
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (r, c int) {
	if t == nil || t.m == nil {
		return 0, 0
	}
	return t.m.Dims()
}

// Empty reports whether the table has no values.
func (t *Table) Empty() bool {
	r, c := t.Dims()
	return r == 0 || c == 0
}

// At returns the value at row i, column j. It panics when the indices are
// out of range, which includes every index of an empty table.
func (t *Table) At(i, j int) float64 {
	r, c := t.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		panic(fmt.Sprintf("table: index (%d, %d) out of range for %dx%d table", i, j, r, c))
	}
	return t.m.At(i, j)
}

// Row returns a copy of row i. Like At, it panics when i is out of range.
func (t *Table) Row(i int) []float64 {
	if r, _ := t.Dims(); i < 0 || i >= r {
		panic(fmt.Sprintf("table: row %d out of range for %d rows", i, r))
	}
	return mat.Row(nil, i, t.m)
}

// Rows returns a copy of the whole table.
func (t *Table) Rows() [][]float64 {
	r, _ := t.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = t.Row(i)
	}
	return out
}

// Matrix exposes the backing matrix. It is nil for an empty table.
func (t *Table) Matrix() mat.Matrix {
	if t == nil || t.m == nil {
		return nil
	}
	return t.m
}

// Equal reports whether both tables have the same shape and values.
func (t *Table) Equal(o *Table) bool {
	if t.Empty() || o.Empty() {
		return t.Empty() == o.Empty()
	}
	return mat.Equal(t.m, o.m)
}

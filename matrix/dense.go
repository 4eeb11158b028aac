// Package matrix provides the exact Dense matrix used by every direct solver.
// Dense stores elements in a flat slice for cache friendliness; each element
// is an immutable rational.Value, so Clone only copies the slice header data.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsys/rational"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (zero Values are 0).
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]rational.Value, rows*cols)}, nil
}

// NewFromRows builds a Dense from row slices, copying every value.
// Returns ErrInvalidDimensions for an empty input and ErrBadShape for ragged rows.
// Complexity: O(r*c).
func NewFromRows(rows [][]rational.Value) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d entries, want %d: %w", i, len(row), cols, ErrBadShape)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewFromInts builds a Dense from integer rows.
func NewFromInts(rows [][]int64) (*Dense, error) {
	vals := make([][]rational.Value, len(rows))
	for i, row := range rows {
		vals[i] = make([]rational.Value, len(row))
		for j, x := range row {
			vals[i][j] = rational.FromInt(x)
		}
	}

	return NewFromRows(vals)
}

// NewFromFloats builds a Dense from float rows, snapping each entry to its
// closest simple fraction (see rational.FromFloat64).
// Returns ErrNotFinite for NaN/±Inf entries.
func NewFromFloats(rows [][]float64) (*Dense, error) {
	vals := make([][]rational.Value, len(rows))
	var err error
	for i, row := range rows {
		vals[i] = make([]rational.Value, len(row))
		for j, x := range row {
			if vals[i][j], err = rational.FromFloat64(x); err != nil {
				return nil, fmt.Errorf("NewFromFloats(%d,%d): %w", i, j, ErrNotFinite)
			}
		}
	}

	return NewFromRows(vals)
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = rational.One()
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// IsSquare reports whether Rows == Cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (rational.Value, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return rational.Zero(), err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v rational.Value) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make(Vector, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ToRows returns a deep copy of the matrix as row slices. Solvers use it to
// take their private working copy.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]rational.Value {
	out := make([][]rational.Value, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]rational.Value, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]rational.Value, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports exact element-wise equality and identical shape.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

package matrix

import (
	"fmt"
	"math"
)

// DefaultValidateNaNInf is the numeric policy new Dense matrices start
// with: Set rejects non-finite values unless a caller opts out.
const DefaultValidateNaNInf = true

// Matrix is the minimal shape shared by dense numeric matrices in this
// package. Dense is presently its only implementation; the interface
// exists so callers that only read cells (schedule's distance lookups)
// don't need to depend on the concrete type.
type Matrix interface {
	Rows() int
	Cols() int
	At(row, col int) (float64, error)
	Set(row, col int, v float64) error
}

var _ Matrix = (*Dense)(nil)

// Dense is a concrete row-major matrix backed by a flat slice.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

// denseErrorf wraps err with the method and coordinates that produced it.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense allocates an r×c Dense matrix initialized to zero.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set writes v at (row, col), rejecting non-finite values under the
// default numeric policy.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

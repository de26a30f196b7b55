package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned by NewDense when rows or cols is
	// not strictly positive.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. At/Set return this rather than panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was rejected by Set under the
	// default numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

package matrix

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDenseRejectsNonPositiveDimensions(t *testing.T) {
	_, err := NewDense(0, 3)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewDense(3, -1)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestDenseSetAndAtRoundTrip(t *testing.T) {
	m, err := NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestDenseAtOutOfRange(t *testing.T) {
	m, err := NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.True(t, errors.Is(err, ErrOutOfRange))

	_, err = m.At(0, -1)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestDenseSetRejectsNaNByDefault(t *testing.T) {
	m, err := NewDense(1, 1)
	require.NoError(t, err)

	err = m.Set(0, 0, math.NaN())
	require.ErrorIs(t, err, ErrNaNInf)
}

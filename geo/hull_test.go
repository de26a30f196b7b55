package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestConvexHullBoundarySquareWithInterior(t *testing.T) {
	pts := []Planar{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
		{X: 2, Y: 2}, // interior, must not appear
	}
	hull, err := ConvexHullBoundary(pts)
	require.NoError(t, err)
	require.Len(t, hull, 4)
	require.NotContains(t, hull, 4)
}

func TestConvexHullBoundaryDegenerate(t *testing.T) {
	_, err := ConvexHullBoundary([]Planar{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.ErrorIs(t, err, ErrDegenerate)
}

// TestPropertyHullPointsAreExtreme checks that every index returned by
// ConvexHullBoundary is, for at least one direction, the unique extreme
// point among the input set -- a necessary condition for hull membership.
func TestPropertyHullPointsAreExtreme(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(3, 12).Draw(rt, "n")
		pts := make([]Planar, n)
		for i := range pts {
			pts[i] = Planar{
				X: rapid.Float64Range(-100, 100).Draw(rt, "x"),
				Y: rapid.Float64Range(-100, 100).Draw(rt, "y"),
			}
		}

		hull, err := ConvexHullBoundary(pts)
		if err != nil {
			return // degenerate draw (collinear etc.): not under test here
		}

		for _, idx := range hull {
			if !isExtremeInSomeDirection(pts, idx) {
				rt.Fatalf("hull index %d is not extreme in any sampled direction", idx)
			}
		}
	})
}

// isExtremeInSomeDirection samples a ring of directions and checks whether
// pts[idx] achieves the maximum projection for at least one of them.
func isExtremeInSomeDirection(pts []Planar, idx int) bool {
	const directions = 36
	for k := 0; k < directions; k++ {
		theta := 2 * math.Pi * float64(k) / directions
		dx, dy := math.Cos(theta), math.Sin(theta)

		best := 0
		bestDot := pts[0].X*dx + pts[0].Y*dy
		for i := 1; i < len(pts); i++ {
			dot := pts[i].X*dx + pts[i].Y*dy
			if dot > bestDot {
				best, bestDot = i, dot
			}
		}
		if best == idx {
			return true
		}
	}

	return false
}

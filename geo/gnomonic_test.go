package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGnomonicProjectionPreservesRelativeBearing(t *testing.T) {
	pts := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0.01, Lng: 0},
		{Lat: 0, Lng: 0.01},
		{Lat: -0.01, Lng: -0.01},
	}
	require.NoError(t, ValidateHemisphere(pts))

	planar := GnomonicProjection(pts)
	require.Len(t, planar, len(pts))

	north := planar[1]
	east := planar[2]
	require.Greater(t, north.Y, 0.0)
	require.Greater(t, east.X, 0.0)
}

func TestGnomonicProjectionEmptyInput(t *testing.T) {
	require.Empty(t, GnomonicProjection(nil))
}

func TestValidateHemisphereRejectsWideSpread(t *testing.T) {
	pts := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: math.Pi},
	}
	require.ErrorIs(t, ValidateHemisphere(pts), ErrNotHemispherical)
}

func TestValidateHemisphereAcceptsTightCluster(t *testing.T) {
	pts := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0.1, Lng: 0.1},
		{Lat: -0.1, Lng: -0.1},
	}
	require.NoError(t, ValidateHemisphere(pts))
}

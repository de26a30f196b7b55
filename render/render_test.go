package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcsine/fieldplan/portal"
)

func trianglePortals() []portal.Portal {
	return []portal.Portal{
		{Name: "A", Pos: portal.LatLng{Lat: 0, Lng: 0}, Keys: 1},
		{Name: "B", Pos: portal.LatLng{Lat: 0, Lng: 0.01}, Keys: 1},
		{Name: "C", Pos: portal.LatLng{Lat: 0.01, Lng: 0}, Keys: 1},
	}
}

func TestPortalMapProducesWellFormedSVG(t *testing.T) {
	g, err := portal.NewGraph(trianglePortals())
	require.NoError(t, err)

	out := PortalMap(g, DefaultOptions())
	require.Contains(t, string(out), "<svg")
	require.Contains(t, string(out), "</svg>")
	require.Contains(t, string(out), "A")
}

func TestLinkMapUsesThemeColors(t *testing.T) {
	g, err := portal.NewGraph(trianglePortals())
	require.NoError(t, err)
	_, err = g.PushLink(0, 1, false)
	require.NoError(t, err)

	green := LinkMap(g, Options{Theme: ThemeGreen})
	require.Contains(t, string(green), foregroundColor(ThemeGreen))

	blue := LinkMap(g, Options{Theme: ThemeBlue})
	require.Contains(t, string(blue), foregroundColor(ThemeBlue))
}

func TestPlanarLayoutHandlesSinglePortalWithoutDivideByZero(t *testing.T) {
	g, err := portal.NewGraph([]portal.Portal{
		{Name: "Solo", Pos: portal.LatLng{Lat: 0, Lng: 0}, Keys: 0},
	})
	require.NoError(t, err)

	require.NotPanics(t, func() {
		PortalMap(g, DefaultOptions())
	})
}

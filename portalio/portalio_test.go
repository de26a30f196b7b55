package portalio

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDirectLatLngForm(t *testing.T) {
	input := "Town Hall; 40.7484; -73.9857; 3\n"
	portals := Parse(strings.NewReader(input))
	require.Len(t, portals, 1)
	require.Equal(t, "Town Hall", portals[0].Name)
	require.Equal(t, 3, portals[0].Keys)
	require.InDelta(t, 40.7484*math.Pi/180, portals[0].Pos.Lat, 1e-9)
	require.InDelta(t, -73.9857*math.Pi/180, portals[0].Pos.Lng, 1e-9)
}

func TestParseURLFormDefaultsKeysToZero(t *testing.T) {
	input := "Statue; https://intel.ingress.com/intel?ll=40.6892,-74.0445&z=17\n"
	portals := Parse(strings.NewReader(input))
	require.Len(t, portals, 1)
	require.Equal(t, 0, portals[0].Keys)
	require.InDelta(t, 40.6892*math.Pi/180, portals[0].Pos.Lat, 1e-9)
	require.InDelta(t, -74.0445*math.Pi/180, portals[0].Pos.Lng, 1e-9)
}

func TestParseSkipsLinesMatchingNeitherForm(t *testing.T) {
	input := strings.Join([]string{
		"Valid; 1.0; 2.0; 5",
		"garbage line with no separators",
		"Also Bad; not-a-number; still-not",
		"",
	}, "\n")

	portals := Parse(strings.NewReader(input))
	require.Len(t, portals, 1)
	require.Equal(t, "Valid", portals[0].Name)
}

package planfile

import (
	"path/filepath"
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

func samplePlan(t *testing.T) *Plan {
	g, err := portal.NewGraph(trianglePortals())
	require.NoError(t, err)
	_, err = g.PushLink(0, 1, false)
	require.NoError(t, err)
	_, err = g.PushLink(1, 2, false)
	require.NoError(t, err)
	l, err := g.PushLink(2, 0, false)
	require.NoError(t, err)
	l.Fields = [][3]int{{0, 1, 2}}
	g.WalkTimeSeconds = 12.5
	g.LinkTimeSeconds = 45
	g.CommTimeSeconds = 60

	return FromGraph(g)
}

func TestMarshalUnmarshalRoundTripsExcludingID(t *testing.T) {
	p := samplePlan(t)
	data, err := p.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)

	got.ID = p.ID
	require.Equal(t, p, got)
}

func TestSaveOpenRoundTripIsByteIdentical(t *testing.T) {
	p := samplePlan(t)
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, Save(p, path))

	reopened, err := Open(path)
	require.NoError(t, err)

	data1, err := p.Marshal()
	require.NoError(t, err)
	data2, err := reopened.Marshal()
	require.NoError(t, err)
	require.Equal(t, data1, data2)
}

func TestGraphReconstructsPortalsLinksAndTimes(t *testing.T) {
	p := samplePlan(t)
	g, err := p.Graph()
	require.NoError(t, err)

	require.Len(t, g.Portals, 3)
	require.Len(t, g.Links, 3)
	require.Equal(t, 12.5, g.WalkTimeSeconds)
	require.Equal(t, float64(45), g.LinkTimeSeconds)
	require.Equal(t, float64(60), g.CommTimeSeconds)

	l := g.GetLink(2, 0)
	require.NotNil(t, l)
	require.Equal(t, [][3]int{{0, 1, 2}}, l.Fields)
}

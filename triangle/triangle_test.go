package triangle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcsine/fieldplan/portal"
)

// gridPortals lays out a final vertex and two base vertices forming a
// large triangle, plus a handful of interior points, all close enough
// together to sit comfortably in one hemisphere.
func gridPortals() []portal.Portal {
	return []portal.Portal{
		{Name: "F", Pos: portal.LatLng{Lat: 0.010, Lng: 0.000}, Keys: 1}, // 0: final vertex
		{Name: "V1", Pos: portal.LatLng{Lat: 0.000, Lng: -0.010}, Keys: 1}, // 1
		{Name: "V2", Pos: portal.LatLng{Lat: 0.000, Lng: 0.010}, Keys: 1},  // 2
		{Name: "I1", Pos: portal.LatLng{Lat: 0.003, Lng: -0.002}, Keys: 1}, // 3: interior
		{Name: "I2", Pos: portal.LatLng{Lat: 0.003, Lng: 0.002}, Keys: 1},  // 4: interior
	}
}

func TestFindContentsSeparatesInteriorPoints(t *testing.T) {
	portals := gridPortals()
	g, err := portal.NewGraph(portals)
	require.NoError(t, err)

	tri := &portal.Triangle{Verts: [3]int{0, 1, 2}, Exterior: true}
	FindContents(tri, []int{3, 4}, g)
	require.ElementsMatch(t, []int{3, 4}, tri.Contents)
}

func TestBuildLeafTriangleProducesThreeLinks(t *testing.T) {
	portals := []portal.Portal{
		{Name: "F", Pos: portal.LatLng{Lat: 0.010, Lng: 0.000}, Keys: 1},
		{Name: "V1", Pos: portal.LatLng{Lat: 0.000, Lng: -0.010}, Keys: 1},
		{Name: "V2", Pos: portal.LatLng{Lat: 0.000, Lng: 0.010}, Keys: 1},
	}
	g, err := portal.NewGraph(portals)
	require.NoError(t, err)

	tri := &portal.Triangle{Verts: [3]int{0, 1, 2}, Exterior: true}
	require.NoError(t, Build(tri, g))
	require.Equal(t, 3, g.EdgeStackLen())
	require.True(t, g.HasLink(1, 2))
	require.True(t, g.HasLink(1, 0))
	require.True(t, g.HasLink(2, 0))

	MarkFields(tri, g)
	total := 0
	for _, l := range g.Links {
		total += len(l.Fields)
	}
	require.Equal(t, 1, total)
}

func TestBuildWithSplitProducesCompleteFields(t *testing.T) {
	portals := gridPortals()
	g, err := portal.NewGraph(portals)
	require.NoError(t, err)

	tri := &portal.Triangle{Verts: [3]int{0, 1, 2}, Exterior: true}
	FindContents(tri, []int{3, 4}, g)
	NearSplit(tri, g)

	require.NoError(t, Build(tri, g))
	g.AppendTriangulation(tri)

	for i := 0; i < g.N(); i++ {
		require.LessOrEqual(t, g.OutDegree(i), portal.MaxOutDegree)
	}

	MarkFields(tri, g)
	total := 0
	for _, l := range g.Links {
		total += len(l.Fields)
	}
	require.Equal(t, tri.CountAll(), total)
}

func TestRandSplitIsDeterministicWithSeededRNG(t *testing.T) {
	portals := gridPortals()
	g, err := portal.NewGraph(portals)
	require.NoError(t, err)

	tri := &portal.Triangle{Verts: [3]int{0, 1, 2}, Exterior: true}
	FindContents(tri, []int{3, 4}, g)

	rng := rand.New(rand.NewSource(1))
	RandSplit(tri, g, rng)
	require.False(t, tri.IsLeaf())
	require.NotNil(t, tri.Center)

	again := &portal.Triangle{Verts: [3]int{0, 1, 2}, Exterior: true}
	FindContents(again, []int{3, 4}, g)
	RandSplit(again, g, rand.New(rand.NewSource(1)))
	require.Equal(t, *tri.Center, *again.Center)
}

func TestBuildGuardsAgainstCompletedFinalVertex(t *testing.T) {
	portals := []portal.Portal{
		{Name: "F", Pos: portal.LatLng{Lat: 0.010, Lng: 0.000}, Keys: 1},
		{Name: "V1", Pos: portal.LatLng{Lat: 0.000, Lng: -0.010}, Keys: 1},
		{Name: "V2", Pos: portal.LatLng{Lat: 0.000, Lng: 0.010}, Keys: 1},
	}
	g, err := portal.NewGraph(portals)
	require.NoError(t, err)

	_, err = g.PushLink(1, 0, false)
	require.NoError(t, err)
	_, err = g.PushLink(2, 0, false)
	require.NoError(t, err)

	tri := &portal.Triangle{Verts: [3]int{0, 1, 2}, Exterior: true}
	require.ErrorIs(t, Build(tri, g), ErrDeadend)
}

package triangle

import (
	"math/rand"

	"github.com/arcsine/fieldplan/geo"
	"github.com/arcsine/fieldplan/portal"
)

// FindContents partitions candidates into those lying strictly inside t
// (by spherical containment of the portals' XYZ coordinates) and records
// them on t.Contents. It does not mutate candidates; callers thread the
// leftover (not-contained) subset to sibling triangles themselves.
//
// Complexity: O(len(candidates)).
func FindContents(t *portal.Triangle, candidates []int, g *portal.Graph) {
	a := g.Portals[t.Verts[0]].XYZ
	b := g.Portals[t.Verts[1]].XYZ
	c := g.Portals[t.Verts[2]].XYZ
	av := geo.XYZ{X: a.X, Y: a.Y, Z: a.Z}
	bv := geo.XYZ{X: b.X, Y: b.Y, Z: b.Z}
	cv := geo.XYZ{X: c.X, Y: c.Y, Z: c.Z}

	contents := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		p := g.Portals[idx].XYZ
		pv := geo.XYZ{X: p.X, Y: p.Y, Z: p.Z}
		if geo.SphereTriContains([3]geo.XYZ{av, bv, cv}, pv) {
			contents = append(contents, idx)
		}
	}
	t.Contents = contents
}

// squaredDist returns the squared Euclidean distance between two portals'
// XYZ coordinates.
func squaredDist(g *portal.Graph, i, j int) float64 {
	a, b := g.Portals[i].XYZ, g.Portals[j].XYZ
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z

	return dx*dx + dy*dy + dz*dz
}

// NearSplit picks the content closest to the final vertex (t.Verts[0]) as
// the new center and recurses. This is the default splitting policy: it
// tends to produce long, thin triangles near the boundary and balanced
// ones near dense clusters, which keeps the later out-degree rebalancing
// pass cheap.
func NearSplit(t *portal.Triangle, g *portal.Graph) {
	if len(t.Contents) == 0 {
		return
	}
	best := t.Contents[0]
	bestD := squaredDist(g, t.Verts[0], best)
	for _, c := range t.Contents[1:] {
		if d := squaredDist(g, t.Verts[0], c); d < bestD {
			best, bestD = c, d
		}
	}
	split(t, best, g)
}

// RandSplit picks a uniformly random content as the new center. It is an
// alternative to NearSplit for t itself; the planner does not call it.
func RandSplit(t *portal.Triangle, g *portal.Graph, rng *rand.Rand) {
	if len(t.Contents) == 0 {
		return
	}
	center := t.Contents[rng.Intn(len(t.Contents))]
	split(t, center, g)
}

// split builds the three children of t around center c, partitions the
// remaining contents among them by spherical containment, and recurses
// into each child with NearSplit, whichever policy chose c.
func split(t *portal.Triangle, c int, g *portal.Graph) {
	f, v1, v2 := t.Verts[0], t.Verts[1], t.Verts[2]
	t.Center = new(int)
	*t.Center = c

	opposite := &portal.Triangle{Verts: [3]int{c, v1, v2}}
	adj1 := &portal.Triangle{Verts: [3]int{f, v1, c}}
	adj2 := &portal.Triangle{Verts: [3]int{f, c, v2}}
	t.Children = [3]*portal.Triangle{opposite, adj1, adj2}

	remaining := make([]int, 0, len(t.Contents))
	for _, idx := range t.Contents {
		if idx != c {
			remaining = append(remaining, idx)
		}
	}

	FindContents(opposite, remaining, g)
	placed := make(map[int]bool, len(opposite.Contents))
	for _, idx := range opposite.Contents {
		placed[idx] = true
	}
	rest := make([]int, 0, len(remaining))
	for _, idx := range remaining {
		if !placed[idx] {
			rest = append(rest, idx)
		}
	}

	FindContents(adj1, rest, g)
	for _, idx := range adj1.Contents {
		placed[idx] = true
	}
	rest2 := make([]int, 0, len(rest))
	for _, idx := range rest {
		if !placed[idx] {
			rest2 = append(rest2, idx)
		}
	}
	FindContents(adj2, rest2, g)

	recurseSplit(opposite, g)
	recurseSplit(adj1, g)
	recurseSplit(adj2, g)
}

func recurseSplit(t *portal.Triangle, g *portal.Graph) {
	if len(t.Contents) == 0 {
		return
	}
	NearSplit(t, g)
}

package planner

import (
	"math/rand"

	"github.com/arcsine/fieldplan/portal"
	"github.com/arcsine/fieldplan/triangle"
)

// defaultTriesPerTri bounds how many times a single final-vertex choice
// is retried (with a fresh split) before moving to the next candidate in
// the permutation.
const defaultTriesPerTri = 3

// Triangulate peels ear triangles off perim, in a random order, until
// fewer than 3 portals remain on the perimeter. interior holds the
// portal indices not yet assigned to any triangle's Contents. Returns
// false if no permutation of the current perimeter can be fully built;
// the caller (Plan) discards this attempt's clone and retries with a
// fresh seed.
func Triangulate(g *portal.Graph, perim []int, interior []int, rng *rand.Rand, triesPerTri int) bool {
	if len(perim) < 3 {
		return true
	}
	if triesPerTri < 1 {
		triesPerTri = defaultTriesPerTri
	}

	order := rng.Perm(len(perim))
	for _, i := range order {
		for attempt := 0; attempt < triesPerTri; attempt++ {
			linkMark := g.EdgeStackLen()
			triMark := g.TriangulationLen()

			n := len(perim)
			f := perim[i]
			prev := perim[(i-1+n)%n]
			next := perim[(i+1)%n]
			tri := &portal.Triangle{Verts: [3]int{f, prev, next}, Exterior: true}

			triangle.FindContents(tri, interior, g)
			leftover := subtract(interior, tri.Contents)
			triangle.NearSplit(tri, g)

			if err := triangle.Build(tri, g); err != nil {
				g.TruncateLinks(linkMark)
				g.TruncateTriangulation(triMark)
				continue
			}
			g.AppendTriangulation(tri)

			if Triangulate(g, excise(perim, i), leftover, rng, triesPerTri) {
				return true
			}

			g.TruncateLinks(linkMark)
			g.TruncateTriangulation(triMark)
		}
	}

	return false
}

// subtract returns the elements of all not present in used, preserving
// all's relative order.
func subtract(all, used []int) []int {
	if len(used) == 0 {
		return append([]int(nil), all...)
	}
	skip := make(map[int]bool, len(used))
	for _, u := range used {
		skip[u] = true
	}
	out := make([]int, 0, len(all)-len(used))
	for _, a := range all {
		if !skip[a] {
			out = append(out, a)
		}
	}

	return out
}

// excise returns perim with the element at index i removed, preserving
// cyclic order of the remainder.
func excise(perim []int, i int) []int {
	out := make([]int, 0, len(perim)-1)
	out = append(out, perim[:i]...)
	out = append(out, perim[i+1:]...)

	return out
}

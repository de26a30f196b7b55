package triangle

import "github.com/arcsine/fieldplan/portal"

// MarkFields walks the recursive triangle tree rooted at t and, for every
// node at every generation (root and all descendants, not just leaves),
// appends its vertex triple to the Fields list of whichever of its three
// sides has the largest Order, the side built last, which is the one
// that actually closes that triangle as a field. By the time Build has
// finished the whole tree, all three sides of every node exist as links:
// buildFinal builds a non-leaf's two final-vertex sides directly, and its
// third (opposite) side is built inside the opposite child's own
// recursion, so layered fields (an outer triangle closed on top of the
// fields its own split produced) are counted alongside their children.
//
// Call once per first-generation triangle after Build succeeds for all of
// them; calling it twice on the same tree double-annotates every field.
func MarkFields(t *portal.Triangle, g *portal.Graph) {
	sides := [3][2]int{
		{t.Verts[0], t.Verts[1]},
		{t.Verts[1], t.Verts[2]},
		{t.Verts[2], t.Verts[0]},
	}

	var latest *portal.Link
	for _, s := range sides {
		l := g.GetLink(s[0], s[1])
		if l == nil {
			continue
		}
		if latest == nil || l.Order > latest.Order {
			latest = l
		}
	}
	if latest != nil {
		latest.Fields = append(latest.Fields, [3]int{t.Verts[0], t.Verts[1], t.Verts[2]})
	}

	for _, child := range t.Children {
		if child != nil {
			MarkFields(child, g)
		}
	}
}

package triangle

import "github.com/arcsine/fieldplan/portal"

// Build realizes t (and its already-Split descendants) as directed Links
// on g, following a final-vertex build-order discipline:
//
//  1. Guard: if both of t's final-vertex sides already exist (built by an
//     earlier, already-completed neighbor triangle sharing this vertex),
//     fail with ErrDeadend. There is nothing left for this triangle to
//     contribute and the shared vertex's role is already locked in.
//  2. buildExceptFinal(t): build every side that doesn't touch the final
//     vertex, depth-first, recursing into the "opposite" child (which
//     doesn't share the final vertex, so it's built in full) and then the
//     two children that do share it.
//  3. buildFinal(t): build the two sides incident to the final vertex,
//     oriented according to t.Exterior, then recurse into the two
//     final-vertex-sharing children the same way.
//
// Any ErrDeadend from a descendant propagates up unchanged; the caller
// (planner) is responsible for rolling back via Graph.TruncateLinks.
func Build(t *portal.Triangle, g *portal.Graph) error {
	f, v1, v2 := t.Verts[0], t.Verts[1], t.Verts[2]
	if g.HasLink(f, v1) && g.HasLink(f, v2) {
		return ErrDeadend
	}
	if err := buildExceptFinal(t, g); err != nil {
		return err
	}

	return buildFinal(t, g)
}

func buildExceptFinal(t *portal.Triangle, g *portal.Graph) error {
	if t.IsLeaf() {
		return tryOrderedEdge(g, t.Verts[1], t.Verts[2], true)
	}

	opposite, adj1, adj2 := t.Children[0], t.Children[1], t.Children[2]
	if err := Build(opposite, g); err != nil {
		return err
	}
	if err := buildExceptFinal(adj1, g); err != nil {
		return err
	}

	return buildExceptFinal(adj2, g)
}

func buildFinal(t *portal.Triangle, g *portal.Graph) error {
	f, v1, v2 := t.Verts[0], t.Verts[1], t.Verts[2]
	if t.Exterior {
		if err := tryOrderedEdge(g, v1, f, false); err != nil {
			return err
		}
		if err := tryOrderedEdge(g, v2, f, false); err != nil {
			return err
		}
	} else {
		if err := tryOrderedEdge(g, f, v1, false); err != nil {
			return err
		}
		if err := tryOrderedEdge(g, f, v2, false); err != nil {
			return err
		}
	}
	if t.IsLeaf() {
		return nil
	}
	adj1, adj2 := t.Children[1], t.Children[2]
	if err := buildFinal(adj1, g); err != nil {
		return err
	}

	return buildFinal(adj2, g)
}

// tryOrderedEdge adds the directed link (p,q), subject to the 8-outgoing
// cap:
//
//  1. If the pair already has a link in either orientation, no-op.
//  2. If reversible and out-degree(p) > out-degree(q), swap p and q,
//     preferring the lower-degree endpoint as source.
//  3. If out-degree(p) is now at the cap, attempt reduceOutDegree(p): for
//     each of p's current outgoing links whose destination has spare
//     capacity, reverse it.
//  4. If p is still saturated: for a non-reversible edge this is fatal
//     unless suboptimal plans are allowed, in which case (and always for
//     a reversible edge) fall back to building q->p instead. That is
//     itself fatal if q is saturated and suboptimal plans are forbidden.
func tryOrderedEdge(g *portal.Graph, p, q int, reversible bool) error {
	if g.HasLink(p, q) {
		return nil
	}
	if reversible && g.OutDegree(p) > g.OutDegree(q) {
		p, q = q, p
	}
	if g.OutDegree(p) >= portal.MaxOutDegree {
		reduceOutDegree(g, p)
		if g.OutDegree(p) >= portal.MaxOutDegree {
			if !reversible && !g.SuboptimalAllowed() {
				return ErrDeadend
			}
			p, q = q, p
			if g.OutDegree(p) >= portal.MaxOutDegree && !g.SuboptimalAllowed() {
				return ErrDeadend
			}
		}
	}
	_, err := g.PushLink(p, q, reversible)

	return err
}

// reduceOutDegree reverses every outgoing link of p whose destination
// currently has spare out-degree capacity, freeing up p's budget without
// changing which fields get completed.
func reduceOutDegree(g *portal.Graph, p int) {
	candidates := make([]*portal.Link, 0, g.OutDegree(p))
	for _, l := range g.Links {
		if l.From == p {
			candidates = append(candidates, l)
		}
	}
	for _, l := range candidates {
		if l.From != p {
			continue // already reversed by an earlier iteration of this same pass
		}
		if g.OutDegree(l.To) < portal.MaxOutDegree {
			g.ReverseLink(l)
		}
	}
}

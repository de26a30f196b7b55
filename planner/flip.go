package planner

import (
	"sort"

	"github.com/arcsine/fieldplan/portal"
)

// lack returns max(0, in-degree(p) - keys(p)), recomputed live since
// flips change both operands as the pass progresses.
func lack(g *portal.Graph, p int) int {
	if l := g.InDegree(p) - g.Portals[p].Keys; l > 0 {
		return l
	}

	return 0
}

// FlipSome reverses reversible links to relieve key shortages. For each
// portal q with a positive lack, in descending order of
// lack, it looks for an incoming reversible link (p,q) whose reversal is
// a Pareto improvement: q (the new source) stays within the out-degree
// cap, and p (the new target) already has a key surplus to absorb one
// more incoming link. It keeps flipping incoming links into q until q's
// lack reaches zero or none remain.
//
// Out-degree exceeding MaxOutDegree at this stage would be an invariant
// violation. FlipSome never increases any portal's out-degree past the
// cap, since it only reverses an edge toward q after confirming q has
// spare capacity.
func FlipSome(g *portal.Graph) {
	qs := make([]int, g.N())
	for i := range qs {
		qs[i] = i
	}
	sort.Slice(qs, func(a, b int) bool {
		return lack(g, qs[a]) > lack(g, qs[b])
	})

	for _, q := range qs {
		for lack(g, q) > 0 {
			l := findFlippableIncoming(g, q)
			if l == nil {
				break
			}
			g.ReverseLink(l)
		}
	}
}

// findFlippableIncoming returns an incoming, reversible link (p,q) whose
// reversal respects both the out-degree cap on q and the key-surplus
// requirement on p, or nil if no such link exists.
func findFlippableIncoming(g *portal.Graph, q int) *portal.Link {
	for _, l := range g.Links {
		if l.To != q || !l.Reversible {
			continue
		}
		if g.OutDegree(q) >= portal.MaxOutDegree {
			continue
		}
		p := l.From
		if g.Portals[p].Keys-g.InDegree(p) <= 0 {
			continue
		}

		return l
	}

	return nil
}

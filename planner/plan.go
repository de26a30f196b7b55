package planner

import (
	"math/rand"

	"github.com/arcsine/fieldplan/geo"
	"github.com/arcsine/fieldplan/portal"
	"github.com/arcsine/fieldplan/triangle"
)

// Options configures a Plan run.
type Options struct {
	// Seed is the base PRNG seed; attempt i uses Seed+int64(i), so a Plan
	// run is fully reproducible.
	Seed int64

	// Attempts is K, the number of independent outer-loop attempts.
	// Defaults to 8 if <= 0.
	Attempts int

	// TriesPerTri is passed through to Triangulate. Defaults to 3 if <= 0.
	TriesPerTri int

	// DisallowSuboptimal forwards the negation of ALLOW_SUBOPTIMAL to
	// portal.NewGraph. The zero value (false) leaves NewGraph's own
	// default of true in effect, so an unset Options keeps the governance
	// flag on rather than silently turning it off.
	DisallowSuboptimal bool
}

func (o Options) withDefaults() Options {
	if o.Attempts <= 0 {
		o.Attempts = 8
	}
	if o.TriesPerTri <= 0 {
		o.TriesPerTri = defaultTriesPerTri
	}

	return o
}

// Plan runs the full field-planning pipeline for the given portals:
// project, triangulate (with up to Options.Attempts independent retries),
// rebalance via FlipSome, optimize link order via ImproveEdgeOrder, and
// return the best-scoring resulting Graph.
//
// Returns ErrPlannerExhausted if no attempt produced a feasible
// triangulation, or a geo error if the portal set fails projection
// validity (duplicate/degenerate points, non-hemispherical spread).
func Plan(portals []portal.Portal, opts Options) (*portal.Graph, error) {
	opts = opts.withDefaults()

	base, err := portal.NewGraph(portals, portal.WithSuboptimalAllowed(!opts.DisallowSuboptimal))
	if err != nil {
		return nil, err
	}

	planar := make([]geo.Planar, base.N())
	for i, p := range base.Portals {
		planar[i] = geo.Planar{X: p.Planar.X, Y: p.Planar.Y}
	}
	perim, err := geo.ConvexHullBoundary(planar)
	if err != nil {
		return nil, err
	}

	interior := subtract(allIndices(base.N()), perim)

	var best *portal.Graph
	bestScore := -1
	for attempt := 0; attempt < opts.Attempts; attempt++ {
		rng := rand.New(rand.NewSource(opts.Seed + int64(attempt)))
		candidate := base.Clone()

		if !Triangulate(candidate, append([]int(nil), perim...), append([]int(nil), interior...), rng, opts.TriesPerTri) {
			continue
		}

		FlipSome(candidate)
		annotateFields(candidate)
		ImproveEdgeOrder(candidate)

		score := candidate.PlanScore()
		if best == nil || score < bestScore {
			best, bestScore = candidate, score
		}
		if bestScore == 0 {
			break
		}
	}

	if best == nil {
		return nil, ErrPlannerExhausted
	}

	return best, nil
}

// annotateFields runs triangle.MarkFields once over every first-
// generation triangle recorded on g, walking the whole triangulation,
// not just the root level.
func annotateFields(g *portal.Graph) {
	for _, t := range g.Triangulation {
		triangle.MarkFields(t, g)
	}
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

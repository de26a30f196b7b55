package schedule

import (
	"github.com/arcsine/fieldplan/geo"
	"github.com/arcsine/fieldplan/matrix"
	"github.com/arcsine/fieldplan/portal"
)

// Options configures a scheduling run.
type Options struct {
	// Agents is k, the number of agents. Values < 1 are treated as 1;
	// for k=1 the scheduler degenerates to a single-threaded walk.
	Agents int

	// Hi bounds the beam width; <= 0 uses the default of 15000.
	Hi int
}

// Result is the scheduler's output: a per-link agent assignment and the
// makespan in meters walked. The three aggregate times are recorded onto
// the Graph, not onto Result.
type Result struct {
	Link2Agent []int
	WalkMeters float64
}

// Schedule assigns every link in g (in Order sequence) to one of
// Options.Agents agents, minimizing makespan via a beam-limited
// branch-and-bound search over pre-compressed same-source runs, and
// records WalkTimeSeconds/LinkTimeSeconds/CommTimeSeconds onto g.
//
// M = 0 returns a trivial empty assignment with all graph time
// aggregates left at zero.
func Schedule(g *portal.Graph, opts Options) *Result {
	k := opts.Agents
	if k < 1 {
		k = 1
	}

	m := len(g.Links)
	if m == 0 {
		return &Result{}
	}

	sources := make([]int, m)
	for i, l := range g.Links {
		sources[i] = l.From
	}

	visits := compress(sources)
	dist := distanceFuncFromMatrix(buildDistanceMatrix(g))

	best := search(visits, dist, k, opts.Hi)
	link2agent := expand(visits, best.assign)
	makespan := best.time[len(best.time)-1]

	g.WalkTimeSeconds = makespan / WalkSpeedMetersPerSecond
	g.LinkTimeSeconds = float64(m) * LinkTimeSeconds
	g.CommTimeSeconds = float64(countRuns(link2agent)) * CommTimeSeconds

	return &Result{Link2Agent: link2agent, WalkMeters: makespan}
}

// buildDistanceMatrix precomputes every pairwise great-arc distance
// between portals once per Schedule call: the beam's transition function
// calls dist() once per child at every depth, and recomputing the
// spherical formula on each call would redo the same work for repeated
// (source, source) pairs across visits.
func buildDistanceMatrix(g *portal.Graph) *matrix.Dense {
	n := len(g.Portals)
	if n == 0 {
		n = 1
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		// n is always >= 1 here, so NewDense cannot fail.
		panic(err)
	}

	for i := 0; i < n && i < len(g.Portals); i++ {
		a := g.Portals[i].Pos
		for j := i + 1; j < len(g.Portals); j++ {
			b := g.Portals[j].Pos
			meters := geo.GreatArcDistanceMeters(
				geo.Point{Lat: a.Lat, Lng: a.Lng},
				geo.Point{Lat: b.Lat, Lng: b.Lng},
			)
			_ = d.Set(i, j, meters)
			_ = d.Set(j, i, meters)
		}
	}

	return d
}

// distanceFuncFromMatrix adapts a precomputed distance matrix to the
// distanceFunc shape the beam search expects.
func distanceFuncFromMatrix(d matrix.Matrix) distanceFunc {
	return func(portalA, portalB int) float64 {
		v, err := d.At(portalA, portalB)
		if err != nil {
			return 0
		}

		return v
	}
}

// countRuns counts the maximal runs of consecutive equal agents in a
// per-link assignment: commtime = (# maximal same-agent runs) * COMMTIME.
func countRuns(link2agent []int) int {
	if len(link2agent) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(link2agent); i++ {
		if link2agent[i] != link2agent[i-1] {
			runs++
		}
	}

	return runs
}

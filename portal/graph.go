package portal

import "github.com/arcsine/fieldplan/geo"

// Graph is the mutable container owning Portals, Links, and the
// first-generation Triangles of a triangulation.
//
// Graph is intentionally not safe for concurrent mutation: fieldplan's
// core is single-threaded and computational, with planner attempts
// each working on their own Clone rather than sharing one
// mutable Graph. Adding locks here would protect against a race the
// design already rules out by construction, so GraphOption configures
// behavior at construction time only and every mutator assumes a single
// owning goroutine.
type Graph struct {
	Portals       []Portal
	Links         []*Link
	Triangulation []*Triangle

	// Three time aggregates filled in by the scheduler.
	WalkTimeSeconds float64
	LinkTimeSeconds float64
	CommTimeSeconds float64

	// suboptimalAllowed is the ALLOW_SUBOPTIMAL governance flag: when
	// true, tryOrderedEdge degrades to a best-effort placement instead
	// of failing with Deadend when the 8-outgoing cap cannot be honored
	// by any reversal. Default true.
	suboptimalAllowed bool

	outDegree []int
	inDegree  []int
	pairIndex map[[2]int]*Link
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithSuboptimalAllowed overrides the default (true) for the
// ALLOW_SUBOPTIMAL governance flag.
func WithSuboptimalAllowed(allowed bool) GraphOption {
	return func(g *Graph) { g.suboptimalAllowed = allowed }
}

// NewGraph constructs a Graph over the given portals, deriving XYZ and
// Planar coordinates via project. Returns geo.ErrNotHemispherical if two
// portals are pi/2 great-arc radians or more apart; it does not check for
// duplicate, collinear or fewer than 3 portals.
func NewGraph(portals []Portal, opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		Portals:           append([]Portal(nil), portals...),
		outDegree:         make([]int, len(portals)),
		inDegree:          make([]int, len(portals)),
		pairIndex:         make(map[[2]int]*Link),
		suboptimalAllowed: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.project(); err != nil {
		return nil, err
	}

	return g, nil
}

// project fills in XYZ and Planar for every portal via gnomonic
// projection about the centroid.
func (g *Graph) project() error {
	pts := make([]geo.Point, len(g.Portals))
	for i, p := range g.Portals {
		pts[i] = geo.Point{Lat: p.Pos.Lat, Lng: p.Pos.Lng}
	}
	if err := geo.ValidateHemisphere(pts); err != nil {
		return err
	}
	planar := geo.GnomonicProjection(pts)
	for i := range g.Portals {
		xyz := geo.LatLngToXYZ(pts[i])
		g.Portals[i].XYZ = XYZCoord{X: xyz.X, Y: xyz.Y, Z: xyz.Z}
		g.Portals[i].Planar = PlanarCoord{X: planar[i].X, Y: planar[i].Y}
	}

	return nil
}

// N returns the number of portals.
func (g *Graph) N() int { return len(g.Portals) }

// SuboptimalAllowed reports the current ALLOW_SUBOPTIMAL governance flag.
func (g *Graph) SuboptimalAllowed() bool { return g.suboptimalAllowed }

func pairKey(p, q int) [2]int {
	if p < q {
		return [2]int{p, q}
	}

	return [2]int{q, p}
}

// HasLink reports whether (p,q) or (q,p) exists.
func (g *Graph) HasLink(p, q int) bool {
	_, ok := g.pairIndex[pairKey(p, q)]

	return ok
}

// GetLink returns the link between p and q in either orientation, or nil.
func (g *Graph) GetLink(p, q int) *Link {
	return g.pairIndex[pairKey(p, q)]
}

// OutDegree returns the current outgoing-link count of portal p.
func (g *Graph) OutDegree(p int) int { return g.outDegree[p] }

// InDegree returns the current incoming-link count of portal p.
func (g *Graph) InDegree(p int) int { return g.inDegree[p] }

// EdgeStackLen returns the current number of links, the watermark used by
// the triangle engine's backtracking.
func (g *Graph) EdgeStackLen() int { return len(g.Links) }

// TriangulationLen returns the current number of first-generation
// triangles recorded, the watermark used alongside EdgeStackLen.
func (g *Graph) TriangulationLen() int { return len(g.Triangulation) }

// PushLink appends a new link (p,q) to the build sequence, assigning the
// next Order value. Callers (triangle.tryOrderedEdge) are responsible for
// the cap/reversibility policy; PushLink only performs the mechanical
// insertion and bookkeeping.
func (g *Graph) PushLink(p, q int, reversible bool) (*Link, error) {
	if p == q {
		return nil, ErrSelfLink
	}
	if g.HasLink(p, q) {
		return nil, ErrLinkExists
	}
	l := &Link{From: p, To: q, Order: len(g.Links), Reversible: reversible}
	g.Links = append(g.Links, l)
	g.pairIndex[pairKey(p, q)] = l
	g.outDegree[p]++
	g.inDegree[q]++

	return l, nil
}

// ReverseLink flips l's direction in place, preserving Reversible and
// Fields, and updating degree counters.
func (g *Graph) ReverseLink(l *Link) {
	g.outDegree[l.From]--
	g.inDegree[l.To]--
	l.From, l.To = l.To, l.From
	g.outDegree[l.From]++
	g.inDegree[l.To]++
}

// TruncateLinks pops links from the end of the build sequence until
// len(g.Links) == n, undoing their degree bookkeeping and pairIndex
// entries. This is the undo primitive behind triangle-engine backtracking:
// it removes each popped link in its current orientation, since an
// intervening reduceOutDegree reversal may have changed it.
func (g *Graph) TruncateLinks(n int) {
	for len(g.Links) > n {
		last := g.Links[len(g.Links)-1]
		g.Links = g.Links[:len(g.Links)-1]
		delete(g.pairIndex, pairKey(last.From, last.To))
		g.outDegree[last.From]--
		g.inDegree[last.To]--
	}
}

// TruncateTriangulation pops triangulation entries until
// len(g.Triangulation) == n.
func (g *Graph) TruncateTriangulation(n int) {
	g.Triangulation = g.Triangulation[:n]
}

// AppendTriangulation records a completed first-generation triangle.
func (g *Graph) AppendTriangulation(t *Triangle) {
	g.Triangulation = append(g.Triangulation, t)
}

// Clone returns a copy of the Graph with its own Portals, Links and
// degree bookkeeping, used by the planner to give each outer-loop attempt
// an independent mutable copy. The Triangulation slice is copied, but the
// Triangles it points to are shared with g.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		Portals:           append([]Portal(nil), g.Portals...),
		outDegree:         append([]int(nil), g.outDegree...),
		inDegree:          append([]int(nil), g.inDegree...),
		pairIndex:         make(map[[2]int]*Link, len(g.pairIndex)),
		suboptimalAllowed: g.suboptimalAllowed,
		WalkTimeSeconds:   g.WalkTimeSeconds,
		LinkTimeSeconds:   g.LinkTimeSeconds,
		CommTimeSeconds:   g.CommTimeSeconds,
	}
	clone.Links = make([]*Link, len(g.Links))
	for i, l := range g.Links {
		nl := &Link{From: l.From, To: l.To, Order: l.Order, Reversible: l.Reversible}
		nl.Fields = append([][3]int(nil), l.Fields...)
		clone.Links[i] = nl
		clone.pairIndex[pairKey(nl.From, nl.To)] = nl
	}
	clone.Triangulation = append([]*Triangle(nil), g.Triangulation...)

	return clone
}

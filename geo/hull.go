package geo

// ConvexHullBoundary returns the indices of pts lying on the boundary of
// their convex hull, in traversal order around the hull.
//
// It starts at the point with maximum x and the point with minimum x, then
// for each boundary pair (a,b) searches for the index c maximizing the
// inner product of pts[c] with (pts[a]-pts[b]) rotated 90 degrees
// counter-clockwise; if found, c is inserted between a and b and the
// search recurses on (a,c); if not, (a,b) is accepted as a hull edge and
// the walk continues from b. Terminates when the boundary returns to the
// starting pair.
//
// Degenerate inputs (fewer than 3 distinct points, or all points
// collinear) are not supported; ErrDegenerate is returned in that case.
func ConvexHullBoundary(pts []Planar) ([]int, error) {
	if len(pts) < 3 {
		return nil, ErrDegenerate
	}

	hix, lox := 0, 0
	for i, p := range pts {
		if p.X > pts[hix].X {
			hix = i
		}
		if p.X < pts[lox].X {
			lox = i
		}
	}
	if hix == lox {
		return nil, ErrDegenerate
	}

	// perim[a] = the current "next around the hull" guess for a, used as
	// the opposite endpoint when searching for a point between a pair.
	perim := map[int]int{hix: lox, lox: hix}

	var out []int
	a, b := hix, lox
	aNeverChanged := true

	for a != hix || aNeverChanged {
		c, ok := between(a, b, pts)
		if !ok {
			out = append(out, a)
			a, b = b, perim[b]
			aNeverChanged = false
		} else {
			perim[a] = c
			perim[c] = b
			b = c
		}
	}

	if len(out) < 3 {
		return nil, ErrDegenerate
	}

	return out, nil
}

// between returns the index of the point in pts farthest to the right of
// the directed line a->b (by inner product with the a-b vector rotated a
// quarter turn counter-clockwise). ok is false when that farthest point is
// a or b itself, meaning no point lies beyond the line and (a,b) is
// already a hull edge.
func between(a, b int, pts []Planar) (int, bool) {
	dx := pts[a].X - pts[b].X
	dy := pts[a].Y - pts[b].Y
	// rotate (dx,dy) a quarter turn counter-clockwise: (x,y) -> (-y,x)
	rx, ry := -dy, dx

	best := 0
	bestDot := pts[0].X*rx + pts[0].Y*ry
	for i := 1; i < len(pts); i++ {
		dot := pts[i].X*rx + pts[i].Y*ry
		if dot > bestDot {
			best, bestDot = i, dot
		}
	}

	if best == a || best == b {
		return 0, false
	}

	return best, true
}

// Package planner implements the outer field-planning loop: it
// triangulates the convex hull of a portal set by recursively peeling
// "ear" triangles off the perimeter, invokes the triangle engine on each
// with backtracking on failure, rebalances key shortages via FlipSome,
// optimizes link order via ImproveEdgeOrder, and repeats the whole
// attempt some number of times with fresh randomness, keeping the best
// result by a TK + 2*MK objective.
package planner

import "errors"

// ErrPlannerExhausted reports that every outer attempt failed to produce
// a feasible plan.
var ErrPlannerExhausted = errors.New("planner: exhausted all attempts without a feasible plan")

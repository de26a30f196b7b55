// Package triangle implements the recursive triangle-splitting and
// directed-link build-order engine: given a first-generation
// triangle and the portals strictly inside it, it produces a fully
// subdivided Triangle tree and an ordered sequence of directed Links on
// the owning portal.Graph such that every sub-triangle is realized as a
// completed field.
//
// The lifecycle of a Triangle is: Fresh -> ContentsKnown (FindContents)
// -> Split (NearSplit/RandSplit) -> EdgesPending -> Built (Build) ->
// Annotated (MarkFields, run once on the whole Graph after every
// first-generation triangle is built). Failure from Split or Build
// unwinds the owning Graph's link stack and triangulation list via
// Graph.TruncateLinks / Graph.TruncateTriangulation. See planner, which
// owns the watermark-and-retry discipline across multiple first-
// generation attempts.
package triangle

import "errors"

// ErrDeadend reports local infeasibility inside a single triangle build:
// the 8-outgoing cap could not be satisfied by any reversal, or the final
// vertex's two incident sides were already completed by an earlier
// neighbor build.
var ErrDeadend = errors.New("triangle: deadend")

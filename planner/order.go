package planner

import (
	"sort"

	"github.com/arcsine/fieldplan/portal"
)

// ImproveEdgeOrder moves every non-field-completing link to just before
// the earliest link sharing its source portal, then renumbers Order to
// 0..M-1. Non-completing links that share a source keep their relative
// order: each lands right after the ones already pulled to the front of
// that source's links. Field-completing links never move relative to one
// another; only non-completing links are pulled earlier.
//
// This is idempotent: after one pass, the non-completing links of each
// source already sit together in front of that source's other links, so
// a second pass finds nothing left to move.
func ImproveEdgeOrder(g *portal.Graph) {
	links := append([]*portal.Link(nil), g.Links...)
	sort.Slice(links, func(a, b int) bool { return links[a].Order < links[b].Order })

	for j := 0; j < len(links); j++ {
		l := links[j]
		if len(l.Fields) != 0 {
			continue
		}
		for i := 0; i < j; i++ {
			if links[i].From == l.From {
				for i < j && links[i].From == l.From && len(links[i].Fields) == 0 {
					i++
				}
				if i < j {
					moved := links[j]
					copy(links[i+1:j+1], links[i:j])
					links[i] = moved
				}
				break
			}
		}
	}

	for idx, l := range links {
		l.Order = idx
	}
	g.Links = links
}

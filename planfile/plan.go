// Package planfile persists a planned Graph to YAML and reads it back,
// so printers can be replayed with a different agent count without
// re-running the planner.
package planfile

import (
	"os"
	"sort"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/arcsine/fieldplan/portal"
)

// Portal mirrors portal.Portal for serialization. XYZ and Planar are
// re-derived by portal.NewGraph on load (via Graph), so they are not
// persisted; keeping the persisted shape to Name/Lat/Lng/Keys is also
// what keeps the format stable across a gnomonic-projection change.
type Portal struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
	Keys int     `yaml:"keys"`
}

// Link mirrors portal.Link for serialization.
type Link struct {
	From       int      `yaml:"from"`
	To         int      `yaml:"to"`
	Order      int      `yaml:"order"`
	Reversible bool     `yaml:"reversible"`
	Fields     [][3]int `yaml:"fields,omitempty"`
}

// Plan is the persisted-plan shape: portals, the ordered link list, a
// triangulation summary, and the three scheduler time aggregates.
//
// ID is a uuid.v4 generated once per planning run so two persisted plans
// for identical input are distinguishable; like a timestamp would be, it
// is excluded from round-trip-byte-for-byte comparisons.
type Plan struct {
	ID      string   `yaml:"id"`
	Portals []Portal `yaml:"portals"`
	Links   []Link   `yaml:"links"`

	// TriangleCount is the total triangle count across the triangulation,
	// root plus every descendant at every generation (CountAll summed
	// over each first-generation triangle), persisted as a summary rather
	// than the full recursive Triangle tree: printers only ever need
	// counts and Link.Fields, never to re-walk the recursion.
	TriangleCount int `yaml:"triangle_count"`

	WalkTimeSeconds float64 `yaml:"walk_time_seconds"`
	LinkTimeSeconds float64 `yaml:"link_time_seconds"`
	CommTimeSeconds float64 `yaml:"comm_time_seconds"`
}

// FromGraph builds a Plan from a planned Graph, assigning a fresh uuid.
func FromGraph(g *portal.Graph) *Plan {
	p := &Plan{
		ID:              uuid.NewString(),
		Portals:         make([]Portal, len(g.Portals)),
		Links:           make([]Link, len(g.Links)),
		WalkTimeSeconds: g.WalkTimeSeconds,
		LinkTimeSeconds: g.LinkTimeSeconds,
		CommTimeSeconds: g.CommTimeSeconds,
	}
	for i, pt := range g.Portals {
		p.Portals[i] = Portal{Name: pt.Name, Lat: pt.Pos.Lat, Lng: pt.Pos.Lng, Keys: pt.Keys}
	}
	for i, l := range g.Links {
		p.Links[i] = Link{
			From:       l.From,
			To:         l.To,
			Order:      l.Order,
			Reversible: l.Reversible,
			Fields:     append([][3]int(nil), l.Fields...),
		}
	}
	for _, t := range g.Triangulation {
		p.TriangleCount += t.CountAll()
	}

	return p
}

// Graph reconstructs a *portal.Graph from the persisted plan, re-running
// NewGraph's gnomonic projection and replaying every link in Order.
// Triangulation is not reconstructed (Plan does not persist the
// recursive Triangle tree); TriangleCount and every Link.Fields entry
// are preserved for the printers that only need the summary.
func (p *Plan) Graph() (*portal.Graph, error) {
	portals := make([]portal.Portal, len(p.Portals))
	for i, pt := range p.Portals {
		portals[i] = portal.Portal{
			Name: pt.Name,
			Pos:  portal.LatLng{Lat: pt.Lat, Lng: pt.Lng},
			Keys: pt.Keys,
		}
	}
	g, err := portal.NewGraph(portals)
	if err != nil {
		return nil, err
	}

	ordered := make([]Link, len(p.Links))
	copy(ordered, p.Links)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })
	for _, l := range ordered {
		nl, err := g.PushLink(l.From, l.To, l.Reversible)
		if err != nil {
			return nil, err
		}
		nl.Fields = append([][3]int(nil), l.Fields...)
	}

	g.WalkTimeSeconds = p.WalkTimeSeconds
	g.LinkTimeSeconds = p.LinkTimeSeconds
	g.CommTimeSeconds = p.CommTimeSeconds

	return g, nil
}

// Marshal serializes p to YAML.
func (p *Plan) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Unmarshal parses YAML into a new Plan.
func Unmarshal(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Save serializes p to YAML and writes it to path.
func Save(p *Plan, path string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Open reads and parses a Plan from path.
func Open(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Unmarshal(data)
}

// Package render draws a portal map and a link map as static SVG,
// exercising the data a portal/link printer needs without the
// heavier PNG/animation rendering a batch planning tool doesn't require.
package render

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/arcsine/fieldplan/portal"
)

// Theme selects the link-map color scheme, toggled by the `-b` flag.
type Theme int

const (
	ThemeGreen Theme = iota
	ThemeBlue
)

// Options configures map rendering.
type Options struct {
	Width, Height int
	Margin        int
	Theme         Theme
}

// DefaultOptions returns sensible canvas defaults.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 1000, Margin: 40, Theme: ThemeGreen}
}

// PortalMap draws every portal as a labeled dot at its gnomonic-planar
// position, with no links: an ownership/layout companion view to LinkMap.
func PortalMap(g *portal.Graph, opts Options) []byte {
	opts = withDefaults(opts)
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	layout := planarLayout(g, opts)
	for i, pt := range layout {
		canvas.Circle(pt.X, pt.Y, 5, "fill:#333333")
		canvas.Text(pt.X+8, pt.Y+4, g.Portals[i].Name, "font-size:11px;fill:#111111")
	}

	canvas.End()

	return buf.Bytes()
}

// LinkMap draws every portal plus every link in Order, colored by the
// configured theme: green by default, blue with the `-b` flag.
func LinkMap(g *portal.Graph, opts Options) []byte {
	opts = withDefaults(opts)
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, fmt.Sprintf("fill:%s", backgroundColor(opts.Theme)))

	layout := planarLayout(g, opts)
	linkColor := foregroundColor(opts.Theme)
	for _, l := range g.Links {
		from, to := layout[l.From], layout[l.To]
		canvas.Line(from.X, from.Y, to.X, to.Y, fmt.Sprintf("stroke:%s;stroke-width:1;opacity:0.7", linkColor))
	}
	for i, pt := range layout {
		canvas.Circle(pt.X, pt.Y, 5, "fill:#222222")
		canvas.Text(pt.X+8, pt.Y+4, g.Portals[i].Name, "font-size:11px;fill:#111111")
	}

	canvas.End()

	return buf.Bytes()
}

func withDefaults(opts Options) Options {
	d := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = d.Width
	}
	if opts.Height <= 0 {
		opts.Height = d.Height
	}
	if opts.Margin <= 0 {
		opts.Margin = d.Margin
	}

	return opts
}

func backgroundColor(t Theme) string {
	if t == ThemeBlue {
		return "#0a1a2e"
	}

	return "#0a2e17"
}

func foregroundColor(t Theme) string {
	if t == ThemeBlue {
		return "#4299e1"
	}

	return "#48bb78"
}

// point is a pixel coordinate on the rendered canvas.
type point struct {
	X, Y int
}

// planarLayout maps each portal's gnomonic Planar coordinate into pixel
// space, fit within the canvas margins with the y axis flipped (screen
// coordinates grow downward; planar coordinates grow north/up).
func planarLayout(g *portal.Graph, opts Options) []point {
	n := len(g.Portals)
	layout := make([]point, n)
	if n == 0 {
		return layout
	}

	minX, maxX := g.Portals[0].Planar.X, g.Portals[0].Planar.X
	minY, maxY := g.Portals[0].Planar.Y, g.Portals[0].Planar.Y
	for _, p := range g.Portals {
		minX, maxX = min(minX, p.Planar.X), max(maxX, p.Planar.X)
		minY, maxY = min(minY, p.Planar.Y), max(maxY, p.Planar.Y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	drawW := float64(opts.Width - 2*opts.Margin)
	drawH := float64(opts.Height - 2*opts.Margin)

	for i, p := range g.Portals {
		nx, ny := 0.5, 0.5
		if spanX > 0 {
			nx = (p.Planar.X - minX) / spanX
		}
		if spanY > 0 {
			ny = (p.Planar.Y - minY) / spanY
		}
		layout[i] = point{
			X: opts.Margin + int(nx*drawW),
			Y: opts.Height - opts.Margin - int(ny*drawH),
		}
	}

	return layout
}

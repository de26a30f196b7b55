package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcsine/fieldplan/config"
	"github.com/arcsine/fieldplan/planfile"
	"github.com/arcsine/fieldplan/planner"
	"github.com/arcsine/fieldplan/portalio"
	"github.com/arcsine/fieldplan/render"
	"github.com/arcsine/fieldplan/schedule"
)

// runOptions holds the parsed command-line invocation: input_file,
// output_directory (default "."), output_file (default "lastPlan.pkl"),
// agent count (-n), and render theme (-b).
type runOptions struct {
	inputFile       string
	outputDirectory string
	outputFile      string
	agents          int
	blueTheme       bool
}

// run parses the portal list, plans the field, schedules it across
// opts.agents, and persists the plan plus portal/link maps under
// outputDirectory.
func run(ctx context.Context, opts runOptions) error {
	logger := loggerFromContext(ctx)

	if !strings.HasSuffix(opts.outputFile, ".pkl") {
		logger.Warnf("output file %q does not use the conventional .pkl extension", opts.outputFile)
	}

	f, err := os.Open(opts.inputFile)
	if err != nil {
		return fmt.Errorf("fieldplan: opening input file: %w", err)
	}
	defer f.Close()

	portals := portalio.Parse(f)
	logger.Infof("parsed %d portals from %s", len(portals), opts.inputFile)

	cfg, err := config.Load(filepath.Join(opts.outputDirectory, "fieldplan.toml"))
	if err != nil {
		return fmt.Errorf("fieldplan: loading config: %w", err)
	}

	g, err := planner.Plan(portals, planner.Options{
		Seed:        1,
		Attempts:    cfg.OuterAttempts,
		TriesPerTri: cfg.TriesPerTri,
	})
	if err != nil {
		return fmt.Errorf("fieldplan: planner gave up: %w", err)
	}
	logger.Infof("planned %d links across %d triangles", len(g.Links), len(g.Triangulation))

	schedule.Schedule(g, schedule.Options{Agents: opts.agents, Hi: cfg.BeamHi})
	logger.Infof("scheduled across %d agents: walk=%.0fs link=%.0fs comm=%.0fs",
		opts.agents, g.WalkTimeSeconds, g.LinkTimeSeconds, g.CommTimeSeconds)

	if err := os.MkdirAll(opts.outputDirectory, 0755); err != nil {
		return fmt.Errorf("fieldplan: creating output directory: %w", err)
	}

	plan := planfile.FromGraph(g)
	planPath := filepath.Join(opts.outputDirectory, opts.outputFile)
	if err := planfile.Save(plan, planPath); err != nil {
		return fmt.Errorf("fieldplan: saving plan: %w", err)
	}
	logger.Infof("saved plan to %s", planPath)

	theme := render.ThemeGreen
	if opts.blueTheme {
		theme = render.ThemeBlue
	}
	renderOpts := render.DefaultOptions()
	renderOpts.Theme = theme

	if err := os.WriteFile(filepath.Join(opts.outputDirectory, "portalMap.svg"), render.PortalMap(g, renderOpts), 0644); err != nil {
		return fmt.Errorf("fieldplan: writing portal map: %w", err)
	}
	if err := os.WriteFile(filepath.Join(opts.outputDirectory, "linkMap.svg"), render.LinkMap(g, renderOpts), 0644); err != nil {
		return fmt.Errorf("fieldplan: writing link map: %w", err)
	}

	ap := cfg.ActionPoints(len(g.Links), plan.TriangleCount)
	logger.Infof("plan complete: %d AP", ap)

	return nil
}

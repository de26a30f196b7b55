package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcsine/fieldplan/planfile"
)

func writePortalList(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "portals.txt")
	content := "A; 0.0; 0.0; 1\nB; 0.0; 0.001; 1\nC; 0.001; 0.0; 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestRunProducesPlanAndMaps(t *testing.T) {
	dir := t.TempDir()
	input := writePortalList(t, dir)

	ctx := withLogger(context.Background(), newLogger(os.Stderr, logInfoLevel))
	opts := runOptions{
		inputFile:       input,
		outputDirectory: dir,
		outputFile:      "lastPlan.pkl",
		agents:          1,
	}

	require.NoError(t, run(ctx, opts))

	plan, err := planfile.Open(filepath.Join(dir, "lastPlan.pkl"))
	require.NoError(t, err)
	require.Len(t, plan.Portals, 3)
	require.NotEmpty(t, plan.Links)

	require.FileExists(t, filepath.Join(dir, "portalMap.svg"))
	require.FileExists(t, filepath.Join(dir, "linkMap.svg"))
}

func TestNewRootCmdRejectsNonPositiveAgentCount(t *testing.T) {
	dir := t.TempDir()
	input := writePortalList(t, dir)

	root := newRootCmd()
	root.SetArgs([]string{input, dir, "lastPlan.pkl", "-n", "0"})
	root.SetContext(context.Background())

	err := root.Execute()
	require.Error(t, err)
}

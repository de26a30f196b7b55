// Package config holds the scoring and tuning constants fieldplan's core
// packages are parameterized by, with an optional TOML file to override
// any subset of the defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Constants collects every tunable numeric constant the core consults.
// Zero-value Constants is never used directly; Default returns the
// baseline values and Load optionally overrides them from a file.
type Constants struct {
	APPerLink     int     `toml:"ap_per_link"`
	APPerField    int     `toml:"ap_per_field"`
	WalkSpeed     float64 `toml:"walk_speed_mps"`
	LinkMenuSecs  float64 `toml:"link_menu_seconds"`
	CommSecs      float64 `toml:"comm_seconds"`
	MaxOutDegree  int     `toml:"max_out_degree"`
	BeamHi        int     `toml:"beam_hi"`
	TriesPerTri   int     `toml:"tries_per_tri"`
	OuterAttempts int     `toml:"outer_attempts"`
}

// Default returns the baseline scoring constants: AP =
// 313/link + 1250/field, walk speed 2 m/s, 15s per link menu, 60s per
// communication, out-degree cap 8, beam hi 15000, 3 tries per triangle,
// 8 outer planner attempts.
func Default() Constants {
	return Constants{
		APPerLink:     313,
		APPerField:    1250,
		WalkSpeed:     2.0,
		LinkMenuSecs:  15.0,
		CommSecs:      60.0,
		MaxOutDegree:  8,
		BeamHi:        15000,
		TriesPerTri:   3,
		OuterAttempts: 8,
	}
}

// ActionPoints computes the AP score for a plan with the given link and
// field counts.
func (c Constants) ActionPoints(links, fields int) int {
	return c.APPerLink*links + c.APPerField*fields
}

// Load reads path as a TOML file and overrides any fields it sets on top
// of Default(); an absent file is not an error.
func Load(path string) (Constants, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}

	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Constants{}, err
	}

	return c, nil
}

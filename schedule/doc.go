// Package schedule implements the multi-agent link scheduler: a
// beam-limited branch-and-bound search that assigns an ordered
// sequence of link sources to k agents so that the makespan (the
// completion time of the last link, accounting for travel and the
// strict global ordering between links) is minimized.
//
// The search state and transition shape use a dedicated, non-closure
// search-state struct, a precomputed dense distance buffer, and
// deterministic branching, adapted from exact depth-first branch-and-bound
// with a lower bound down to a width-limited beam, trading optimality
// for a fixed per-depth population cap.
package schedule

// Scoring and physical constants.
const (
	WalkSpeedMetersPerSecond = 2.0
	LinkTimeSeconds          = 15.0
	CommTimeSeconds          = 60.0

	// defaultHi is the beam width ceiling; defaultLo = defaultHi / k
	// survivors are kept after each depth.
	defaultHi = 15000
)

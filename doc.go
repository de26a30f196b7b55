// Package fieldplan plans maximum-field Ingress overlays: given a set of
// geolocated portals and per-portal key counts, it triangulates the
// portal set, orders the resulting links into a legal build sequence,
// and schedules that sequence across a team of agents.
//
// The core is organized leaves-first, mirroring the data flow
// PortalList -> Geometry -> FieldPlanner -> AgentScheduler:
//
//	geo/       -  lat/lng <-> unit-sphere <-> gnomonic-plane conversions
//	portal/    -  Portal, Link, Triangle, and the Graph that owns them
//	triangle/  -  recursive triangle split + build-order engine
//	planner/   -  outer triangulation loop, key rebalancing, link ordering
//	schedule/  -  beam-search branch-and-bound agent scheduler
//	matrix/    -  dense distance-matrix primitive used by schedule
//	planfile/  -  persisted-plan serialization
//	portalio/  -  portal-list text parsing
//	render/    -  SVG portal/link map rendering
//	config/    -  scoring constants and optional TOML overrides
//	cmd/fieldplan/ - command-line entry point
//
// See cmd/fieldplan for the CLI, or planner.Plan for the library entry
// point.
package fieldplan

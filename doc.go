// Package pipegrid computes connected, rectilinear pipe networks on a grid —
// linking one source cell to a set of consumer cells while keeping total pipe
// length low and discouraging unnecessary branch points.
//
// 🚰 What is pipegrid?
//
//	A deterministic, seed-reproducible optimizer built from small composable
//	packages:
//		• grid     — coordinates, bounds, canonical edges, cardinal directions
//		• tiebreak — seeded coordinate keys; the single source of tie-breaking
//		• mst      — Prim's minimum spanning tree over the terminal set
//		• planner  — BFS attachment order derived from the MST
//		• router   — junction-aware shortest-path search over the whole grid
//		• network  — the mutable network state one optimization call grows
//		• steiner  — the orchestrator producing the final Solution
//
// ✨ Why pipegrid?
//
//   - Reproducible – a fixed seed yields a bit-identical solution, every run
//   - Pure – Solve is a side-effect-free function; safe to call concurrently
//   - Tunable – the junction penalty trades pipe length against branch points
//
// The optimizer approximates a minimum rectilinear Steiner tree; computing an
// exact optimum is NP-hard and out of scope.
//
// A small CLI lives under cmd/pipegrid: it loads YAML scenarios, solves them,
// sweeps seeds concurrently, and renders networks as box-drawing grids.
package pipegrid

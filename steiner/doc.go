// Package steiner is the pipegrid orchestrator: it links one source cell to
// a set of consumer cells with a connected rectilinear pipe network,
// approximating a minimum rectilinear Steiner tree while discouraging
// unnecessary branch points (the underlying exact problem is NP-hard).
//
// Solve normalizes the consumer set, spans the terminals with a Manhattan
// MST (package mst), derives a deterministic attachment order from it
// (package planner), then grows the network terminal by terminal with the
// junction-aware grid router (package router), and finally derives the
// immutable Solution: edge set, per-cell pipe directions, junctions, and
// summary metrics.
//
// Solve is a pure function of (grid, source, consumers, options). It holds no
// locks, shares no state between calls, and runs synchronously to
// completion, so it is safe to invoke concurrently from independent callers;
// run it on a background goroutine and discard abandoned results if
// cancellation policy is needed — the algorithm itself offers none.
//
// A fixed seed makes the output bit-identical across runs and across
// conforming implementations.
package steiner

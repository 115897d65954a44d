// Package grid provides the coordinate primitives every other pipegrid
// package builds on: integer (row, column) coordinates with the Manhattan
// metric, rectangular grid bounds with a dense row-major index, canonical
// unordered edges between adjacent cells, and the cardinal direction
// vocabulary used to describe pipe segments.
//
// A Grid is an immutable value: two positive dimensions plus the bijection
// between coordinates and linear indices. It stores no cell contents — cell
// state (network membership, degree) belongs to the network package.
//
// Edges are canonicalized so the lexicographically smaller endpoint is always
// stored first; the canonical form is the identity used for set membership
// and deduplication throughout the repository.
package grid

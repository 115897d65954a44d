// Package tiebreak produces seeded, deterministic 64-bit keys for grid
// coordinates. The key induces a pseudo-random total order over coordinates
// and is the single source of tie-breaking throughout pipegrid: wherever an
// algorithm must choose among equal-cost options, it compares these keys.
//
// The construction is fixed by contract: the seed is XORed with the row and
// column each multiplied by an odd 64-bit constant, and the combined value is
// passed through the splitmix64 finalizer (three xor-shift rounds with two
// multiplications). Two independent implementations sharing the seed and the
// constants therefore produce bit-identical keys on every platform — and so
// bit-identical solutions.
//
// Keys depend only on (seed, coordinate): no iteration order, hash-table
// layout, or global state is involved.
package tiebreak

package tiebreak

import "pipegrid/grid"

// Odd multiplicative salts separating the row and column contributions before
// mixing. Changing either constant changes every solution; they are part of
// the reproducibility contract.
const (
	rowSalt = 0x9e3779b97f4a7c15
	colSalt = 0xc2b2ae3d27d4eb4f
)

// splitmix64 finalizer constants.
const (
	mixMul1 = 0xbf58476d1ce4e5b9
	mixMul2 = 0x94d049bb133111eb
)

// Keyer derives coordinate keys from a fixed 64-bit seed. The zero value is a
// valid Keyer with seed 0. Keyer is immutable and safe for concurrent use.
type Keyer struct {
	seed uint64
}

// New returns a Keyer for the given seed.
// Complexity: O(1).
func New(seed uint64) Keyer {
	return Keyer{seed: seed}
}

// Seed returns the seed this Keyer was built with.
func (k Keyer) Seed() uint64 {
	return k.seed
}

// Key returns the deterministic 64-bit key of c under this Keyer's seed.
// Complexity: O(1).
func (k Keyer) Key(c grid.Coord) uint64 {
	h := k.seed ^ uint64(int64(c.Row))*rowSalt ^ uint64(int64(c.Col))*colSalt

	return mix64(h)
}

// mix64 is the splitmix64 avalanche finalizer: three xor-shift rounds
// interleaved with two odd-constant multiplications. Every input bit affects
// every output bit.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= mixMul1
	x ^= x >> 27
	x *= mixMul2
	x ^= x >> 31

	return x
}

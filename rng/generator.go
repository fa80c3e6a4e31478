// Package rng provides the deterministic, seedable random streams
// random masks draw from. A Generator owns two independent streams —
// a scalar stream for Bernoulli trials and uniform integer draws, and
// a vector stream for multinomial draws — mirroring the source
// implementation's split between Python's random module and numpy's
// random module, which keep entirely separate internal states.
package rng

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
)

// Seed is the external seed type random masks are constructed with.
type Seed int64

// vectorSalt decorrelates the vector stream's seed from the scalar
// stream's seed when both derive from the same external Seed.
const vectorSalt uint64 = 0x9e3779b97f4a7c15

// Token is an opaque, restorable snapshot of a Generator's state. A
// Generator captures a Token at construction and restores it at the
// start of every iteration pass, the same way the source recreates
// determinism by calling random.setstate/numpy.random.set_state with
// a state saved at mask construction time.
type Token struct {
	scalarSeed int64
	vectorSeed int64
}

// Generator draws pseudo-random values for a random mask's windowed
// iteration. Because math/rand's generators are fully determined by
// their seed, "restoring" a stream is just reconstructing rand.Rand
// from the seed that produced it — there is no separate get/set-state
// API to carry, unlike the Python streams this replaces.
type Generator struct {
	scalar *rand.Rand
	vector *rand.Rand
	token  Token
}

// New creates a Generator from an external seed.
func New(seed Seed) *Generator {
	return fromToken(Token{scalarSeed: int64(seed), vectorSeed: int64(uint64(seed) ^ vectorSalt)})
}

func fromToken(tok Token) *Generator {
	return &Generator{
		scalar: rand.New(rand.NewSource(tok.scalarSeed)),
		vector: rand.New(rand.NewSource(tok.vectorSeed)),
		token:  tok,
	}
}

// Snapshot returns a Token that reproduces this Generator's initial
// state.
func (g *Generator) Snapshot() Token {
	return g.token
}

// Restore returns a fresh Generator reset to tok. Masks call this at
// the start of every iteration pass (BeginIteration) so that
// re-iterating a random mask over the same window reproduces the same
// connections.
func Restore(tok Token) *Generator {
	return fromToken(tok)
}

// Bernoulli reports true with probability p, drawing from the scalar
// stream.
func (g *Generator) Bernoulli(p float64) bool {
	return g.scalar.Float64() < p
}

// UniformInt draws a uniform integer in [0, n) from the scalar
// stream.
func (g *Generator) UniformInt(n int) int {
	return g.scalar.Intn(n)
}

// Uniform01 draws a uniform float64 in [0, 1) from the scalar stream.
func (g *Generator) Uniform01() float64 {
	return g.scalar.Float64()
}

// Rehash derives a new Generator whose scalar stream is a
// deterministic function of this Generator's current scalar seed and
// offset. Random masks call this between partitions so that each
// partition draws from an independent-looking stream instead of
// replaying the same sequence of scalar draws — the same purpose the
// source's "replacement for a proper random.jumpahead(n)"
// (random.seed(random.getrandbits(32) + m)) served, made
// deterministic and reproducible across runs instead of depending on
// the live state of a global stream.
func (g *Generator) Rehash(offset int) *Generator {
	newScalar := mix(g.token.scalarSeed, int64(offset))
	return fromToken(Token{scalarSeed: newScalar, vectorSeed: g.token.vectorSeed})
}

// ReseedVector derives a new Generator whose vector stream is a
// deterministic function of name and seed, independent of this
// Generator's own state. Partitioned random masks use this so that
// every partition (and every process cooperating on the same
// partitioned run) derives the same partition-selection draw from the
// same (name, seed) pair — mirroring the source's
// numpy.random.seed(hash(seed) % 2**32) call keyed on a named seed
// shared across processes.
func (g *Generator) ReseedVector(name string, seed Seed) *Generator {
	h := fnv.New64a()
	h.Write([]byte(name))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	h.Write(buf[:])
	newVector := int64(h.Sum64())
	return fromToken(Token{scalarSeed: g.token.scalarSeed, vectorSeed: newVector})
}

func mix(a, b int64) int64 {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(a))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(b))
	h.Write(buf[:])
	return int64(h.Sum64())
}

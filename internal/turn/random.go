package turn

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
)

// DefaultSeed seeds every random walker that does not specify its own seed.
const DefaultSeed uint64 = 0x0EA4_F7EE_CAFE_F00D

// Direction is one of the four unit steps a random walker can take.
type Direction uint8

const (
	DirNorth Direction = iota // +y
	DirSouth                  // -y
	DirEast                   // +x
	DirWest                   // -x
	directionCount
)

// Delta returns the unit offset for the direction.
func (d Direction) Delta() Position {
	switch d {
	case DirNorth:
		return Position{Y: 1}
	case DirSouth:
		return Position{Y: -1}
	case DirEast:
		return Position{X: 1}
	case DirWest:
		return Position{X: -1}
	default:
		return Position{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	default:
		return "none"
	}
}

// RandomStream is a deterministic per-actor generator. Two streams built
// from the same seed produce the same sequence.
type RandomStream struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandomStream creates a stream seeded with seed.
func NewRandomStream(seed uint64) *RandomStream {
	rs := &RandomStream{seed: seed}
	rs.Reseed()
	return rs
}

// Seed returns the seed the stream was created with.
func (rs *RandomStream) Seed() uint64 {
	return rs.seed
}

// Reseed rewinds the stream to the start of its sequence.
func (rs *RandomStream) Reseed() {
	// Non-cryptographic PRNG is intentional for reproducible movement.
	// #nosec G404
	rs.rng = rand.New(rand.NewPCG(seedWord(rs.seed, 'a'), seedWord(rs.seed, 'b')))
}

// Uint8 draws a uniformly distributed byte.
func (rs *RandomStream) Uint8() uint8 {
	return uint8(rs.rng.Uint32())
}

// Direction draws one byte and reduces it modulo four.
func (rs *RandomStream) Direction() Direction {
	return Direction(rs.Uint8() % uint8(directionCount))
}

func seedWord(seed uint64, salt byte) uint64 {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	buf[8] = salt
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

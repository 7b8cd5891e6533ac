package spatialhash

import (
	"math"
	"math/bits"
)

// Key is a 32-bit position hash.
type Key uint32

// HashPosition hashes a float32 position triple, normalizing -0.0 to +0.0
// on each component first so that bit-identical positions collide
// regardless of signed-zero variance in the source data.
func HashPosition(x, y, z float32) Key {
	h := mix(0, math.Float32bits(normalizeZero(x)))
	h = mix(h, math.Float32bits(normalizeZero(y)))
	h = mix(h, math.Float32bits(normalizeZero(z)))
	return Key(h)
}

func normalizeZero(v float32) float32 {
	if v == 0 {
		return 0 // -0.0 == 0.0 in Go; the literal on the right is always +0.0
	}
	return v
}

// mix folds k into h using a Murmur3-style 32-bit mixing step.
func mix(h, k uint32) uint32 {
	k *= 0xcc9e2d51
	k = bits.RotateLeft32(k, 15)
	k *= 0x1b873593

	h ^= k
	h = bits.RotateLeft32(h, 13)
	h = h*5 + 0xe6546b64

	return h
}

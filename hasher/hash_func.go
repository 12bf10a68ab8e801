package hasher

import (
	"math/bits"

	"github.com/OneOfOne/xxhash"
	"github.com/dchest/siphash"
)

const (
	randomNumber = uint64(4735311918715544114)

	// 2^64 / golden ratio
	fibonacciMultiplier = uint64(11400714819323198485)
)

// preHashBytes packs keys of up to 8 bytes into a word and mixes it, the
// length is folded in so that "\x01" and "\x01\x00" differ. Longer keys go
// through xxhash.
func preHashBytes(in []byte) uint64 {
	if len(in) <= 8 {
		v := uint64(0)
		for i, c := range in {
			v += uint64(c) << (uint(i) << 3)
		}
		return mix64(v ^ bits.RotateLeft64(randomNumber, len(in)))
	}
	return xxhash.Checksum64(in)
}

// mix64 is the murmur3 finalizer; it is a bijection, so packed keys stay
// collision free before compression.
func mix64(v uint64) uint64 {
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	v *= 0xc4ceb9fe1a85ec53
	v ^= v >> 33
	return v
}

func sipHashBytes(k0, k1 uint64, in []byte) uint64 {
	return siphash.Hash(k0, k1, in)
}

// CompressHash maps fullHash onto [0, tableSize). tableSize must be a power
// of two. The top bits of a Fibonacci product are used, so hashes which
// differ only in their high bits still land in different buckets.
func CompressHash(tableSize uint64, fullHash uint64) uint64 {
	if tableSize <= 1 {
		return 0
	}
	shift := uint(64 - bits.TrailingZeros64(tableSize))
	return (fullHash * fibonacciMultiplier) >> shift
}

// Hash is the default content hash of a byte sequence.
func Hash(in []byte) uint64 {
	return preHashBytes(in)
}

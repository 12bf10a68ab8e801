package hasher

import (
	I "github.com/xaionaro-go/bohmap/interfaces"
)

type Hasher = I.Hasher

type hasher struct{}

// New returns the default hasher: short keys are packed, longer keys are
// hashed with xxhash64.
func New() Hasher {
	return &hasher{}
}

func (h *hasher) Hash(key []byte) uint64 {
	return preHashBytes(key)
}

func (h *hasher) CompressHash(tableSize uint64, fullHash uint64) uint64 {
	return CompressHash(tableSize, fullHash)
}

type sipHasher struct {
	k0, k1 uint64
}

// NewSip returns a SipHash-2-4 hasher keyed with k0 and k1. Use it when the
// keys may be chosen by someone who wants to degrade the table.
func NewSip(k0, k1 uint64) Hasher {
	return &sipHasher{k0: k0, k1: k1}
}

func (h *sipHasher) Hash(key []byte) uint64 {
	return sipHashBytes(h.k0, h.k1, key)
}

func (h *sipHasher) CompressHash(tableSize uint64, fullHash uint64) uint64 {
	return CompressHash(tableSize, fullHash)
}

// Func adapts a plain function to Hasher.
type Func func(key []byte) uint64

func (fn Func) Hash(key []byte) uint64 {
	return fn(key)
}

func (fn Func) CompressHash(tableSize uint64, fullHash uint64) uint64 {
	return CompressHash(tableSize, fullHash)
}

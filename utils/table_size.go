package utils

import (
	"math/bits"
)

// MaximumCapacity is the largest table size TableSizeFor returns.
const MaximumCapacity = 1 << 30

// TableSizeFor returns the smallest power of two which is not less than
// capacity, clamped to [1, MaximumCapacity].
func TableSizeFor(capacity int) int {
	if capacity <= 1 {
		return 1
	}
	if capacity >= MaximumCapacity {
		return MaximumCapacity
	}
	return 1 << uint(bits.Len64(uint64(capacity-1)))
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

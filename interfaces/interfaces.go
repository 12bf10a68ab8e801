package interfaces

// Hasher turns raw key bytes into a full 64-bit hash and compresses that
// hash into an index of a power-of-two sized table.
type Hasher interface {
	Hash(key []byte) uint64
	CompressHash(tableSize uint64, fullHash uint64) uint64
}

// ByteMap is the raw-bytes surface shared by bohmap.Map and the baseline
// implementations used in benchmarks.
type ByteMap interface {
	PutBytes(key, value []byte) error
	GetBytes(key []byte) (value []byte, ok bool)
	RemoveBytes(key []byte) bool
	Len() int
}

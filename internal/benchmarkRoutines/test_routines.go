package benchmarkRoutines

import (
	"bytes"
	"encoding/binary"
	"testing"

	I "github.com/xaionaro-go/bohmap/interfaces"
)

type checkConsistencier interface {
	CheckConsistency() error
}

func checkConsistency(t *testing.T, m I.ByteMap) {
	c, ok := m.(checkConsistencier)
	if !ok {
		return
	}
	if err := c.CheckConsistency(); err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
}

func intKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}

func expect(t *testing.T, m I.ByteMap, key []byte, expectedValue []byte) {
	value, ok := m.GetBytes(key)
	if !ok {
		t.Errorf("Key %x not found; expectedValue == %x", key, expectedValue)
		return
	}
	if !bytes.Equal(value, expectedValue) {
		t.Errorf(`A wrong value "%x" (instead of %x)`, value, expectedValue)
	}
}

// DoTest runs the common put/get/remove scenario against a ByteMap.
func DoTest(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(1024)

	if m.Len() != 0 && m.Len() != -1 { // "-1" means "unsupported"
		t.Errorf("m.Len() is not 0: %v", m.Len())
	}

	m.PutBytes(intKey(1024*1024), []byte{1})
	m.PutBytes([]byte("a string"), []byte{2})

	expect(t, m, intKey(1024*1024), []byte{1})
	expect(t, m, []byte("a string"), []byte{2})

	if _, ok := m.GetBytes(intKey(3)); ok {
		t.Errorf(`An unexpected value for a missing key`)
	}

	if m.Len() != 2 && m.Len() != -1 {
		t.Errorf("m.Len() is not 2: %v", m.Len())
	}

	if !m.RemoveBytes(intKey(1024 * 1024)) {
		t.Errorf("Unable to remove an existing key")
	}

	if _, ok := m.GetBytes(intKey(1024 * 1024)); ok {
		t.Errorf(`A removed key is still there`)
	}

	if m.Len() != 1 && m.Len() != -1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}

	for i := 10; i < 1024*128; i++ {
		m.PutBytes(intKey(i*6000), intKey(i))
	}
	if !m.RemoveBytes(intKey(60000)) {
		t.Errorf("Unable to remove an existing key")
	}

	checkConsistency(t, m)
	for i := 11; i < 1024*128; i++ {
		expect(t, m, intKey(i*6000), intKey(i))
	}
	checkConsistency(t, m)

	for i := 11; i < 1024*128; i++ {
		if !m.RemoveBytes(intKey(i * 6000)) {
			t.Errorf("Cannot remove %v", i*6000)
		}
	}

	if m.Len() != 1 && m.Len() != -1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}
	checkConsistency(t, m)
}

func tryHashCollisions(hasher I.Hasher, blockSize uint64, keys [][]byte) int {
	alreadyIsSet := map[uint64]bool{}

	collisions := 0
	for _, key := range keys {
		idx := hasher.CompressHash(blockSize, hasher.Hash(key))
		if idx >= blockSize {
			panic("index out of table")
		}
		if alreadyIsSet[idx] {
			collisions++
		}
		alreadyIsSet[idx] = true
	}

	return collisions
}

// expectedCollisions is how many keys an ideal random hash would put into
// an already taken bucket: n - m*(1 - (1-1/m)^n).
func expectedCollisions(blockSize uint64, keyAmount uint64) float64 {
	m := float64(blockSize)
	free := 1.0
	for i := uint64(0); i < keyAmount; i++ {
		free *= 1 - 1/m
	}
	return float64(keyAmount) - m*(1-free)
}

func checkCollisions(t *testing.T, scenario string, collisions int, blockSize, keyAmount uint64) {
	limit := 2*expectedCollisions(blockSize, keyAmount) + 16
	t.Logf("%s: %v collisions of %v keys in %v buckets (%.1f%%)", scenario, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))
	if float64(collisions) > limit {
		t.Errorf("%s: too many collisions: %v > %.0f", scenario, collisions, limit)
	}
}

// DoTestHashCollisions checks that hasher spreads random keys, keys which are
// multiples of blockSize and consecutive keys no worse than twice an ideal
// random function.
func DoTestHashCollisions(t *testing.T, hasher I.Hasher, blockSize uint64, keyAmount uint64) {
	keys := generateKeys(keyAmount/2, "int")
	keys = append(keys, generateKeys(keyAmount-keyAmount/2, "string")...)
	checkCollisions(t, "random keys", tryHashCollisions(hasher, blockSize, keys), blockSize, keyAmount)

	keys = keys[:0]
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, intKey(int(i*blockSize*63)))
	}
	checkCollisions(t, "keys are multiple of blockSize", tryHashCollisions(hasher, blockSize, keys), blockSize, keyAmount)

	keys = keys[:0]
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, intKey(int(i)))
	}
	checkCollisions(t, "keys are consecutive", tryHashCollisions(hasher, blockSize, keys), blockSize, keyAmount)
}

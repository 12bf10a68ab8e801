package bohmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// fillDuplicateValues maps two random keys onto the same value n times and
// returns the expected value multiset.
func fillDuplicateValues(t *testing.T, m *Map, r *rand.Rand, n int) []Binary {
	var values []Binary
	for i := 0; i < n; i++ {
		key1, key2 := randomBinary(r, 8), randomBinary(r, 8)
		if previous, existed := mustPut(t, m, key1, key1); existed {
			values = removeBinary(values, previous)
		}
		if previous, existed := mustPut(t, m, key2, key1); existed {
			values = removeBinary(values, previous)
		}
		values = append(values, key1, key1)
	}
	return values
}

// fillIdentity puts n random keys mapped onto themselves and returns the
// builtin mirror of the map.
func fillIdentity(t *testing.T, m *Map, r *rand.Rand, n int) map[string]Binary {
	mirror := map[string]Binary{}
	for i := 0; i < n; i++ {
		key := randomBinary(r, 8)
		mustPut(t, m, key, key)
		mirror[string(key.Bytes())] = key
	}
	return mirror
}

func requireAllIn(t *testing.T, expected []Binary, actual []Binary) {
	for _, b := range actual {
		require.True(t, containsBinary(expected, b), "unexpected element %v", b)
	}
}

func requireEntriesIn(t *testing.T, mirror map[string]Binary, entries []Entry) {
	for _, e := range entries {
		value, ok := mirror[string(e.Key.Bytes())]
		require.True(t, ok, "unexpected key %v", e.Key)
		require.True(t, value.Equal(e.Value))
	}
}

func TestKeySetSize(t *testing.T) {
	m, r := newTestMap(t)
	keys := fillRandom(t, m, r, 100)

	keySet := m.KeySet()
	require.Equal(t, len(keys), keySet.Len())
	require.False(t, keySet.IsEmpty())
}

func TestKeySetContains(t *testing.T) {
	m, r := newTestMap(t)
	keys := fillRandom(t, m, r, 100)

	keySet := m.KeySet()
	for _, key := range keys {
		require.True(t, keySet.Contains(key))
	}
	require.True(t, keySet.ContainsAll(keys...))
	require.False(t, keySet.ContainsAll(append(keys, randomBinary(r, 9))...))
}

func TestKeySetToArray(t *testing.T) {
	m, r := newTestMap(t)
	keys := fillRandom(t, m, r, 100)

	array := m.KeySet().ToArray()
	require.Len(t, array, len(keys))
	requireAllIn(t, keys, array)

	array = m.KeySet().ToArrayInto(make([]Binary, 0))
	require.Len(t, array, len(keys))
	requireAllIn(t, keys, array)

	dst := make([]Binary, m.Len())
	array = m.KeySet().ToArrayInto(dst)
	require.Len(t, array, len(keys))
	require.Same(t, &dst[0], &array[0])
	requireAllIn(t, keys, array)

	dst = make([]Binary, m.Len()+5)
	array = m.KeySet().ToArrayInto(dst)
	require.Len(t, array, len(keys))
}

func TestToArrayIsSnapshot(t *testing.T) {
	m, r := newTestMap(t)
	keys := fillRandom(t, m, r, 10)

	array := m.KeySet().ToArray()
	m.Clear()
	require.Len(t, array, len(keys))
	requireAllIn(t, keys, array)
}

func TestKeySetRemove(t *testing.T) {
	m, r := newTestMap(t)
	keys := fillRandom(t, m, r, 100)

	removedKey := keys[len(keys)/2]
	require.True(t, m.KeySet().Remove(removedKey))
	require.False(t, m.KeySet().Remove(removedKey))
	require.False(t, m.ContainsKey(removedKey))
	require.Equal(t, len(keys)-1, m.Len())
}

func TestKeySetRemoveAll(t *testing.T) {
	m, r := newTestMap(t)
	keys := fillRandom(t, m, r, 100)

	require.True(t, m.KeySet().RemoveAll(keys...))
	require.False(t, m.KeySet().RemoveAll(keys...))
	require.True(t, m.KeySet().IsEmpty())
	require.True(t, m.IsEmpty())
}

func TestKeySetRetainAll(t *testing.T) {
	m, r := newTestMap(t)
	keys := fillRandom(t, m, r, 100)

	kept := keys[:10]
	require.True(t, m.KeySet().RetainAll(kept...))
	require.False(t, m.KeySet().RetainAll(kept...))
	require.Equal(t, len(kept), m.Len())
	for _, key := range kept {
		require.True(t, m.ContainsKey(key))
	}
	for _, key := range keys[10:] {
		require.False(t, m.ContainsKey(key))
	}
}

func TestKeySetClear(t *testing.T) {
	m, r := newTestMap(t)
	fillRandom(t, m, r, 100)

	m.KeySet().Clear()
	require.True(t, m.KeySet().IsEmpty())
	require.True(t, m.IsEmpty())
}

func TestKeySetIterator(t *testing.T) {
	m, r := newTestMap(t)
	keys := fillRandom(t, m, r, 100)

	var actual []Binary
	require.NoError(t, m.KeySet().Iterator().ForEachRemaining(func(key Binary) bool {
		actual = append(actual, key)
		return true
	}))
	require.Len(t, actual, len(keys))
	requireAllIn(t, keys, actual)
}

func TestViewIsLive(t *testing.T) {
	m, r := newTestMap(t)
	keySet := m.KeySet()
	values := m.Values()
	entries := m.EntrySet()
	require.True(t, keySet.IsEmpty())

	key, value := randomBinary(r, 8), randomBinary(r, 8)
	mustPut(t, m, key, value)
	require.True(t, keySet.Contains(key))
	require.True(t, values.Contains(value))
	require.True(t, entries.Contains(Entry{Key: key, Value: value}))
	require.Equal(t, 1, keySet.Len())

	m.Remove(key)
	require.False(t, keySet.Contains(key))
	require.True(t, values.IsEmpty())
}

func TestValuesSize(t *testing.T) {
	m, r := newTestMap(t)
	values := fillDuplicateValues(t, m, r, 100)

	require.Equal(t, len(values), m.Values().Len())
	require.Equal(t, m.Len(), m.Values().Len())
}

func TestValuesContains(t *testing.T) {
	m, r := newTestMap(t)
	values := fillDuplicateValues(t, m, r, 100)

	collection := m.Values()
	for _, value := range values {
		require.True(t, collection.Contains(value))
	}
	require.True(t, collection.ContainsAll(values...))
}

func TestValuesToArray(t *testing.T) {
	m, r := newTestMap(t)
	values := fillDuplicateValues(t, m, r, 100)

	collection := m.Values()
	array := collection.ToArray()
	require.Len(t, array, len(values))
	requireAllIn(t, values, array)

	array = collection.ToArrayInto(nil)
	require.Len(t, array, len(values))
	requireAllIn(t, values, array)

	array = collection.ToArrayInto(make([]Binary, m.Len()))
	require.Len(t, array, len(values))
	requireAllIn(t, values, array)
}

func TestValuesRemove(t *testing.T) {
	m, r := newTestMap(t)
	key1, key2, value := randomBinary(r, 8), randomBinary(r, 8), randomBinary(r, 8)
	mustPut(t, m, key1, value)
	mustPut(t, m, key2, value)

	require.True(t, m.Values().Remove(value))
	require.Equal(t, 1, m.Len())
	require.True(t, m.ContainsValue(value))
	require.True(t, m.Values().Remove(value))
	require.False(t, m.Values().Remove(value))
	require.True(t, m.IsEmpty())
}

func TestValuesRemoveAllRemovesEveryOccurrence(t *testing.T) {
	m, r := newTestMap(t)
	shared, other := randomBinary(r, 8), randomBinary(r, 8)
	for i := 0; i < 5; i++ {
		mustPut(t, m, randomBinary(r, 8), shared)
	}
	otherKey := randomBinary(r, 8)
	mustPut(t, m, otherKey, other)

	require.True(t, m.Values().RemoveAll(shared))
	require.Equal(t, 1, m.Len())
	require.True(t, m.ContainsKey(otherKey))
	require.False(t, m.Values().RemoveAll(shared))

	mustPut(t, m, randomBinary(r, 8), shared)
	require.True(t, m.Values().RetainAll(shared))
	require.Equal(t, 1, m.Len())
	require.False(t, m.ContainsValue(other))
}

func TestValuesNull(t *testing.T) {
	m, r := newTestMap(t)
	key := randomBinary(r, 8)
	mustPut(t, m, key, Null)

	require.True(t, m.Values().Contains(Null))
	require.True(t, m.Values().Remove(Null))
	require.False(t, m.ContainsKey(key))
}

func TestValuesClear(t *testing.T) {
	m, r := newTestMap(t)
	fillRandom(t, m, r, 100)

	m.Values().Clear()
	require.True(t, m.IsEmpty())
	require.True(t, m.Values().IsEmpty())
}

func TestValuesIterator(t *testing.T) {
	m, r := newTestMap(t)
	values := fillDuplicateValues(t, m, r, 100)

	var actual []Binary
	it := m.Values().Iterator()
	for it.HasNext() {
		value, err := it.Next()
		require.NoError(t, err)
		actual = append(actual, value)
	}
	require.Len(t, actual, len(values))
	requireAllIn(t, values, actual)
}

func TestEntrySetSize(t *testing.T) {
	m, r := newTestMap(t)
	mirror := fillIdentity(t, m, r, 100)

	require.Equal(t, len(mirror), m.EntrySet().Len())
}

func TestEntrySetIsEmpty(t *testing.T) {
	m, r := newTestMap(t)
	fillIdentity(t, m, r, 100)

	require.False(t, m.EntrySet().IsEmpty())
	m.Clear()
	require.True(t, m.EntrySet().IsEmpty())
}

func TestEntrySetContains(t *testing.T) {
	m, r := newTestMap(t)
	mirror := fillIdentity(t, m, r, 100)

	var entries []Entry
	for _, key := range mirror {
		entry := Entry{Key: key, Value: key}
		require.True(t, m.EntrySet().Contains(entry))
		entries = append(entries, entry)
	}
	require.True(t, m.EntrySet().ContainsAll(entries...))

	some := entries[0]
	require.False(t, m.EntrySet().Contains(Entry{Key: some.Key, Value: randomBinary(r, 9)}))
	require.False(t, m.EntrySet().Contains(Entry{Key: some.Key, Value: Null}))
}

func TestEntrySetToArray(t *testing.T) {
	m, r := newTestMap(t)
	mirror := fillIdentity(t, m, r, 100)

	array := m.EntrySet().ToArray()
	require.Len(t, array, m.Len())
	requireEntriesIn(t, mirror, array)

	array = m.EntrySet().ToArrayInto(make([]Entry, 0))
	require.Len(t, array, m.Len())
	requireEntriesIn(t, mirror, array)

	array = m.EntrySet().ToArrayInto(make([]Entry, m.Len()))
	require.Len(t, array, m.Len())
	requireEntriesIn(t, mirror, array)
}

func TestEntrySetRemove(t *testing.T) {
	m, r := newTestMap(t)
	key, value := randomBinary(r, 8), randomBinary(r, 8)
	mustPut(t, m, key, value)

	require.False(t, m.EntrySet().Remove(Entry{Key: key, Value: randomBinary(r, 8)}))
	require.True(t, m.ContainsKey(key))
	require.True(t, m.EntrySet().Remove(Entry{Key: key, Value: value}))
	require.False(t, m.ContainsKey(key))
	require.False(t, m.EntrySet().Remove(Entry{Key: key, Value: value}))
}

func TestEntrySetRemoveAllRetainAll(t *testing.T) {
	m, r := newTestMap(t)
	fillIdentity(t, m, r, 50)
	entries := m.EntrySet().ToArray()

	require.True(t, m.EntrySet().RetainAll(entries[:20]...))
	require.Equal(t, 20, m.Len())
	require.True(t, m.EntrySet().RemoveAll(entries[:10]...))
	require.False(t, m.EntrySet().RemoveAll(entries[:10]...))
	require.Equal(t, 10, m.Len())
	require.True(t, m.EntrySet().ContainsAll(entries[10:20]...))
}

func TestEntrySetClear(t *testing.T) {
	m, r := newTestMap(t)
	fillIdentity(t, m, r, 100)

	require.False(t, m.EntrySet().IsEmpty())
	m.EntrySet().Clear()
	require.True(t, m.EntrySet().IsEmpty())
	require.True(t, m.IsEmpty())
}

func TestEntrySetIterator(t *testing.T) {
	m, r := newTestMap(t)
	mirror := fillIdentity(t, m, r, 100)

	var actual []Entry
	require.NoError(t, m.EntrySet().Iterator().ForEachRemaining(func(e Entry) bool {
		actual = append(actual, e)
		return true
	}))
	require.Len(t, actual, len(mirror))
	requireEntriesIn(t, mirror, actual)
}

func TestEmptyIterators(t *testing.T) {
	m := New(1024 * 1024)

	require.False(t, m.KeySet().Iterator().HasNext())
	_, err := m.KeySet().Iterator().Next()
	require.ErrorIs(t, err, ErrIteratorExhausted)

	require.False(t, m.Values().Iterator().HasNext())
	_, err = m.Values().Iterator().Next()
	require.ErrorIs(t, err, ErrIteratorExhausted)

	require.False(t, m.EntrySet().Iterator().HasNext())
	_, err = m.EntrySet().Iterator().Next()
	require.ErrorIs(t, err, ErrIteratorExhausted)
}

func TestIteratorExhaustion(t *testing.T) {
	m, r := newTestMap(t)
	fillRandom(t, m, r, 3)

	it := m.KeySet().Iterator()
	for i := 0; i < m.Len(); i++ {
		require.True(t, it.HasNext())
		_, err := it.Next()
		require.NoError(t, err)
	}
	require.False(t, it.HasNext())
	_, err := it.Next()
	require.ErrorIs(t, err, ErrIteratorExhausted)
	_, err = it.Next()
	require.ErrorIs(t, err, ErrIteratorExhausted)
}

func TestIteratorRemove(t *testing.T) {
	m, r := newTestMap(t)
	keys := fillRandom(t, m, r, 200)

	it := m.KeySet().Iterator()
	require.ErrorIs(t, it.Remove(), ErrIllegalState)

	removed := 0
	seen := 0
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		seen++
		if seen%2 == 0 {
			require.NoError(t, it.Remove())
			require.ErrorIs(t, it.Remove(), ErrIllegalState)
			removed++
		}
	}
	require.Equal(t, len(keys), seen)
	require.Equal(t, len(keys)-removed, m.Len())
	require.NoError(t, m.CheckConsistency())
}

func TestRemoveAllRetainAllOnSingleChain(t *testing.T) {
	m := New(1, WithHasher(constantHasher))
	for i := 0; i < 64; i++ {
		mustPut(t, m, BinaryFromInt64(int64(i)), BinaryFromInt32(int32(i%4)))
	}

	var keep []Entry
	for i := 0; i < 64; i += 3 {
		keep = append(keep, Entry{Key: BinaryFromInt64(int64(i)), Value: BinaryFromInt32(int32(i % 4))})
	}
	require.NotPanics(t, func() {
		require.True(t, m.EntrySet().RetainAll(keep...))
	})
	require.Equal(t, len(keep), m.Len())
	require.NoError(t, m.CheckConsistency())

	require.NotPanics(t, func() {
		require.True(t, m.Values().RemoveAll(BinaryFromInt32(0), BinaryFromInt32(1)))
	})
	m.ForEach(func(key, value Binary) bool {
		decoded, err := value.Int32()
		require.NoError(t, err)
		require.GreaterOrEqual(t, decoded, int32(2))
		return true
	})
	require.False(t, m.Values().RetainAll(m.Values().ToArray()...))
	require.NoError(t, m.CheckConsistency())
}

func TestIteratorRemoveEverything(t *testing.T) {
	m := New(1, WithHasher(constantHasher))
	for i := 0; i < 50; i++ {
		mustPut(t, m, BinaryFromInt64(int64(i)), Null)
	}

	it := m.EntrySet().Iterator()
	count := 0
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
		count++
	}
	require.Equal(t, 50, count)
	require.True(t, m.IsEmpty())
	require.NoError(t, m.CheckConsistency())
}

func TestIteratorConcurrentModification(t *testing.T) {
	m, r := newTestMap(t)
	fillRandom(t, m, r, 5)

	it := m.KeySet().Iterator()
	key, err := it.Next()
	require.NoError(t, err)

	mustPut(t, m, randomBinary(r, 9), Null)
	_, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
	require.ErrorIs(t, it.Remove(), ErrConcurrentModification)
	require.True(t, m.ContainsKey(key))

	// replacing a value is not a structural change
	it = m.KeySet().Iterator()
	key, err = it.Next()
	require.NoError(t, err)
	mustPut(t, m, key, randomBinary(r, 8))
	_, err = it.Next()
	require.NoError(t, err)
}

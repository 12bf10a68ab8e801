// Package bohmap implements a hash map keyed and valued by Binary, an
// immutable byte sequence with content based equality.
//
// Collisions are resolved by chaining. The bucket array is always a power
// of two in size and doubles once the number of entries exceeds
// capacity*loadFactor; it never shrinks. A value may be Null, which is
// stored and reported separately from an absent key.
//
// KeySet, Values and EntrySet return live views: they hold only a pointer
// to the Map, so changes through the map are visible through the views and
// removals through a view (or its iterator) remove entries from the map.
//
// A Map is not safe for concurrent use. Callers sharing one between
// goroutines must guard every map and view call with their own lock.
package bohmap

import (
	"fmt"
	"math"

	"github.com/xaionaro-go/bohmap/errors"
	"github.com/xaionaro-go/bohmap/hasher"
	"github.com/xaionaro-go/bohmap/utils"
)

// Source is anything PutAll can copy from. ForEach must call fn for every
// key/value pair and stop when fn returns false.
type Source interface {
	ForEach(fn func(key, value Binary) bool)
}

type Map struct {
	storage    *storage
	hasher     hasher.Hasher
	loadFactor float64
	busySlots  int
	threshold  int
	modCount   uint64
}

// New returns an empty map whose table can hold initialCapacity buckets,
// rounded up to a power of two (see utils.TableSizeFor).
func New(initialCapacity int, opts ...Option) *Map {
	m := &Map{
		hasher:     hasher.New(),
		loadFactor: defaultLoadFactor,
	}
	for _, opt := range opts {
		opt.apply(m)
	}
	size := utils.TableSizeFor(initialCapacity)
	m.storage = newStorage(size, m.hasher)
	m.threshold = m.thresholdFor(size)
	return m
}

func (m *Map) thresholdFor(size int) int {
	if size >= utils.MaximumCapacity {
		return math.MaxInt
	}
	threshold := float64(size) * m.loadFactor
	if threshold >= math.MaxInt {
		return math.MaxInt
	}
	return int(threshold)
}

func (m *Map) hash(key Binary) uint64 {
	return m.hasher.Hash(key.value)
}

// Put associates value with key and returns the value it replaced. existed
// is false when key was not in the map; previous is then Null. A Null key
// is rejected with ErrNullKey.
func (m *Map) Put(key, value Binary) (previous Binary, existed bool, err error) {
	if key.IsNull() {
		return Null, false, errors.ErrNullKey
	}

	hashValue := m.hash(key)
	if e := m.storage.insert(hashValue, key, value); e != nil {
		previous = e.value
		e.value = value
		return previous, true, nil
	}

	m.busySlots++
	m.modCount++
	if m.busySlots > m.threshold {
		m.growTo(int(m.storage.size()) << 1)
	}
	return Null, false, nil
}

func (m *Map) growTo(newSize int) {
	newSize = utils.TableSizeFor(newSize)
	oldSize := int(m.storage.size())
	if newSize <= oldSize {
		return
	}

	oldStorage := m.storage
	m.storage = newStorage(newSize, m.hasher)
	m.storage.copyOldItemsAfterGrowing(oldStorage)
	m.threshold = m.thresholdFor(newSize)
	m.modCount++

	log.Debugf("grew from %d to %d buckets holding %d entries", oldSize, newSize, m.busySlots)
	if newSize == utils.MaximumCapacity {
		log.Warningf("reached the maximal table size %d, chains will grow from now on", newSize)
	}
}

// Get returns the value stored under key. ok is false when key is absent;
// a stored Null comes back as (Null, true).
func (m *Map) Get(key Binary) (value Binary, ok bool) {
	if key.IsNull() || m.busySlots == 0 {
		return Null, false
	}
	e := m.storage.find(m.hash(key), key)
	if e == nil {
		return Null, false
	}
	return e.value, true
}

// Remove deletes key and returns the value it held.
func (m *Map) Remove(key Binary) (previous Binary, existed bool) {
	if key.IsNull() || m.busySlots == 0 {
		return Null, false
	}
	e := m.removeEntry(m.hash(key), key)
	if e == nil {
		return Null, false
	}
	return e.value, true
}

func (m *Map) removeEntry(hashValue uint64, key Binary) *entry {
	e := m.storage.unlink(hashValue, key)
	if e == nil {
		return nil
	}
	m.busySlots--
	m.modCount++
	return e
}

// ContainsKey reports whether key is present, also when it holds Null.
func (m *Map) ContainsKey(key Binary) bool {
	_, ok := m.Get(key)
	return ok
}

// ContainsValue scans the whole table. value may be Null.
func (m *Map) ContainsValue(value Binary) bool {
	return m.findValue(value) != nil
}

func (m *Map) findValue(value Binary) *entry {
	var found *entry
	m.storage.forEach(func(e *entry) bool {
		if e.value.Equal(value) {
			found = e
			return false
		}
		return true
	})
	return found
}

// Len is the number of entries.
func (m *Map) Len() int {
	return m.busySlots
}

// IsEmpty reports whether Len() is zero.
func (m *Map) IsEmpty() bool {
	return m.busySlots == 0
}

// Capacity is the current number of buckets.
func (m *Map) Capacity() int {
	return int(m.storage.size())
}

// Clear removes all entries. The bucket array keeps its size.
func (m *Map) Clear() {
	if m.busySlots == 0 {
		return
	}
	m.storage.reset()
	m.busySlots = 0
	m.modCount++
}

// PutAll puts every pair of src, in the order src yields them. It stops at
// the first failing Put; the pairs put before it stay in the map.
func (m *Map) PutAll(src Source) error {
	var err error
	src.ForEach(func(key, value Binary) bool {
		if _, _, err = m.Put(key, value); err != nil {
			err = fmt.Errorf("unable to put %v: %w", key, err)
			return false
		}
		return true
	})
	return err
}

// ForEach calls fn for every entry until fn returns false. fn may remove
// the entry it was called with, any other modification of the map makes
// the rest of the walk undefined.
func (m *Map) ForEach(fn func(key, value Binary) bool) {
	m.storage.forEach(func(e *entry) bool {
		return fn(e.key, e.value)
	})
}

// ToSTDMap converts to a builtin map keyed by the raw key bytes.
func (m *Map) ToSTDMap() map[string]Binary {
	r := make(map[string]Binary, m.busySlots)
	m.storage.forEach(func(e *entry) bool {
		r[string(e.key.value)] = e.value
		return true
	})
	return r
}

// FromSTDMap puts every pair of stdMap, growing the table once up front.
func (m *Map) FromSTDMap(stdMap map[string]Binary) {
	expectedSize := int(float64(m.busySlots+len(stdMap))/m.loadFactor) + 1
	if expectedSize > int(m.storage.size()) {
		m.growTo(expectedSize)
	}

	for k, v := range stdMap {
		// a string key never yields a Null Binary, so Put cannot fail
		_, _, _ = m.Put(BinaryFromString(k), v)
	}
}

// PutBytes copies key and value into Binaries and puts them. A nil value
// is stored as Null; a nil key fails with ErrNilBytes.
func (m *Map) PutBytes(key, value []byte) error {
	k, err := NewBinary(key)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	v := Null
	if value != nil {
		v = MustNewBinary(value)
	}
	_, _, err = m.Put(k, v)
	return err
}

// GetBytes returns a copy of the value under key; a stored Null comes back
// as (nil, true).
func (m *Map) GetBytes(key []byte) ([]byte, bool) {
	if key == nil {
		return nil, false
	}
	v, ok := m.Get(Binary{value: key})
	if !ok {
		return nil, false
	}
	return v.Bytes(), true
}

func (m *Map) RemoveBytes(key []byte) bool {
	if key == nil {
		return false
	}
	_, ok := m.Remove(Binary{value: key})
	return ok
}

// CheckConsistency walks the whole table and verifies the bookkeeping.
// It is meant for tests.
func (m *Map) CheckConsistency() error {
	if !utils.IsPowerOfTwo(int(m.storage.size())) {
		return fmt.Errorf("table size %d is not a power of two", m.storage.size())
	}
	count := 0
	for idx, head := range m.storage.buckets {
		for e := head; e != nil; e = e.next {
			count++
			if count > m.busySlots {
				return fmt.Errorf("found more entries than m.Len(): %v", m.busySlots)
			}
			if e.key.IsNull() {
				return fmt.Errorf("null key in bucket %d", idx)
			}
			if hashValue := m.hash(e.key); hashValue != e.hashValue {
				return fmt.Errorf("cached hash %x != %x for key %v", e.hashValue, hashValue, e.key)
			}
			if expectedIdx := m.storage.getIdx(e.hashValue); expectedIdx != uint64(idx) {
				return fmt.Errorf("entry with key %v is in bucket %d instead of %d", e.key, idx, expectedIdx)
			}
			for other := e.next; other != nil; other = other.next {
				if other.key.Equal(e.key) {
					return fmt.Errorf("duplicate key %v in bucket %d", e.key, idx)
				}
			}
		}
	}
	if count != m.busySlots {
		return fmt.Errorf("count != m.Len(): %v %v", count, m.busySlots)
	}
	return nil
}

// KeySet returns a live view of the keys.
func (m *Map) KeySet() *KeySet {
	return newKeySet(m)
}

// Values returns a live view of the values, one element per entry.
func (m *Map) Values() *ValueCollection {
	return newValueCollection(m)
}

// EntrySet returns a live view of the key/value pairs.
func (m *Map) EntrySet() *EntrySet {
	return newEntrySet(m)
}

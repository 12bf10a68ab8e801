package bohmap

import (
	"fmt"
)

// Entry is a key/value pair as seen through EntrySet.
type Entry struct {
	Key   Binary
	Value Binary
}

func (e Entry) Equal(other Entry) bool {
	return e.Key.Equal(other.Key) && e.Value.Equal(other.Value)
}

func (e Entry) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}

func entryKey(e *entry) Binary {
	return e.key
}

func entryValue(e *entry) Binary {
	return e.value
}

func entryPair(e *entry) Entry {
	return Entry{Key: e.key, Value: e.value}
}

// view is the collection surface shared by KeySet, ValueCollection and
// EntrySet. It never copies the map's data.
type view[T any] struct {
	m        *Map
	extract  func(e *entry) T
	equal    func(a, b T) bool
	contains func(x T) bool
	remove   func(x T) bool
}

func (v view[T]) Len() int {
	return v.m.Len()
}

func (v view[T]) IsEmpty() bool {
	return v.m.IsEmpty()
}

func (v view[T]) Contains(x T) bool {
	return v.contains(x)
}

func (v view[T]) ContainsAll(xs ...T) bool {
	for _, x := range xs {
		if !v.contains(x) {
			return false
		}
	}
	return true
}

// Remove deletes one matching entry from the map and reports whether
// anything was removed.
func (v view[T]) Remove(x T) bool {
	return v.remove(x)
}

// RemoveAll deletes every element equal to any of xs.
func (v view[T]) RemoveAll(xs ...T) bool {
	return v.removeIf(func(el T) bool {
		return v.in(el, xs)
	})
}

// RetainAll deletes every element not equal to any of xs.
func (v view[T]) RetainAll(xs ...T) bool {
	return v.removeIf(func(el T) bool {
		return !v.in(el, xs)
	})
}

func (v view[T]) in(el T, xs []T) bool {
	for _, x := range xs {
		if v.equal(el, x) {
			return true
		}
	}
	return false
}

// removeIf deletes through a fresh iterator which is the only mutator during
// the walk, and Remove follows each successful Next, so neither call can
// fail here.
func (v view[T]) removeIf(fn func(el T) bool) bool {
	changed := false
	it := v.Iterator()
	for it.HasNext() {
		el, err := it.Next()
		if err != nil {
			panic(err)
		}
		if !fn(el) {
			continue
		}
		if err := it.Remove(); err != nil {
			panic(err)
		}
		changed = true
	}
	return changed
}

// Clear empties the whole map.
func (v view[T]) Clear() {
	v.m.Clear()
}

func (v view[T]) Iterator() *Iterator[T] {
	return newIterator(v.m, v.extract)
}

// ToArray returns a snapshot of the elements.
func (v view[T]) ToArray() []T {
	return v.ToArrayInto(nil)
}

// ToArrayInto writes the elements into dst and returns dst[:Len()] when dst
// is long enough, otherwise a newly allocated slice.
func (v view[T]) ToArrayInto(dst []T) []T {
	n := v.m.Len()
	var r []T
	if len(dst) >= n {
		r = dst[:n]
	} else {
		r = make([]T, n)
	}
	i := 0
	v.m.storage.forEach(func(e *entry) bool {
		r[i] = v.extract(e)
		i++
		return true
	})
	return r
}

// KeySet is a live view of the keys of a Map.
type KeySet struct {
	view[Binary]
}

func newKeySet(m *Map) *KeySet {
	return &KeySet{view[Binary]{
		m:        m,
		extract:  entryKey,
		equal:    Binary.Equal,
		contains: m.ContainsKey,
		remove: func(key Binary) bool {
			_, ok := m.Remove(key)
			return ok
		},
	}}
}

// RemoveAll removes every key of keys which is present.
func (s *KeySet) RemoveAll(keys ...Binary) bool {
	changed := false
	for _, key := range keys {
		if s.remove(key) {
			changed = true
		}
	}
	return changed
}

// RetainAll removes every key which is not in keys.
func (s *KeySet) RetainAll(keys ...Binary) bool {
	keep := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if !key.IsNull() {
			keep[string(key.value)] = struct{}{}
		}
	}
	return s.removeIf(func(key Binary) bool {
		_, ok := keep[string(key.value)]
		return !ok
	})
}

// ValueCollection is a live view of the values of a Map. Values are not
// deduplicated: every entry contributes one element.
type ValueCollection struct {
	view[Binary]
}

func newValueCollection(m *Map) *ValueCollection {
	return &ValueCollection{view[Binary]{
		m:        m,
		extract:  entryValue,
		equal:    Binary.Equal,
		contains: m.ContainsValue,
		remove: func(value Binary) bool {
			e := m.findValue(value)
			if e == nil {
				return false
			}
			m.removeEntry(e.hashValue, e.key)
			return true
		},
	}}
}

// EntrySet is a live view of the key/value pairs of a Map.
type EntrySet struct {
	view[Entry]
}

func newEntrySet(m *Map) *EntrySet {
	contains := func(x Entry) bool {
		value, ok := m.Get(x.Key)
		return ok && value.Equal(x.Value)
	}
	return &EntrySet{view[Entry]{
		m:        m,
		extract:  entryPair,
		equal:    Entry.Equal,
		contains: contains,
		remove: func(x Entry) bool {
			if !contains(x) {
				return false
			}
			m.Remove(x.Key)
			return true
		},
	}}
}

// RemoveAll removes every entry matching one of entries.
func (s *EntrySet) RemoveAll(entries ...Entry) bool {
	changed := false
	for _, x := range entries {
		if s.remove(x) {
			changed = true
		}
	}
	return changed
}

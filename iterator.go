package bohmap

import (
	"github.com/xaionaro-go/bohmap/errors"
)

// Iterator walks the entries of a Map once, in bucket order. It is obtained
// from one of the views. Modifying the map other than through Remove makes
// the following Next and Remove fail with ErrConcurrentModification.
type Iterator[T any] struct {
	m                *Map
	extract          func(e *entry) T
	buckets          []*entry
	bucketIdx        int
	next             *entry
	last             *entry
	expectedModCount uint64
}

func newIterator[T any](m *Map, extract func(e *entry) T) *Iterator[T] {
	it := &Iterator[T]{
		m:                m,
		extract:          extract,
		buckets:          m.storage.buckets,
		bucketIdx:        -1,
		expectedModCount: m.modCount,
	}
	it.next = it.seek(nil)
	return it
}

// seek returns the entry following from, scanning forward to the next
// non-empty bucket when from is the last of its chain.
func (it *Iterator[T]) seek(from *entry) *entry {
	if from != nil && from.next != nil {
		return from.next
	}
	for it.bucketIdx++; it.bucketIdx < len(it.buckets); it.bucketIdx++ {
		if head := it.buckets[it.bucketIdx]; head != nil {
			return head
		}
	}
	return nil
}

func (it *Iterator[T]) HasNext() bool {
	return it.next != nil
}

// Next returns the following element or ErrIteratorExhausted past the end.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.m.modCount != it.expectedModCount {
		return zero, errors.ErrConcurrentModification
	}
	e := it.next
	if e == nil {
		return zero, errors.ErrIteratorExhausted
	}
	it.next = it.seek(e)
	it.last = e
	return it.extract(e), nil
}

// Remove deletes the entry of the element last returned by Next. It may be
// called once per Next.
func (it *Iterator[T]) Remove() error {
	if it.last == nil {
		return errors.ErrIllegalState
	}
	if it.m.modCount != it.expectedModCount {
		return errors.ErrConcurrentModification
	}
	it.m.removeEntry(it.last.hashValue, it.last.key)
	it.last = nil
	it.expectedModCount = it.m.modCount
	return nil
}

// ForEachRemaining calls fn for every element left until fn returns false.
func (it *Iterator[T]) ForEachRemaining(fn func(T) bool) error {
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if !fn(v) {
			return nil
		}
	}
	return nil
}

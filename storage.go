package bohmap

import (
	"github.com/xaionaro-go/bohmap/hasher"
)

// entry is one key/value association. Entries sharing a bucket form a
// singly linked chain through next.
type entry struct {
	hashValue uint64
	key       Binary
	value     Binary
	next      *entry
}

type storage struct {
	hasher  hasher.Hasher
	buckets []*entry
}

func newStorage(size int, hasher hasher.Hasher) *storage {
	return &storage{
		hasher:  hasher,
		buckets: make([]*entry, size),
	}
}

func (stor *storage) size() uint64 {
	if stor == nil {
		return 0
	}
	return uint64(len(stor.buckets))
}

func (stor *storage) getIdx(hashValue uint64) uint64 {
	return stor.hasher.CompressHash(stor.size(), hashValue)
}

func (stor *storage) find(hashValue uint64, key Binary) *entry {
	for e := stor.buckets[stor.getIdx(hashValue)]; e != nil; e = e.next {
		if e.hashValue == hashValue && e.key.Equal(key) {
			return e
		}
	}
	return nil
}

// insert either updates the entry with an equal key or links a new entry at
// the chain tail. The returned entry is nil when a new one was linked.
func (stor *storage) insert(hashValue uint64, key, value Binary) *entry {
	idx := stor.getIdx(hashValue)
	var last *entry
	for e := stor.buckets[idx]; e != nil; e = e.next {
		if e.hashValue == hashValue && e.key.Equal(key) {
			return e
		}
		last = e
	}
	newEntry := &entry{hashValue: hashValue, key: key, value: value}
	if last == nil {
		stor.buckets[idx] = newEntry
	} else {
		last.next = newEntry
	}
	return nil
}

// unlink removes the entry with an equal key. The unlinked entry keeps its
// next pointer so an iterator standing on it can still move forward.
func (stor *storage) unlink(hashValue uint64, key Binary) *entry {
	idx := stor.getIdx(hashValue)
	var prev *entry
	for e := stor.buckets[idx]; e != nil; prev, e = e, e.next {
		if e.hashValue != hashValue || !e.key.Equal(key) {
			continue
		}
		if prev == nil {
			stor.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		return e
	}
	return nil
}

// copyOldItemsAfterGrowing moves every entry of oldStorage into stor. Each
// old chain is walked with a loop and every entry is pushed onto the head
// of its new bucket, using the cached hash. Neither the chain length nor
// the table size affects stack depth.
func (stor *storage) copyOldItemsAfterGrowing(oldStorage *storage) {
	if oldStorage == nil {
		return
	}
	for i, head := range oldStorage.buckets {
		e := head
		for e != nil {
			next := e.next
			newIdx := stor.getIdx(e.hashValue)
			e.next = stor.buckets[newIdx]
			stor.buckets[newIdx] = e
			e = next
		}
		oldStorage.buckets[i] = nil
	}
}

func (stor *storage) reset() {
	for i := range stor.buckets {
		stor.buckets[i] = nil
	}
}

func (stor *storage) forEach(fn func(e *entry) bool) {
	for _, head := range stor.buckets {
		for e := head; e != nil; {
			next := e.next
			if !fn(e) {
				return
			}
			e = next
		}
	}
}

package bohmap

import (
	"bytes"
	"fmt"

	"github.com/xaionaro-go/bohmap/errors"
	"github.com/xaionaro-go/bohmap/hasher"
	"github.com/xaionaro-go/bohmap/utils"
)

// Binary is an immutable container of bytes with content based equality
// and hashing. The zero value is Null: it may be stored as a value, but it
// is never a valid key.
type Binary struct {
	value []byte
}

// Null is the "no bytes" value. Put(key, Null) stores a null value under
// key, which is different from key being absent.
var Null = Binary{}

// NewBinary copies value into a new Binary. A nil slice is rejected, an
// empty one is fine.
func NewBinary(value []byte) (Binary, error) {
	if value == nil {
		return Null, errors.ErrNilBytes
	}
	owned := make([]byte, len(value))
	copy(owned, value)
	return Binary{value: owned}, nil
}

// MustNewBinary is like NewBinary but panics on a nil slice.
func MustNewBinary(value []byte) Binary {
	b, err := NewBinary(value)
	if err != nil {
		panic(err)
	}
	return b
}

// BinaryFromString copies the bytes of s. An empty s gives an empty,
// non-null Binary.
func BinaryFromString(s string) Binary {
	value := make([]byte, len(s))
	copy(value, s)
	return Binary{value: value}
}

// BinaryFromInt64 encodes value as 8 big-endian bytes.
func BinaryFromInt64(value int64) Binary {
	return Binary{value: utils.Encode64(value)}
}

// BinaryFromInt32 encodes value as 4 big-endian bytes.
func BinaryFromInt32(value int32) Binary {
	return Binary{value: utils.Encode32(value)}
}

// IsNull reports whether b is Null, the zero Binary.
func (b Binary) IsNull() bool {
	return b.value == nil
}

// Bytes returns a copy of the contained bytes, nil for Null.
func (b Binary) Bytes() []byte {
	if b.value == nil {
		return nil
	}
	r := make([]byte, len(b.value))
	copy(r, b.value)
	return r
}

func (b Binary) Len() int {
	return len(b.value)
}

// Int64 decodes b as written by BinaryFromInt64; any length other than 8
// fails with ErrLengthMismatch.
func (b Binary) Int64() (int64, error) {
	return utils.Decode64(b.value)
}

func (b Binary) Int32() (int32, error) {
	return utils.Decode32(b.value)
}

// Equal reports whether both hold the same bytes. Null only equals Null.
func (b Binary) Equal(other Binary) bool {
	if b.IsNull() || other.IsNull() {
		return b.IsNull() == other.IsNull()
	}
	return bytes.Equal(b.value, other.value)
}

// Hash is a deterministic function of the contents; equal Binaries hash
// equally regardless of how they were built.
func (b Binary) Hash() uint64 {
	return hasher.Hash(b.value)
}

func (b Binary) String() string {
	if b.IsNull() {
		return "Binary{null}"
	}
	return fmt.Sprintf("Binary{value=size(%d)}", len(b.value))
}

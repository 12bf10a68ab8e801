package utils

import (
	"encoding/binary"
	"fmt"

	"github.com/xaionaro-go/bohmap/errors"
)

const (
	Int64Size = 8
	Int32Size = 4
)

// Encode64 returns value as 8 big-endian bytes.
func Encode64(value int64) []byte {
	b := make([]byte, Int64Size)
	binary.BigEndian.PutUint64(b, uint64(value))
	return b
}

// Decode64 is the inverse of Encode64. b must be exactly 8 bytes long.
func Decode64(b []byte) (int64, error) {
	if len(b) != Int64Size {
		return 0, fmt.Errorf("%w: expected %d bytes, got %d", errors.ErrLengthMismatch, Int64Size, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// Encode32 returns value as 4 big-endian bytes.
func Encode32(value int32) []byte {
	b := make([]byte, Int32Size)
	binary.BigEndian.PutUint32(b, uint32(value))
	return b
}

// Decode32 is the inverse of Encode32. b must be exactly 4 bytes long.
func Decode32(b []byte) (int32, error) {
	if len(b) != Int32Size {
		return 0, fmt.Errorf("%w: expected %d bytes, got %d", errors.ErrLengthMismatch, Int32Size, len(b))
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

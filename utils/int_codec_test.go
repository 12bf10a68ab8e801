package utils

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xaionaro-go/bohmap/errors"
)

func TestEncode64BigEndian(t *testing.T) {
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, Encode64(0x0102030405060708))
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, Encode64(-1))
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, Encode32(0x01020304))
}

func TestInt64RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 1 << 32, -(1 << 40)}
	for i := 0; i < 1000; i++ {
		values = append(values, int64(rand.Uint64()))
	}
	for _, value := range values {
		b := Encode64(value)
		require.Len(t, b, Int64Size)
		decoded, err := Decode64(b)
		require.NoError(t, err)
		require.Equal(t, value, decoded)
	}
}

func TestInt32RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, math.MaxInt32, math.MinInt32}
	for i := 0; i < 1000; i++ {
		values = append(values, int32(rand.Uint32()))
	}
	for _, value := range values {
		b := Encode32(value)
		require.Len(t, b, Int32Size)
		decoded, err := Decode32(b)
		require.NoError(t, err)
		require.Equal(t, value, decoded)
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	for _, b := range [][]byte{nil, {}, make([]byte, 4), make([]byte, 9)} {
		_, err := Decode64(b)
		require.ErrorIs(t, err, errors.ErrLengthMismatch)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
	}
	for _, b := range [][]byte{nil, {}, make([]byte, 3), make([]byte, 8)} {
		_, err := Decode32(b)
		require.ErrorIs(t, err, errors.ErrLengthMismatch)
	}
}

package cornelkHashmap

import (
	"github.com/cornelk/hashmap"

	I "github.com/xaionaro-go/bohmap/interfaces"
)

func New() I.ByteMap {
	return &hashmapWrapper{}
}
func NewWithArgs(blockSize uint64) I.ByteMap {
	return New()
}

type hashmapWrapper struct {
	hashmap.HashMap
}

func (m *hashmapWrapper) PutBytes(key, value []byte) error {
	m.HashMap.Set(string(key), append([]byte(nil), value...))
	return nil
}
func (m *hashmapWrapper) GetBytes(key []byte) ([]byte, bool) {
	v, ok := m.HashMap.Get(string(key))
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}
func (m *hashmapWrapper) RemoveBytes(key []byte) bool {
	k := string(key)
	if _, ok := m.HashMap.Get(k); !ok {
		return false
	}
	m.HashMap.Del(k)
	return true
}
func (m *hashmapWrapper) Len() int {
	return m.HashMap.Len()
}

package builtinSyncMap

import (
	"sync"

	I "github.com/xaionaro-go/bohmap/interfaces"
)

func NewWithArgs(blockSize uint64) I.ByteMap {
	return &builtinSyncMap{}
}

type builtinSyncMap struct {
	sync.Map
}

func (m *builtinSyncMap) PutBytes(key, value []byte) error {
	m.Map.Store(string(key), append([]byte(nil), value...))
	return nil
}
func (m *builtinSyncMap) GetBytes(key []byte) ([]byte, bool) {
	value, ok := m.Map.Load(string(key))
	if !ok {
		return nil, false
	}
	return value.([]byte), true
}
func (m *builtinSyncMap) RemoveBytes(key []byte) bool {
	_, ok := m.Map.LoadAndDelete(string(key))
	return ok
}
func (m *builtinSyncMap) Len() int {
	return -1
}

package builtinMap

import (
	I "github.com/xaionaro-go/bohmap/interfaces"
)

func NewWithArgs(blockSize uint64) I.ByteMap {
	return &builtinMap{
		m: make(map[string][]byte, blockSize),
	}
}

type builtinMap struct {
	m map[string][]byte
}

func (m *builtinMap) PutBytes(key, value []byte) error {
	m.m[string(key)] = append([]byte(nil), value...)
	return nil
}
func (m *builtinMap) GetBytes(key []byte) ([]byte, bool) {
	value, ok := m.m[string(key)]
	return value, ok
}
func (m *builtinMap) RemoveBytes(key []byte) bool {
	_, ok := m.m[string(key)]
	delete(m.m, string(key))
	return ok
}
func (m *builtinMap) Len() int {
	return len(m.m)
}

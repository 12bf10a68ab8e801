package benchmarkRoutines

import (
	"encoding/binary"
	"math/rand"

	I "github.com/xaionaro-go/bohmap/interfaces"
)

type mapFactoryFunc func(blockSize uint64) I.ByteMap

// generateKeys returns keyAmount distinct random keys. keyType "int" yields
// 8-byte big-endian integers, "string" yields 16-byte random strings.
func generateKeys(keyAmount uint64, keyType string) [][]byte {
	resultMap := map[string]bool{}
	result := make([][]byte, 0, keyAmount)
	for uint64(len(result)) < keyAmount {
		var newKey []byte
		switch keyType {
		case "int":
			newKey = make([]byte, 8)
			binary.BigEndian.PutUint64(newKey, rand.Uint64())
		case "string":
			newKey = make([]byte, 16)
			rand.Read(newKey)
		default:
			panic("Unknown key type: " + keyType)
		}
		if resultMap[string(newKey)] {
			continue
		}
		resultMap[string(newKey)] = true
		result = append(result, newKey)
	}
	return result
}

// GenerateKeys is generateKeys for tests of other packages.
func GenerateKeys(keyAmount uint64, keyType string) [][]byte {
	return generateKeys(keyAmount, keyType)
}

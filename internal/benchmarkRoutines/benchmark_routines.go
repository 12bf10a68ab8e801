package benchmarkRoutines

import (
	"testing"
)

func DoBenchmarkOfPut(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)

	currentCount := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.PutBytes(keys[currentCount], keys[currentCount])
		currentCount++
		if currentCount >= keyAmount {
			b.StopTimer()
			m = factoryFunc(blockSize)
			currentCount = 0
			b.StartTimer()
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfRePut(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.PutBytes(keys[i], keys[i])
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.PutBytes(keys[currentIdx], keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGet(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.PutBytes(keys[i], keys[i])
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.GetBytes(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGetMiss(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.GetBytes(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfRemove(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)
	keys := generateKeys(keyAmount, keyType)

	currentIdx := uint64(0)
	for i := 0; i < b.N; i++ {
		if currentIdx == 0 {
			b.StopTimer()
			for j := uint64(0); j < keyAmount; j++ {
				m.PutBytes(keys[j], keys[j])
			}
			b.StartTimer()
		}

		m.RemoveBytes(keys[currentIdx])

		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

// DoBenchmarkOfChurn keeps keyAmount/2 keys live: every iteration puts one
// key and removes the one put keyAmount/2 iterations earlier. Maps that
// never shrink keep their grown table; ones which do pay for it here.
func DoBenchmarkOfChurn(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)
	keys := generateKeys(keyAmount, keyType)
	window := keyAmount / 2
	for i := uint64(0); i < window; i++ {
		m.PutBytes(keys[i], keys[i])
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		idx := (uint64(i) + window) % keyAmount
		m.PutBytes(keys[idx], keys[idx])
		m.RemoveBytes(keys[uint64(i)%keyAmount])
	}
	b.StopTimer()
}

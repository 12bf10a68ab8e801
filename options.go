package bohmap

import (
	"math"

	"github.com/xaionaro-go/bohmap/hasher"
)

const (
	defaultLoadFactor = 0.75
)

// Option configures a Map while it is being created.
type Option interface {
	apply(m *Map)
}

type hasherOption struct {
	hasher hasher.Hasher
}

func (op hasherOption) apply(m *Map) {
	if op.hasher == nil {
		log.Warningf("nil hasher passed to WithHasher, keeping the default one")
		return
	}
	m.hasher = op.hasher
}

// WithHasher sets the function used to hash keys. The default is
// hasher.New().
func WithHasher(hasher hasher.Hasher) Option {
	return hasherOption{hasher}
}

type loadFactorOption struct {
	loadFactor float64
}

func (op loadFactorOption) apply(m *Map) {
	if op.loadFactor <= 0 || math.IsNaN(op.loadFactor) || math.IsInf(op.loadFactor, 0) {
		log.Warningf("invalid load factor: %v. Setting to %v", op.loadFactor, defaultLoadFactor)
		return
	}
	m.loadFactor = op.loadFactor
}

// WithLoadFactor sets the occupancy ratio (entries per bucket) above which
// the table doubles. The default is 0.75.
func WithLoadFactor(loadFactor float64) Option {
	return loadFactorOption{loadFactor}
}

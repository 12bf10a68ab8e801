package bohmap

import (
	"github.com/xaionaro-go/bohmap/errors"
)

var (
	ErrInvalidArgument        = errors.ErrInvalidArgument
	ErrNilBytes               = errors.ErrNilBytes
	ErrNullKey                = errors.ErrNullKey
	ErrLengthMismatch         = errors.ErrLengthMismatch
	ErrIteratorExhausted      = errors.ErrIteratorExhausted
	ErrIllegalState           = errors.ErrIllegalState
	ErrConcurrentModification = errors.ErrConcurrentModification
)

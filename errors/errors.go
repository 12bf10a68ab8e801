package errors

import (
	"fmt"
)

var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	ErrNilBytes       = fmt.Errorf("%w: bytes are nil", ErrInvalidArgument)
	ErrNullKey        = fmt.Errorf("%w: key is null", ErrInvalidArgument)
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrInvalidArgument)

	ErrIteratorExhausted      = fmt.Errorf("iterator has no more elements")
	ErrIllegalState           = fmt.Errorf("illegal iterator state")
	ErrConcurrentModification = fmt.Errorf("map was modified outside of the iterator")
)

package linearblock

import (
	"errors"
	"fmt"
)

var (
	//ErrDimensionMismatch is returned when a codeword, LLR vector or row does not match the dimensions of H.
	ErrDimensionMismatch = errors.New("linearblock: dimension mismatch")

	//ErrIndexOutOfRange is returned for a check or bit index outside of H. It is also an ErrDimensionMismatch.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrDimensionMismatch)

	//ErrNotBinary is returned when a matrix entry or codeword symbol is not 0 or 1.
	ErrNotBinary = errors.New("linearblock: value must be 0 or 1")

	//ErrInvalidShape is returned when a matrix is requested with a non-positive number of checks or bits.
	ErrInvalidShape = errors.New("linearblock: checks and bits must be > 0")

	//ErrEmptyCheck marks a check row without any participating bits.
	ErrEmptyCheck = errors.New("linearblock: check has no participating bits")

	//ErrRankDeficient is returned when no generator can be derived from H.
	ErrRankDeficient = errors.New("linearblock: unable to derive a generator from H")
)

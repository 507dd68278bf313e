package bec

import (
	"fmt"

	"github.com/nathanhack/ldpc/linearblock"
	mat "github.com/nathanhack/sparsemat"
)

type ErasureBit int

const (
	Zero ErasureBit = iota
	One
	Erased
)

func (e ErasureBit) String() string {
	switch e {
	case Zero:
		return "0"
	case One:
		return "1"
	case Erased:
		return "?"
	}
	return fmt.Sprintf("ErasureBit(%d)", int(e))
}

type BECFlippingAlg interface {
	Flip(currentCodeword []ErasureBit) (nextCodeword []ErasureBit, done bool)
}

//Flipping runs alg until it is done. The codeword is not modified, resolved reports
// whether every erasure was filled in.
func Flipping(alg BECFlippingAlg, H *linearblock.ParityCheckMatrix, codeword []ErasureBit) (result []ErasureBit, resolved bool, err error) {
	if err = linearblock.CheckLength(H, len(codeword)); err != nil {
		return nil, false, err
	}
	for i, b := range codeword {
		if b < Zero || Erased < b {
			return nil, false, fmt.Errorf("%w: found %v at bit %v", linearblock.ErrNotBinary, int(b), i)
		}
	}

	done := false
	result = make([]ErasureBit, len(codeword))
	copy(result, codeword)
	for !done {
		result, done = alg.Flip(result)
	}
	return result, Erasures(result) == 0, nil
}

//Erasures counts the erased bits.
func Erasures(codeword []ErasureBit) int {
	count := 0
	for _, b := range codeword {
		if b == Erased {
			count++
		}
	}
	return count
}

//FromVector converts a codeword to erasure bits with the given indices erased.
func FromVector(codeword mat.SparseVector, erased []int) []ErasureBit {
	result := make([]ErasureBit, codeword.Len())
	for _, i := range codeword.NonzeroArray() {
		result[i] = One
	}
	for _, i := range erased {
		result[i] = Erased
	}
	return result
}

//ToVector converts a fully resolved codeword back to a vector.
func ToVector(codeword []ErasureBit) (mat.SparseVector, error) {
	result := mat.CSRVec(len(codeword))
	for i, b := range codeword {
		switch b {
		case Zero:
		case One:
			result.Set(i, 1)
		default:
			return nil, fmt.Errorf("bit %v is not resolved", i)
		}
	}
	return result, nil
}

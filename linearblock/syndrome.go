package linearblock

import (
	"fmt"

	mat "github.com/nathanhack/sparsemat"
)

//Bits copies a vector into a slice of 0s and 1s.
func Bits(v mat.SparseVector) []int {
	bits := make([]int, v.Len())
	for _, i := range v.NonzeroArray() {
		bits[i] = 1
	}
	return bits
}

//Vector creates a vector from a slice of bits; any nonzero value is a 1.
func Vector(bits []int) mat.SparseVector {
	v := mat.CSRVec(len(bits))
	for i, b := range bits {
		if b != 0 {
			v.Set(i, 1)
		}
	}
	return v
}

//CheckBits returns an ErrNotBinary if any symbol is not 0 or 1.
func CheckBits(bits []int) error {
	for i, b := range bits {
		if b != 0 && b != 1 {
			return fmt.Errorf("%w: found %v at bit %v", ErrNotBinary, b, i)
		}
	}
	return nil
}

//CheckLength returns an ErrDimensionMismatch when length is not the codeword length of H.
func CheckLength(H *ParityCheckMatrix, length int) error {
	if length != H.Bits() {
		return fmt.Errorf("%w: codeword length == %v required but found %v", ErrDimensionMismatch, H.Bits(), length)
	}
	return nil
}

func parities(t Tanner, bits []int) []int {
	syndrome := make([]int, len(t.CheckToBits))
	for i, row := range t.CheckToBits {
		parity := 0
		for _, j := range row {
			parity ^= bits[j]
		}
		syndrome[i] = parity
	}
	return syndrome
}

//Syndrome computes H*x mod 2.
func Syndrome(H *ParityCheckMatrix, codeword mat.SparseVector) (mat.SparseVector, error) {
	if err := CheckLength(H, codeword.Len()); err != nil {
		return nil, err
	}
	return Vector(parities(H.Tanner(), Bits(codeword))), nil
}

//SyndromeBits is Syndrome for a slice of 0s and 1s.
func SyndromeBits(H *ParityCheckMatrix, bits []int) ([]int, error) {
	if err := checkWord(H, bits); err != nil {
		return nil, err
	}
	return parities(H.tanner, bits), nil
}

func checkWord(H *ParityCheckMatrix, bits []int) error {
	if err := CheckLength(H, len(bits)); err != nil {
		return err
	}
	return CheckBits(bits)
}

//SyndromeWeight returns the number of unsatisfied checks.
func SyndromeWeight(H *ParityCheckMatrix, codeword mat.SparseVector) (int, error) {
	return SyndromeWeightBits(H, Bits(codeword))
}

//SyndromeWeightBits is SyndromeWeight for a slice of 0s and 1s.
func SyndromeWeightBits(H *ParityCheckMatrix, bits []int) (int, error) {
	if err := checkWord(H, bits); err != nil {
		return 0, err
	}
	weight := 0
	for _, s := range parities(H.Tanner(), bits) {
		weight += s
	}
	return weight, nil
}

//IsValid reports whether every check of H is satisfied by the codeword (zero syndrome).
func IsValid(H *ParityCheckMatrix, codeword mat.SparseVector) (bool, error) {
	return IsValidBits(H, Bits(codeword))
}

//IsValidBits is IsValid for a slice of 0s and 1s. It stops at the first unsatisfied check.
func IsValidBits(H *ParityCheckMatrix, bits []int) (bool, error) {
	if err := checkWord(H, bits); err != nil {
		return false, err
	}
	for _, row := range H.tanner.CheckToBits {
		parity := 0
		for _, j := range row {
			parity ^= bits[j]
		}
		if parity != 0 {
			return false, nil
		}
	}
	return true, nil
}

package benchmarking

import (
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bec"
	mat "github.com/nathanhack/sparsemat"
	mat2 "gonum.org/v1/gonum/mat"
)

//BitsToBPSK converts a [0,1] vector to a [-1,1] vector
func BitsToBPSK(a mat.SparseVector) *mat2.VecDense {
	output := mat2.NewVecDense(a.Len(), nil)

	for i := 0; i < a.Len(); i++ {
		if a.At(i) > 0 {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

//BPSKToBits converts a BPSK vector [-1,1] to sparse vector [0,1].
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) mat.SparseVector {
	result := mat.CSRVec(a.Len())

	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) >= boundary {
			result.Set(i, 1)
		}
	}
	return result
}

//BPSKToLLR converts a received BPSK vector to log likelihood ratios log(P(0)/P(1)).
// A 1 is sent as +1 so the ratio is -2y/σ^2.
func BPSKToLLR(received mat2.Vector, E_bPerN_0 float64) *mat2.VecDense {
	σ := Sigma(E_bPerN_0)
	llr := mat2.NewVecDense(received.Len(), nil)
	llr.ScaleVec(-2/(σ*σ), received)
	return llr
}

//HammingDistanceBPSK calculates number of bits different.
// Assumes >=0 is 1 and <0 is 0
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistanceBPSK(a, b mat2.Vector) int {
	min := a.Len()
	max := b.Len()
	if min > max {
		min = b.Len()
		max = a.Len()
	}

	count := 0
	for i := 0; i < min; i++ {
		aOne := a.AtVec(i) >= 0
		bOne := b.AtVec(i) >= 0
		if aOne != bOne {
			count++
		}
	}
	return max - min + count
}

//Metrics returns the BSC metrics of the linear block l: the fraction of codeword,
// message and parity bits that differ from the original.
func Metrics(l *linearblock.LinearBlock) BinarySymmetricChannelMetrics {
	return func(originalMessage, originalCodeword, fixedChannelInducedCodeword mat.SparseVector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		codewordErrors := originalCodeword.HammingDistance(fixedChannelInducedCodeword)
		message := l.Decode(fixedChannelInducedCodeword)
		messageErrors := message.HammingDistance(originalMessage)
		parityErrors := codewordErrors - messageErrors

		percentFixedCodewordErrors = float64(codewordErrors) / float64(l.CodewordLength())
		percentFixedMessageErrors = float64(messageErrors) / float64(l.MessageLength())
		percentFixedParityErrors = float64(parityErrors) / float64(l.ParitySymbols())
		return
	}
}

//ErasureMetrics returns the BEC metrics of the linear block l: the fraction of codeword,
// message and parity bits still erased.
func ErasureMetrics(l *linearblock.LinearBlock) BinaryErasureChannelMetrics {
	return func(originalMessage mat.SparseVector, originalCodeword, fixedChannelInducedCodeword []bec.ErasureBit) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		codewordErrors := bec.Erasures(fixedChannelInducedCodeword)
		messageErrors := 0
		for _, i := range l.Processing.HColumnOrder[:l.MessageLength()] {
			if fixedChannelInducedCodeword[i] == bec.Erased {
				messageErrors++
			}
		}
		parityErrors := codewordErrors - messageErrors

		percentFixedCodewordErrors = float64(codewordErrors) / float64(l.CodewordLength())
		percentFixedMessageErrors = float64(messageErrors) / float64(l.MessageLength())
		percentFixedParityErrors = float64(parityErrors) / float64(l.ParitySymbols())
		return
	}
}

//BPSKMetrics returns the BPSK metrics of the linear block l, using 0 as the decision boundary.
func BPSKMetrics(l *linearblock.LinearBlock) BPSKChannelMetrics {
	bits := Metrics(l)
	return func(originalMessage mat.SparseVector, originalCodeword, fixedChannelInducedCodeword mat2.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		return bits(originalMessage, BPSKToBits(originalCodeword, 0), BPSKToBits(fixedChannelInducedCodeword, 0))
	}
}

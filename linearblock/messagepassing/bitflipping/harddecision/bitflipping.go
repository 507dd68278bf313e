package harddecision

import (
	"github.com/nathanhack/ldpc/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//DefaultIterations is the iteration budget used when a non-positive maxIter is given.
const DefaultIterations = 10

//BitFlippingAlg chooses which bits to flip from the current syndrome.
type BitFlippingAlg interface {
	//Reset prepares the alg for a new received word, received must not be modified.
	Reset(received []int)
	//Flip flips bits in place and returns the flipped positions, none ends decoding.
	Flip(syndrome []int, bits []int) (flipped []int)
}

//BitFlipping runs the bitFlippingAlg until the syndrome is zero, the alg stops
// flipping or maxIter iterations have passed.
// The codeword is not modified, converged reports a zero syndrome for the result.
func BitFlipping(bitFlippingAlg BitFlippingAlg, H *linearblock.ParityCheckMatrix, codeword mat.SparseVector, maxIter int) (result mat.SparseVector, converged bool, err error) {
	if err = linearblock.CheckLength(H, codeword.Len()); err != nil {
		return nil, false, err
	}
	if maxIter <= 0 {
		maxIter = DefaultIterations
	}

	bits := linearblock.Bits(codeword)
	bitFlippingAlg.Reset(linearblock.Bits(codeword))

	flips, iter := 0, 0
	for ; iter < maxIter; iter++ {
		syndrome, err := linearblock.SyndromeBits(H, bits)
		if err != nil {
			return nil, false, err
		}
		if unsatisfied(syndrome) == 0 {
			break
		}

		flipped := bitFlippingAlg.Flip(syndrome, bits)
		if len(flipped) == 0 {
			break
		}
		flips += len(flipped)
	}

	converged, err = linearblock.IsValidBits(H, bits)
	if err != nil {
		return nil, false, err
	}
	logrus.Debugf("bit flipping: %v flips in %v iterations, converged: %v", flips, iter, converged)
	return linearblock.Vector(bits), converged, nil
}

func unsatisfied(syndrome []int) int {
	count := 0
	for _, s := range syndrome {
		count += s
	}
	return count
}

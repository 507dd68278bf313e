package harddecision

import (
	"github.com/nathanhack/ldpc/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//RowFlip is the row majority bit flipping decoder. Every iteration visits the checks in
// row order and, for each unsatisfied check, flips all of its bits. Later checks see the
// bits flipped by earlier checks of the same pass. All maxIter iterations are always run,
// so the result may oscillate between invalid vectors. The codeword is not modified.
func RowFlip(H *linearblock.ParityCheckMatrix, codeword mat.SparseVector, maxIter int) (result mat.SparseVector, converged bool, err error) {
	if err = linearblock.CheckLength(H, codeword.Len()); err != nil {
		return nil, false, err
	}
	if maxIter <= 0 {
		maxIter = DefaultIterations
	}

	bits := linearblock.Bits(codeword)
	rows := H.Tanner().CheckToBits
	flips := 0
	for iter := 0; iter < maxIter; iter++ {
		for _, row := range rows {
			parity := 0
			for _, j := range row {
				parity ^= bits[j]
			}
			if parity == 0 {
				continue
			}
			for _, j := range row {
				bits[j] ^= 1
			}
			flips++
		}
	}

	converged, err = linearblock.IsValidBits(H, bits)
	if err != nil {
		return nil, false, err
	}
	logrus.Debugf("row flip: %v row flips in %v iterations, converged: %v", flips, maxIter, converged)
	return linearblock.Vector(bits), converged, nil
}

package softdecision

import (
	"fmt"
	"math"

	"github.com/nathanhack/ldpc/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	mat2 "gonum.org/v1/gonum/mat"
)

//DefaultIterations is the iteration budget used when a non-positive maxIter is given.
const DefaultIterations = 30

//AtanhClamp bounds the argument of atanh so check messages stay finite.
const AtanhClamp = 1 - 1e-12

//SumProduct is the belief propagation decoder seeded from hard bits: every bit
// that is 1 starts with a message of 0.0 and every bit that is 0 starts with 1.0.
// A codeword that already satisfies H is returned as is. If no valid codeword is
// found within maxIter iterations a copy of the received codeword is returned with
// converged == false. The codeword is not modified.
func SumProduct(H *linearblock.ParityCheckMatrix, codeword mat.SparseVector, maxIter int) (result mat.SparseVector, converged bool, err error) {
	if err = linearblock.CheckLength(H, codeword.Len()); err != nil {
		return nil, false, err
	}

	bits := linearblock.Bits(codeword)
	if valid, _ := linearblock.IsValidBits(H, bits); valid {
		return mat.CSRVecCopy(codeword), true, nil
	}

	seed := make([]float64, len(bits))
	for i, b := range bits {
		if b == 0 {
			seed[i] = 1
		}
	}

	decision, converged := propagate(H, seed, maxIter)
	if !converged {
		return mat.CSRVecCopy(codeword), false, nil
	}
	return linearblock.Vector(decision), true, nil
}

//SumProductLLR is SumProduct seeded with channel log likelihood ratios,
// log(P(0)/P(1)) so a positive value favours 0. If no valid codeword is found
// within maxIter iterations the hard decision of the llr is returned with
// converged == false.
func SumProductLLR(H *linearblock.ParityCheckMatrix, llr mat2.Vector, maxIter int) (result mat.SparseVector, converged bool, err error) {
	if err = linearblock.CheckLength(H, llr.Len()); err != nil {
		return nil, false, err
	}

	seed := make([]float64, llr.Len())
	hard := make([]int, llr.Len())
	for i := range seed {
		seed[i] = llr.AtVec(i)
		if math.IsNaN(seed[i]) {
			return nil, false, fmt.Errorf("llr at %v is NaN", i)
		}
		if seed[i] < 0 {
			hard[i] = 1
		}
	}
	if valid, _ := linearblock.IsValidBits(H, hard); valid {
		return linearblock.Vector(hard), true, nil
	}

	decision, converged := propagate(H, seed, maxIter)
	if !converged {
		return linearblock.Vector(hard), false, nil
	}
	return linearblock.Vector(decision), true, nil
}

func propagate(H *linearblock.ParityCheckMatrix, seed []float64, maxIter int) ([]int, bool) {
	if maxIter <= 0 {
		maxIter = DefaultIterations
	}

	g := newGraph(H.Tanner())
	m := newMessages(g, seed)
	decision := make([]int, len(seed))
	for iter := 0; iter < maxIter; iter++ {
		m.updateChecks(g)
		m.updateBits(g, seed, decision)

		if valid, _ := linearblock.IsValidBits(H, decision); valid {
			logrus.Debugf("sum product converged after %v iterations (%v clamped messages)", iter+1, m.clamped)
			return decision, true
		}
	}
	logrus.Debugf("sum product did not converge in %v iterations (%v clamped messages)", maxIter, m.clamped)
	return nil, false
}

package internal

import (
	"context"
	"fmt"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//NewFromH creates the systematic generator G for H.
//
// H is reduced to [I, A], the columns are then rotated to [A, I] (tracked in
// HColumnOrder) and G=[I, A^T]. A codeword c' = m*G is in the rotated column
// order, position p of c' belongs to column HColumnOrder[p] of H. The message
// occupies the first k = n - rank(H) positions.
func NewFromH(ctx context.Context, checkToBits [][]int, bits int, showProgressBar bool) (HColumnOrder []int, G mat.SparseMat, err error) {
	logrus.Debugf("Creating generator matrix from H matrix")
	reduced, order, rank, err := GaussianJordanEliminationGF2(ctx, checkToBits, bits, showProgressBar)
	if err != nil {
		return nil, nil, err
	}

	k := bits - rank
	if rank == 0 || k <= 0 {
		return nil, nil, fmt.Errorf("rank %v of H leaves no message bits for codeword length %v", rank, bits)
	}

	//the keeping track part, [I, A] -> [A, I]
	HColumnOrder = make([]int, bits)
	copy(HColumnOrder[0:k], order[rank:bits])
	copy(HColumnOrder[k:bits], order[0:rank])

	//G=[I, A^T] where A^T is the transpose of A
	G = mat.CSRMat(k, bits)
	for i := 0; i < k; i++ {
		G.Set(i, i, 1)
		for p := 0; p < rank; p++ {
			if reduced[p][rank+i] == 1 {
				G.Set(i, k+p, 1)
			}
		}
	}

	logrus.Debugf("Generator Matrix complete: k=%v n=%v", k, bits)
	return HColumnOrder, G, nil
}

//ValidateHGMatrices tests if G*H^T == 0 where the columns of H are taken in HColumnOrder.
func ValidateHGMatrices(G mat.SparseMat, checkToBits [][]int, HColumnOrder []int) bool {
	rows, cols := G.Dims()
	if cols != len(HColumnOrder) {
		return false
	}

	position := make([]int, len(HColumnOrder))
	for p, c := range HColumnOrder {
		position[c] = p
	}

	for i := 0; i < rows; i++ {
		row := make(map[int]bool)
		for _, p := range G.Row(i).NonzeroArray() {
			row[p] = true
		}
		for _, check := range checkToBits {
			parity := 0
			for _, c := range check {
				if row[position[c]] {
					parity ^= 1
				}
			}
			if parity != 0 {
				return false
			}
		}
	}
	return true
}

package sumproduct

import (
	"github.com/nathanhack/ldpc/benchmarking"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bsc"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/softdecision"
	mat "github.com/nathanhack/sparsemat"
)

const typeInfo = "BSC:softdecision/SumProduct"

var SumProductRun = bsc.Command(typeInfo, correction)

func correction(l *linearblock.LinearBlock, maxIter int) benchmarking.BinarySymmetricChannelCorrection {
	return func(originalCodeword, channelInducedCodeword mat.SparseVector) (fixedChannelInducedCodeword mat.SparseVector) {
		fixed, _, err := softdecision.SumProduct(l.H, channelInducedCodeword, maxIter)
		if err != nil {
			panic(err)
		}
		return fixed
	}
}

package gallager

import (
	"fmt"
	"reflect"

	"github.com/nathanhack/ldpc/benchmarking"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bsc"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bitflipping/harddecision"
	mat "github.com/nathanhack/sparsemat"
)

var GallagerRun = bsc.Command(typeInfo(), correction)

func typeInfo() string {
	t := reflect.TypeOf(harddecision.Gallager{})
	return fmt.Sprintf("BSC:%v/%v", t.PkgPath(), t.Name())
}

func correction(l *linearblock.LinearBlock, maxIter int) benchmarking.BinarySymmetricChannelCorrection {
	return func(originalCodeword, channelInducedCodeword mat.SparseVector) (fixedChannelInducedCodeword mat.SparseVector) {
		//Gallager keeps per codeword state so every trial gets its own
		alg := &harddecision.Gallager{
			H: l.H,
		}
		fixed, _, err := harddecision.BitFlipping(alg, l.H, channelInducedCodeword, maxIter)
		if err != nil {
			panic(err)
		}
		return fixed
	}
}

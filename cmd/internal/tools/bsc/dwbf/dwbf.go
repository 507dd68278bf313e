package dwbf

import (
	"fmt"
	"reflect"

	"github.com/nathanhack/ldpc/benchmarking"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bsc"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bitflipping/harddecision"
	mat "github.com/nathanhack/sparsemat"
)

var (
	Alpha        float64
	EtaThreshold float64
)

var DwbfRun = bsc.Command(typeInfo(), correction)

func typeInfo() string {
	t := reflect.TypeOf(harddecision.DWBF{})
	return fmt.Sprintf("BSC:%v/%v", t.PkgPath(), t.Name())
}

//correction runs DWBF on the hard channel output, every bit weighs the same.
func correction(l *linearblock.LinearBlock, maxIter int) benchmarking.BinarySymmetricChannelCorrection {
	return func(originalCodeword, channelInducedCodeword mat.SparseVector) (fixedChannelInducedCodeword mat.SparseVector) {
		//since this is parallel there is no way to isolate data from one codeword from the next
		// this alg has internal state
		alg := &harddecision.DWBF{
			H:            l.H,
			AlphaFactor:  Alpha,
			EtaThreshold: EtaThreshold,
		}
		fixed, _, err := harddecision.BitFlipping(alg, l.H, channelInducedCodeword, maxIter)
		if err != nil {
			panic(err)
		}
		return fixed
	}
}

package decode

import (
	"fmt"
	"strings"

	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bitflipping/harddecision"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/softdecision"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
)

var (
	Alg          string
	Iters        int
	Alpha        = 0.5
	EtaThreshold float64
)

//Result of a single decode.
type Result struct {
	Bits           []int
	Converged      bool
	SyndromeWeight int
}

func (r Result) String() string {
	buf := strings.Builder{}
	for _, b := range r.Bits {
		buf.WriteByte(byte('0' + b))
	}
	return fmt.Sprintf("%v converged: %v syndrome weight: %v", buf.String(), r.Converged, r.SyndromeWeight)
}

//ParseBits reads a string of 0s and 1s, commas and spaces are ignored.
func ParseBits(s string) ([]int, error) {
	bits := make([]int, 0, len(s))
	for _, r := range s {
		switch r {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		case ',', ' ', '\t':
		default:
			return nil, fmt.Errorf("%w: found %q", linearblock.ErrNotBinary, r)
		}
	}
	return bits, nil
}

//Decode runs the named decoder on bits.
func Decode(H *linearblock.ParityCheckMatrix, bits []int, alg string, maxIter int) (Result, error) {
	if err := linearblock.CheckBits(bits); err != nil {
		return Result{}, err
	}
	codeword := linearblock.Vector(bits)

	var result mat.SparseVector
	var converged bool
	var err error
	switch alg {
	case "rowflip":
		result, converged, err = harddecision.RowFlip(H, codeword, maxIter)
	case "gallager":
		result, converged, err = harddecision.BitFlipping(&harddecision.Gallager{H: H}, H, codeword, maxIter)
	case "dwbf":
		alg := &harddecision.DWBF{H: H, AlphaFactor: Alpha, EtaThreshold: EtaThreshold}
		result, converged, err = harddecision.BitFlipping(alg, H, codeword, maxIter)
	case "sumproduct":
		result, converged, err = softdecision.SumProduct(H, codeword, maxIter)
	default:
		return Result{}, fmt.Errorf("unknown algorithm %q, expected rowflip, gallager, dwbf or sumproduct", alg)
	}
	if err != nil {
		return Result{}, err
	}

	weight, err := linearblock.SyndromeWeight(H, result)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Bits:           linearblock.Bits(result),
		Converged:      converged,
		SyndromeWeight: weight,
	}, nil
}

var DecodeRun = func(cmd *cobra.Command, args []string) {
	lb, err := linearblock.LoadFile(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	bits, err := ParseBits(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}

	result, err := Decode(lb.H, bits, Alg, Iters)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result)
}

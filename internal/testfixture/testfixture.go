//Package testfixture holds the small codes shared by the decoder tests.
package testfixture

import (
	_ "embed"

	"github.com/nathanhack/ldpc/linearblock"
)

//go:embed fixture6x12.yaml
var fixture6x12 []byte

//Codeword6x12 satisfies every check of H6x12.
var Codeword6x12 = []int{0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1}

//Received6x12 fails four checks of H6x12 and is the reference input for the row flip decoder.
var Received6x12 = []int{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0}

//H6x12 returns a new copy of the 6x12 parity check matrix.
func H6x12() *linearblock.ParityCheckMatrix {
	H, err := linearblock.ParseYAML(fixture6x12)
	if err != nil {
		panic(err)
	}
	return H
}

//YAML returns the definition of H6x12 as written on disk.
func YAML() []byte {
	return append([]byte{}, fixture6x12...)
}

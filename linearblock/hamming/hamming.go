package hamming

import (
	"context"

	"github.com/nathanhack/ldpc/linearblock"
)

// New creates the systematic hamming code with paritySymbols number of parity symbols.
// Hamming codes can detect up to two-bit errors or correct one-bit errors without
// detection of uncorrected errors.
func New(ctx context.Context, paritySymbols int) (*linearblock.LinearBlock, error) {
	H, err := ParityCheck(paritySymbols)
	if err != nil {
		return nil, err
	}
	return linearblock.New(ctx, H, false)
}

// ParityCheck creates the (2^p-1) column H of the hamming code with p parity symbols.
func ParityCheck(paritySymbols int) (*linearblock.ParityCheckMatrix, error) {
	if paritySymbols < 3 {
		panic("hamming codes require >=3 parity symbols")
	}
	n := 1<<paritySymbols - 1
	H, err := linearblock.NewParityCheckMatrix(paritySymbols, n)
	if err != nil {
		return nil, err
	}

	//To make Hamming codes we make the columns the bit versions
	// of every number from 1 to and including n -> [1,n] (note they're nonzero)
	for i := 1; i <= n; i++ {
		for j := 0; j < paritySymbols; j++ {
			if i&(1<<j) > 0 {
				if err := H.Set(j, i-1, 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return H, nil
}

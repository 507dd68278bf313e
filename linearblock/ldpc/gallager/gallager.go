package gallager

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/nathanhack/ldpc/linearblock"
	"github.com/sirupsen/logrus"
)

//Search creates a (wc,wr) regular Gallager LDPC code with m checks, a column weight (wc) and row weight (wr).
// The first m/wc checks are a fixed band, every other band is a random column permutation of it drawn from rng.
// A band is only kept if no cycle shorter than smallestCycleAllowed appears, at most maxIter bands are drawn.
func Search(ctx context.Context, rng *rand.Rand, m, wc, wr, smallestCycleAllowed, maxIter, threads int) (lb *linearblock.LinearBlock, err error) {
	if 3 > wc {
		return nil, fmt.Errorf("wc must be greater than or equal to 3")
	}
	if wc >= wr {
		return nil, fmt.Errorf("wc (%v) must be less than wr (%v)", wc, wr)
	}
	if m%wc != 0 {
		return nil, fmt.Errorf("wc (%v) must divide m (%v)", wc, m)
	}
	if smallestCycleAllowed%2 != 0 {
		return nil, fmt.Errorf("smallestCycle must be an even number")
	}
	if smallestCycleAllowed < 4 {
		return nil, fmt.Errorf("smallestCycle must at least 4")
	}
	if rng == nil {
		panic("rng must be set")
	}

	N := m / wc * wr
	K := m / wc

	// the first band, check i covers bits [i*wr,(i+1)*wr)
	neighbors := make([][]int, m)
	for i := 0; i < K; i++ {
		offset := i * wr
		neighbors[i] = make([]int, wr)
		for col := 0; col < wr; col++ {
			neighbors[i][col] = col + offset
		}
	}

	iter := maxIter
	s := 1
	for s < wc {
		if iter <= 0 {
			return nil, fmt.Errorf("failed to find a solution in %v iterations", maxIter)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iter--
		logrus.Debugf("Iterations remaining %v", iter)

		setBand(neighbors, permuteColumns(rng, neighbors[:K], N), s)

		H, err := linearblock.FromNeighbors(N, neighbors[:(s+1)*K])
		if err != nil {
			return nil, err
		}
		if smallestCycleAllowed > 4 && linearblock.HasGirthSmallerThan(ctx, H, smallestCycleAllowed, threads) {
			continue
		}
		s++
	}
	logrus.Debugf("Gallager H Matrix found")

	H, err := linearblock.FromNeighbors(N, neighbors)
	if err != nil {
		return nil, err
	}
	return linearblock.New(ctx, H, false)
}

func permuteColumns(rng *rand.Rand, band [][]int, bits int) [][]int {
	idx := rng.Perm(bits)

	result := make([][]int, len(band))
	for i, row := range band {
		result[i] = make([]int, len(row))
		for j, bit := range row {
			result[i][j] = idx[bit]
		}
	}
	return result
}

func setBand(neighbors, band [][]int, index int) {
	offset := index * len(band)
	copy(neighbors[offset:], band)
}

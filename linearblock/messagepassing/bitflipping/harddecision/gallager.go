package harddecision

import (
	"github.com/nathanhack/ldpc/linearblock"
)

func argMaxInt(values []int) int {
	result := 0
	max := values[0]
	for i := 1; i < len(values); i++ {
		v := values[i]
		if max < v {
			result = i
			max = v
		}
	}
	return result
}

//Gallager flips, one per iteration, the bit with the most unsatisfied checks
// over satisfied ones. Ties go to the lowest bit.
type Gallager struct {
	H *linearblock.ParityCheckMatrix

	votes []int
}

func (g *Gallager) Reset(received []int) {
	if g.H == nil {
		panic("Gallager H matrix must be set before decoding")
	}
	if len(g.votes) != g.H.Bits() {
		g.votes = make([]int, g.H.Bits())
	}
}

func (g *Gallager) Flip(syndrome []int, bits []int) []int {
	if g.votes == nil {
		g.Reset(bits)
	}

	// E_n = sum(2*s_m-1, m ∈ M(n))
	for n, checks := range g.H.Tanner().BitToChecks {
		votes := -len(checks)
		for _, m := range checks {
			votes += 2 * syndrome[m]
		}
		g.votes[n] = votes
	}

	n := argMaxInt(g.votes)
	bits[n] ^= 1
	return []int{n}
}

package softdecision

import (
	"math"

	"github.com/nathanhack/ldpc/linearblock"
)

//graph numbers the edges of the tanner graph, check by check, so messages
// are stored in flat slices indexed by edge.
type graph struct {
	checkEdges [][]int //edges of each check
	bitEdges   [][]int //edges of each bit
	edgeBit    []int
}

func newGraph(t linearblock.Tanner) *graph {
	g := &graph{
		checkEdges: make([][]int, len(t.CheckToBits)),
		bitEdges:   t.BitEdges(),
		edgeBit:    make([]int, 0, t.Edges()),
	}
	for i, bits := range t.CheckToBits {
		g.checkEdges[i] = make([]int, len(bits))
		for k, bit := range bits {
			g.checkEdges[i][k] = len(g.edgeBit)
			g.edgeBit = append(g.edgeBit, bit)
		}
	}
	return g
}

type messages struct {
	bitToCheck []float64
	checkToBit []float64
	clamped    int
}

func newMessages(g *graph, seed []float64) *messages {
	m := &messages{
		bitToCheck: make([]float64, len(g.edgeBit)),
		checkToBit: make([]float64, len(g.edgeBit)),
	}
	for e, bit := range g.edgeBit {
		m.bitToCheck[e] = seed[bit]
	}
	return m
}

//updateChecks sets every check to bit message to 2*atanh(prod(tanh(q/2))) over the
// other bits of the check.
func (m *messages) updateChecks(g *graph) {
	for _, edges := range g.checkEdges {
		for _, e := range edges {
			product := 1.0
			for _, k := range edges {
				if k != e {
					product *= math.Tanh(m.bitToCheck[k] / 2)
				}
			}
			m.checkToBit[e] = 2 * m.atanh(product)
		}
	}
}

//updateBits sets every bit to check message to the seed plus the messages of the
// other checks, and writes the hard decision of the full sum into decision.
// Sums run seed first then checks in order.
func (m *messages) updateBits(g *graph, seed []float64, decision []int) {
	for bit, edges := range g.bitEdges {
		for _, e := range edges {
			sum := seed[bit]
			for _, k := range edges {
				if k != e {
					sum += m.checkToBit[k]
				}
			}
			m.bitToCheck[e] = sum
		}

		total := seed[bit]
		for _, e := range edges {
			total += m.checkToBit[e]
		}

		decision[bit] = 0
		if total < 0 {
			decision[bit] = 1
		}
	}
}

func (m *messages) atanh(x float64) float64 {
	switch {
	case x > AtanhClamp:
		m.clamped++
		x = AtanhClamp
	case x < -AtanhClamp:
		m.clamped++
		x = -AtanhClamp
	}
	return math.Atanh(x)
}

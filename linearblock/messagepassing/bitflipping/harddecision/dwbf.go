package harddecision

import (
	"fmt"
	"math"

	"github.com/nathanhack/ldpc/linearblock"
	mat "github.com/nathanhack/sparsemat"
	mat2 "gonum.org/v1/gonum/mat"
)

//DWBF is a single bit flipping alg based on the paper
//"Dynamic Weighted Bit-Flipping Decoding Algorithms for LDPC Codes"
// by Tofar C.-Y. Chang and Yu T. Su.
//Every check is weighted by the least reliable of its other bits, starting from the
// channel reliabilities and then from the flipping metric of the previous iteration.
type DWBF struct {
	H            *linearblock.ParityCheckMatrix
	AlphaFactor  float64   //α:  0 < α < 1
	EtaThreshold float64   //η: no requirement but frequently 0.0 is a good value
	Reliability  []float64 //|y_n| of the received word, nil weighs every bit with 1

	z        []int     //received hard decision
	w        []float64 //reliability in use
	r        []float64 //r_mn by edge
	e_n      []float64
	bitEdges [][]int
}

func argMaxFloat(values []float64) int {
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

func (D *DWBF) Reset(received []int) {
	if D.H == nil {
		panic("DWBF H matrix must be set before decoding")
	}
	if D.AlphaFactor <= 0 || 1 <= D.AlphaFactor {
		panic(fmt.Sprintf("0<α<1 is required but found %v ", D.AlphaFactor))
	}
	bits := D.H.Bits()
	if D.Reliability != nil && len(D.Reliability) != bits {
		panic(fmt.Sprintf("reliability length == %v required but found %v", bits, len(D.Reliability)))
	}

	D.z = received
	D.w = D.Reliability
	if D.w == nil {
		D.w = make([]float64, bits)
		for i := range D.w {
			D.w[i] = 1
		}
	}

	t := D.H.Tanner()
	if D.bitEdges == nil {
		D.bitEdges = t.BitEdges()
		D.r = make([]float64, t.Edges())
		D.e_n = make([]float64, bits)
	}

	// r^(0)_mn = min(|y_n'|, n' ∈ N(m)\n)
	e := 0
	for _, row := range t.CheckToBits {
		for _, n := range row {
			D.r[e] = minExcept(row, n, func(n1 int) float64 { return D.w[n1] })
			e++
		}
	}
}

func (D *DWBF) Flip(syndrome []int, bits []int) []int {
	if D.z == nil {
		D.Reset(append([]int{}, bits...))
	}

	D.nextE_n(syndrome, bits)

	// B = {n|n arg max_i E_i}
	n := argMaxFloat(D.e_n)
	bits[n] ^= 1

	D.nextR()
	return []int{n}
}

func (D *DWBF) nextE_n(syndrome []int, bits []int) {
	// E^(l)_n = -(1-2*z_n)*(1-2*u_n)*|y_n| - α * sum(r^(l-1)_{mn}*(1-2*s_m), m ∈ M(n))
	for n, checks := range D.H.Tanner().BitToChecks {
		sum := 0.0
		for k, m := range checks {
			sum += D.r[D.bitEdges[n][k]] * float64(1-2*syndrome[m])
		}
		D.e_n[n] = -float64((1-2*D.z[n])*(1-2*bits[n]))*D.w[n] - D.AlphaFactor*sum
	}
}

func (D *DWBF) nextR() {
	// r^(l)_mn = min(thresh(-E^(l)_n', η), n' ∈ N(m)\n)
	e := 0
	for _, row := range D.H.Tanner().CheckToBits {
		for _, n := range row {
			D.r[e] = minExcept(row, n, func(n1 int) float64 { return threshold(-D.e_n[n1], D.EtaThreshold) })
			e++
		}
	}
}

//minExcept is the smallest value over the bits of a check other than n, 0 if there are none.
func minExcept(row []int, n int, value func(int) float64) float64 {
	min := 0.0
	found := false
	for _, n1 := range row {
		if n1 == n {
			continue
		}
		v := value(n1)
		if !found || min > v {
			min = v
			found = true
		}
	}
	return min
}

func threshold(value, thresh float64) float64 {
	if value >= thresh {
		return value - thresh
	}
	return 0
}

//HardDecision splits channel log likelihood ratios, positive favouring 0, into the
// received hard decision and the reliability |llr| of every bit for DWBF.
func HardDecision(llr mat2.Vector) (received mat.SparseVector, reliability []float64, err error) {
	received = mat.CSRVec(llr.Len())
	reliability = make([]float64, llr.Len())
	for i := range reliability {
		v := llr.AtVec(i)
		if math.IsNaN(v) {
			return nil, nil, fmt.Errorf("llr at %v is NaN", i)
		}
		if v < 0 {
			received.Set(i, 1)
		}
		reliability[i] = math.Abs(v)
	}
	return received, reliability, nil
}

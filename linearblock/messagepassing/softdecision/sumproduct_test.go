package softdecision

import (
	"context"
	"math"
	"strconv"
	"testing"

	"github.com/nathanhack/ldpc/internal/testfixture"
	"github.com/nathanhack/ldpc/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/stretchr/testify/require"
	mat2 "gonum.org/v1/gonum/mat"
)

func llrOf(bits []int, magnitude float64) []float64 {
	llr := make([]float64, len(bits))
	for i, b := range bits {
		llr[i] = magnitude
		if b == 1 {
			llr[i] = -magnitude
		}
	}
	return llr
}

func TestSumProduct_ValidCodewordUnchanged(t *testing.T) {
	H := testfixture.H6x12()
	lb, err := linearblock.New(context.Background(), H, false)
	require.NoError(t, err)

	for i := 0; i < 1<<lb.MessageLength(); i += 7 {
		message := make([]int, lb.MessageLength())
		for j := range message {
			message[j] = (i >> j) & 1
		}
		codeword := lb.Encode(linearblock.Vector(message))

		actual, converged, err := SumProduct(H, codeword, 1)
		require.NoError(t, err)
		require.True(t, converged)
		require.True(t, actual.Equals(codeword), "expected %v but found %v", codeword, actual)
	}
}

//With 0/1 seeds every message is non-negative, so an invalid input always
// decides the all zero codeword.
func TestSumProduct_CorruptInput(t *testing.T) {
	H := testfixture.H6x12()

	input := linearblock.Vector(testfixture.Received6x12)
	actual, converged, err := SumProduct(H, input, DefaultIterations)
	require.NoError(t, err)
	require.True(t, converged)
	require.True(t, actual.IsZero())

	require.Equal(t, testfixture.Received6x12, linearblock.Bits(input))
}

func TestSumProduct_DimensionMismatch(t *testing.T) {
	H := testfixture.H6x12()

	for _, n := range []int{11, 13, 25} {
		_, _, err := SumProduct(H, mat.CSRVec(n), DefaultIterations)
		require.ErrorIs(t, err, linearblock.ErrDimensionMismatch)

		_, _, err = SumProductLLR(H, mat2.NewVecDense(n, nil), DefaultIterations)
		require.ErrorIs(t, err, linearblock.ErrDimensionMismatch)
	}
}

func TestSumProductLLR_SingleWeakError(t *testing.T) {
	H := testfixture.H6x12()
	valid, err := linearblock.IsValidBits(H, testfixture.Codeword6x12)
	require.NoError(t, err)
	require.True(t, valid)

	for i := range testfixture.Codeword6x12 {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			llr := llrOf(testfixture.Codeword6x12, 4)
			llr[i] = -llr[i] / 8

			actual, converged, err := SumProductLLR(H, mat2.NewVecDense(len(llr), llr), DefaultIterations)
			require.NoError(t, err)
			require.True(t, converged)
			require.Equal(t, testfixture.Codeword6x12, linearblock.Bits(actual))
		})
	}
}

func TestSumProductLLR_NotConverged(t *testing.T) {
	H := testfixture.H6x12()

	llr := llrOf(testfixture.Codeword6x12, 4)
	for _, i := range []int{0, 1, 4} {
		llr[i] = -llr[i]
	}

	actual, converged, err := SumProductLLR(H, mat2.NewVecDense(len(llr), llr), DefaultIterations)
	require.NoError(t, err)
	require.False(t, converged)
	require.Equal(t, []int{1, 1, 0, 1, 1, 1, 0, 1, 0, 0, 1, 1}, linearblock.Bits(actual))
}

func TestSumProductLLR_NaN(t *testing.T) {
	H := testfixture.H6x12()

	llr := llrOf(testfixture.Codeword6x12, 4)
	llr[3] = math.NaN()
	_, _, err := SumProductLLR(H, mat2.NewVecDense(len(llr), llr), DefaultIterations)
	require.Error(t, err)
}

func TestMessages_Clamp(t *testing.T) {
	H, err := linearblock.FromRows([][]int{{1, 1, 1}})
	require.NoError(t, err)

	g := newGraph(H.Tanner())
	m := newMessages(g, []float64{100, 100, 100})
	require.Equal(t, 1.0, math.Tanh(m.bitToCheck[0]/2))

	m.updateChecks(g)

	expected := 2 * math.Atanh(AtanhClamp)
	for e, v := range m.checkToBit {
		require.False(t, math.IsInf(v, 0) || math.IsNaN(v), "edge %v: %v", e, v)
		require.Equal(t, expected, v)
	}
	require.Equal(t, 3, m.clamped)

	m = newMessages(g, []float64{-100, 100, 100})
	m.updateChecks(g)
	require.Equal(t, -expected, m.checkToBit[1])
	require.Equal(t, expected, m.checkToBit[0])
}

func TestMessages_UpdateBitsSumsOtherChecks(t *testing.T) {
	H, err := linearblock.FromRows([][]int{{1}, {1}, {1}})
	require.NoError(t, err)

	g := newGraph(H.Tanner())
	seed := []float64{1}
	m := newMessages(g, seed)
	m.checkToBit = []float64{1e16, 1, -1e16}
	decision := make([]int, 1)

	m.updateBits(g, seed, decision)

	//1+1-1e16 is exact, subtracting 1e16 from the rounded total is not
	require.Equal(t, []float64{-9999999999999998, 0, 1e16}, m.bitToCheck)
	require.Equal(t, []int{0}, decision)
}

func TestGraph(t *testing.T) {
	H := testfixture.H6x12()
	g := newGraph(H.Tanner())

	require.Len(t, g.edgeBit, 30)
	for i, edges := range g.checkEdges {
		neighbors, err := H.CheckNeighbors(i)
		require.NoError(t, err)
		require.Len(t, edges, len(neighbors))
		for k, e := range edges {
			require.Equal(t, neighbors[k], g.edgeBit[e])
		}
	}
	for bit, edges := range g.bitEdges {
		for _, e := range edges {
			require.Equal(t, bit, g.edgeBit[e])
		}
	}
}

func BenchmarkSumProductLLR(b *testing.B) {
	H := testfixture.H6x12()
	llr := llrOf(testfixture.Codeword6x12, 4)
	llr[5] = -llr[5] / 8
	v := mat2.NewVecDense(len(llr), llr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SumProductLLR(H, v, DefaultIterations)
	}
}

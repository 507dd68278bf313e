package decode

import (
	"strconv"
	"testing"

	"github.com/nathanhack/ldpc/internal/testfixture"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/stretchr/testify/require"
)

func TestParseBits(t *testing.T) {
	bits, err := ParseBits("1010, 1101 0101")
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1}, bits)

	_, err = ParseBits("10201")
	require.ErrorIs(t, err, linearblock.ErrNotBinary)
}

func TestDecode(t *testing.T) {
	H := testfixture.H6x12()
	input := testfixture.Received6x12

	tests := []struct {
		alg      string
		expected Result
	}{
		{"rowflip", Result{[]int{0, 1, 1, 1, 1, 1, 1, 1, 0, 1, 0, 0}, false, 3}},
		{"sumproduct", Result{make([]int, 12), true, 0}},
		{"dwbf", Result{[]int{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0}, false, 4}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := Decode(H, input, test.alg, 10)
			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}

	actual, err := Decode(H, input, "gallager", 10)
	require.NoError(t, err)
	weight, err := linearblock.SyndromeWeightBits(H, actual.Bits)
	require.NoError(t, err)
	require.Equal(t, weight, actual.SyndromeWeight)
	require.Equal(t, weight == 0, actual.Converged)
}

func TestDecode_Errors(t *testing.T) {
	H := testfixture.H6x12()

	_, err := Decode(H, make([]int, 12), "viterbi", 10)
	require.Error(t, err)

	_, err = Decode(H, make([]int, 25), "sumproduct", 30)
	require.ErrorIs(t, err, linearblock.ErrDimensionMismatch)

	_, err = Decode(H, []int{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, "rowflip", 10)
	require.ErrorIs(t, err, linearblock.ErrNotBinary)
}

func TestResult_String(t *testing.T) {
	r := Result{[]int{1, 0, 1}, true, 0}
	require.Equal(t, "101 converged: true syndrome weight: 0", r.String())
}

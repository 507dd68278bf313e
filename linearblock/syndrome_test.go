package linearblock

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValid_EncodedCodewords(t *testing.T) {
	H, err := FromRows(fixture6x12)
	require.NoError(t, err)
	lb, err := New(context.Background(), H, false)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		message := make([]int, lb.MessageLength())
		for i := range message {
			message[i] = rng.Intn(2)
		}

		codeword := lb.Encode(Vector(message))
		valid, err := IsValid(H, codeword)
		require.NoError(t, err)
		require.True(t, valid, "codeword %v", codeword)

		weight, err := SyndromeWeight(H, codeword)
		require.NoError(t, err)
		require.Zero(t, weight)
	}
}

func TestSyndrome(t *testing.T) {
	H, err := FromRows(fixture6x12)
	require.NoError(t, err)

	received := Vector([]int{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0})
	syndrome, err := Syndrome(H, received)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, 1, 1, 0}, Bits(syndrome))

	weight, err := SyndromeWeight(H, received)
	require.NoError(t, err)
	require.Equal(t, 4, weight)

	valid, err := IsValid(H, received)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestSyndrome_DimensionMismatch(t *testing.T) {
	H, err := FromRows(fixture6x12)
	require.NoError(t, err)

	_, err = IsValidBits(H, []int{1, 0, 1})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Syndrome(H, Vector(make([]int, 13)))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCheckBits(t *testing.T) {
	require.NoError(t, CheckBits([]int{0, 1, 1, 0}))
	require.ErrorIs(t, CheckBits([]int{0, 2}), ErrNotBinary)
}

func TestSyndromeBits(t *testing.T) {
	H, err := FromRows(fixture6x12)
	require.NoError(t, err)

	syndrome, err := SyndromeBits(H, []int{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, 1, 1, 0}, syndrome)
}

func TestBitsHelpers_NotBinary(t *testing.T) {
	H, err := FromRows(fixture6x12)
	require.NoError(t, err)

	//a 2 would otherwise count as an even symbol
	bits := []int{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	_, err = IsValidBits(H, bits)
	require.ErrorIs(t, err, ErrNotBinary)

	_, err = SyndromeWeightBits(H, bits)
	require.ErrorIs(t, err, ErrNotBinary)

	_, err = SyndromeBits(H, bits)
	require.ErrorIs(t, err, ErrNotBinary)
}

package hamming

import (
	"context"
	"strconv"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		paritySymbols int
		k             int
	}{
		{3, 4},
		{4, 11},
		{5, 26},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := New(context.Background(), test.paritySymbols)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}

			if !actual.Validate() {
				t.Fatalf("expected valid linearblock code")
			}
			if actual.MessageLength() != test.k {
				t.Fatalf("expected message length %v but found %v", test.k, actual.MessageLength())
			}
		})
	}
}

func TestParityCheck_ColumnsAreDistinct(t *testing.T) {
	H, err := ParityCheck(4)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	seen := make(map[int]bool)
	for j := 0; j < H.Bits(); j++ {
		checks, _ := H.BitNeighbors(j)
		value := 0
		for _, c := range checks {
			value |= 1 << c
		}
		if value != j+1 {
			t.Fatalf("expected column %v to encode %v but found %v", j, j+1, value)
		}
		seen[value] = true
	}
	if len(seen) != H.Bits() {
		t.Fatalf("expected %v distinct columns but found %v", H.Bits(), len(seen))
	}

	if err := H.Validate(); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
}

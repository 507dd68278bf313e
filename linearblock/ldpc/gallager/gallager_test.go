package gallager

import (
	"context"
	"math/rand"
	"strconv"
	"testing"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		m, wc, wr int
	}{
		{9, 3, 6},
		{12, 3, 4},
		{20, 4, 5},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			lb, err := Search(context.Background(), rand.New(rand.NewSource(int64(i))), test.m, test.wc, test.wr, 4, 10, 0)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if !lb.Validate() {
				t.Fatalf("expected valid linearblock code")
			}

			checks, bits := lb.H.Dims()
			if checks != test.m || bits != test.m/test.wc*test.wr {
				t.Fatalf("expected %vx%v but found %vx%v", test.m, test.m/test.wc*test.wr, checks, bits)
			}
			tanner := lb.H.Tanner()
			for c, row := range tanner.CheckToBits {
				if len(row) != test.wr {
					t.Fatalf("expected check %v to have weight %v but found %v", c, test.wr, len(row))
				}
			}
			for b, col := range tanner.BitToChecks {
				if len(col) != test.wc {
					t.Fatalf("expected bit %v to have weight %v but found %v", b, test.wc, len(col))
				}
			}
			//every band sums to the all ones vector
			if lb.MessageLength() < bits-test.m+test.wc-1 {
				t.Fatalf("expected message length >= %v but found %v", bits-test.m+test.wc-1, lb.MessageLength())
			}
		})
	}
}

func TestSearch_Deterministic(t *testing.T) {
	a, err := Search(context.Background(), rand.New(rand.NewSource(42)), 12, 3, 4, 4, 10, 0)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	b, err := Search(context.Background(), rand.New(rand.NewSource(42)), 12, 3, 4, 4, 10, 0)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if !a.H.Equals(b.H) {
		t.Fatalf("expected \n%v\n but found \n%v\n", a.H, b.H)
	}
}

func TestSearch_Errors(t *testing.T) {
	tests := []struct {
		m, wc, wr, girth, maxIter int
	}{
		{9, 2, 6, 4, 10},
		{9, 3, 3, 4, 10},
		{10, 3, 6, 4, 10},
		{9, 3, 6, 5, 10},
		{9, 3, 6, 2, 10},
		{9, 3, 6, 6, 20},
		{9, 3, 6, 4, 1},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := Search(context.Background(), rand.New(rand.NewSource(1)), test.m, test.wc, test.wr, test.girth, test.maxIter, 0)
			if err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

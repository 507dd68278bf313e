package linearblock

import (
	"context"
	"encoding/json"
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestOrderUnorderVector(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	vec := mat.CSRVec(100)
	columns := make([]int, vec.Len())
	for i := 0; i < vec.Len(); i++ {
		vec.Set(i, rng.Intn(2))
		columns[i] = i
	}

	rng.Shuffle(len(columns), func(i, j int) {
		columns[i], columns[j] = columns[j], columns[i]
	})

	swapped := ToSystematic(vec, columns)

	actual := ToNonSystematic(swapped, columns)

	if !reflect.DeepEqual(Bits(vec), Bits(actual)) {
		t.Fatalf("expected %v but found %v", vec, actual)
	}
}

func TestNew_EncodeDecode(t *testing.T) {
	H, err := FromRows(fixture6x12)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	lb, err := New(context.Background(), H, false)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if !lb.Validate() {
		t.Fatalf("expected valid linearblock code")
	}

	k := lb.MessageLength()
	for trial := 0; trial < 1<<k && trial < 64; trial++ {
		bits := make([]int, k)
		for i := range bits {
			bits[i] = (trial >> i) & 1
		}
		message := Vector(bits)

		codeword := lb.Encode(message)
		valid, err := IsValid(H, codeword)
		if err != nil {
			t.Fatalf("expected no error but found %v", err)
		}
		if !valid {
			t.Fatalf("expected encoded codeword %v to be valid", codeword)
		}

		actual := lb.Decode(codeword)
		if !reflect.DeepEqual(Bits(actual), bits) {
			t.Fatalf("expected message %v but found %v", bits, Bits(actual))
		}
	}
}

func TestNew_RankDeficient(t *testing.T) {
	H, _ := FromRows([][]int{{1, 0}, {0, 1}})
	_, err := New(context.Background(), H, false)
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestLinearBlock_JSON(t *testing.T) {
	H, _ := FromRows(fixture6x12)
	lb, err := New(context.Background(), H, false)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	bs, err := json.Marshal(lb)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	var actual LinearBlock
	if err := json.Unmarshal(bs, &actual); err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	if !actual.H.Equals(H) {
		t.Fatalf("expected \n%v\n but found \n%v\n", H, actual.H)
	}
	if !reflect.DeepEqual(actual.Processing.HColumnOrder, lb.Processing.HColumnOrder) {
		t.Fatalf("expected order %v but found %v", lb.Processing.HColumnOrder, actual.Processing.HColumnOrder)
	}
	if !actual.Validate() {
		t.Fatalf("expected valid linearblock code after unmarshalling")
	}
}

func TestLinearBlock_CodeRate(t *testing.T) {
	tests := []struct {
		rows [][]int
		k    int
	}{
		{[][]int{{1, 1, 0}, {0, 1, 1}}, 1},
		{[][]int{{1, 1, 1, 1}}, 3},
		{fixture6x12, 6},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			H, _ := FromRows(test.rows)
			lb, err := New(context.Background(), H, false)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if lb.MessageLength() != test.k {
				t.Fatalf("expected k == %v but found %v", test.k, lb.MessageLength())
			}
			if lb.ParitySymbols() != lb.CodewordLength()-test.k {
				t.Fatalf("expected %v parity symbols but found %v", lb.CodewordLength()-test.k, lb.ParitySymbols())
			}
			expected := float64(test.k) / float64(H.Bits())
			if lb.CodeRate() != expected {
				t.Fatalf("expected %v but found %v", expected, lb.CodeRate())
			}
		})
	}
}

package linearblock

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestNewParityCheckMatrix(t *testing.T) {
	tests := []struct {
		checks, bits int
		err          error
	}{
		{6, 12, nil},
		{1, 1, nil},
		{0, 12, ErrInvalidShape},
		{6, 0, ErrInvalidShape},
		{-1, -1, ErrInvalidShape},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			H, err := NewParityCheckMatrix(test.checks, test.bits)
			if !errors.Is(err, test.err) {
				t.Fatalf("expected %v but found %v", test.err, err)
			}
			if err != nil {
				return
			}
			checks, bits := H.Dims()
			if checks != test.checks || bits != test.bits {
				t.Fatalf("expected %vx%v but found %vx%v", test.checks, test.bits, checks, bits)
			}
		})
	}
}

func TestParityCheckMatrix_SetAt(t *testing.T) {
	H, _ := NewParityCheckMatrix(3, 4)

	tests := []struct {
		check, bit, value int
		err               error
	}{
		{0, 0, 1, nil},
		{2, 3, 1, nil},
		{1, 2, 0, nil},
		{3, 0, 1, ErrIndexOutOfRange},
		{0, 4, 1, ErrIndexOutOfRange},
		{-1, 0, 1, ErrIndexOutOfRange},
		{0, 0, 2, ErrNotBinary},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			err := H.Set(test.check, test.bit, test.value)
			if !errors.Is(err, test.err) {
				t.Fatalf("expected %v but found %v", test.err, err)
			}
			if err != nil {
				return
			}
			actual, err := H.At(test.check, test.bit)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if actual != test.value {
				t.Fatalf("expected %v but found %v", test.value, actual)
			}
		})
	}
}

func TestParityCheckMatrix_OutOfRangeIsDimensionMismatch(t *testing.T) {
	H, _ := NewParityCheckMatrix(2, 2)
	_, err := H.At(2, 0)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected %v but found %v", ErrDimensionMismatch, err)
	}
	if _, err := H.CheckNeighbors(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected %v but found %v", ErrIndexOutOfRange, err)
	}
	if _, err := H.BitNeighbors(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected %v but found %v", ErrIndexOutOfRange, err)
	}
}

func TestParityCheckMatrix_Neighbors(t *testing.T) {
	H, err := FromRows(fixture6x12)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	for i, row := range fixture6x12 {
		expected := make([]int, 0)
		for j, v := range row {
			if v == 1 {
				expected = append(expected, j)
			}
		}
		actual, _ := H.CheckNeighbors(i)
		if !reflect.DeepEqual(actual, expected) {
			t.Fatalf("check %v: expected %v but found %v", i, expected, actual)
		}
	}

	for j := range fixture6x12[0] {
		expected := make([]int, 0)
		for i := range fixture6x12 {
			if fixture6x12[i][j] == 1 {
				expected = append(expected, i)
			}
		}
		actual, _ := H.BitNeighbors(j)
		if !reflect.DeepEqual(actual, expected) {
			t.Fatalf("bit %v: expected %v but found %v", j, expected, actual)
		}
	}

	if H.Tanner().Edges() != 30 {
		t.Fatalf("expected 30 edges but found %v", H.Tanner().Edges())
	}
}

func TestTanner_BitEdges(t *testing.T) {
	H, _ := FromRows([][]int{{1, 1, 0}, {0, 1, 1}})
	expected := [][]int{{0}, {1, 2}, {3}}
	actual := H.Tanner().BitEdges()
	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("expected %v but found %v", expected, actual)
	}
}

func TestParityCheckMatrix_SetZeroRemovesNeighbor(t *testing.T) {
	H, _ := FromRows([][]int{{1, 1, 1}})
	if err := H.Set(0, 1, 0); err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	bits, _ := H.CheckNeighbors(0)
	if !reflect.DeepEqual(bits, []int{0, 2}) {
		t.Fatalf("expected [0 2] but found %v", bits)
	}
	checks, _ := H.BitNeighbors(1)
	if len(checks) != 0 {
		t.Fatalf("expected no checks but found %v", checks)
	}
}

func TestFromRows_Errors(t *testing.T) {
	tests := []struct {
		rows [][]int
		err  error
	}{
		{[][]int{}, ErrInvalidShape},
		{[][]int{{1, 0}, {1}}, ErrDimensionMismatch},
		{[][]int{{1, 3}}, ErrNotBinary},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := FromRows(test.rows)
			if !errors.Is(err, test.err) {
				t.Fatalf("expected %v but found %v", test.err, err)
			}
		})
	}
}

func TestParityCheckMatrix_Validate(t *testing.T) {
	H, _ := FromRows([][]int{{1, 1, 0}, {0, 0, 0}})
	if err := H.Validate(); !errors.Is(err, ErrEmptyCheck) {
		t.Fatalf("expected %v but found %v", ErrEmptyCheck, err)
	}

	H, _ = FromRows(fixture6x12)
	if err := H.Validate(); err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
}

func TestFromSparseMat(t *testing.T) {
	m := mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1)
	H, err := FromSparseMat(m)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	expected, _ := FromNeighbors(7, [][]int{{0, 3, 4, 5}, {1, 3, 5, 6}, {2, 4, 5, 6}})
	if !H.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, H)
	}
}

func TestParityCheckMatrix_JSON(t *testing.T) {
	H, _ := FromRows(fixture6x12)

	bs, err := json.Marshal(H)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	var actual ParityCheckMatrix
	if err := json.Unmarshal(bs, &actual); err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if !actual.Equals(H) {
		t.Fatalf("expected \n%v\n but found \n%v\n", H, &actual)
	}
}

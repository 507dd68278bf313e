package linearblock

import (
	"encoding/json"
	"fmt"

	mat "github.com/nathanhack/sparsemat"
	"golang.org/x/exp/slices"
)

//Tanner is the bipartite graph view of a parity check matrix.
// CheckToBits[i] holds the (sorted) bit indices participating in check i and
// BitToChecks[j] holds the (sorted) check indices bit j participates in.
// Both are shared with the ParityCheckMatrix and must not be modified.
type Tanner struct {
	CheckToBits [][]int
	BitToChecks [][]int
}

//Edges returns the number of ones in H.
func (t Tanner) Edges() int {
	count := 0
	for _, bits := range t.CheckToBits {
		count += len(bits)
	}
	return count
}

//BitEdges numbers the ones of H check by check and returns the edge numbers of
// every bit, in the order of BitToChecks.
func (t Tanner) BitEdges() [][]int {
	result := make([][]int, len(t.BitToChecks))
	for j, checks := range t.BitToChecks {
		result[j] = make([]int, 0, len(checks))
	}
	e := 0
	for _, bits := range t.CheckToBits {
		for _, bit := range bits {
			result[bit] = append(result[bit], e)
			e++
		}
	}
	return result
}

//ParityCheckMatrix is the binary m x n parity matrix H, m checks by n code bits.
//
//Neighbor lists are kept up to date by Set so reads never allocate or mutate.
//A ParityCheckMatrix is safe for concurrent readers as long as no one calls Set.
type ParityCheckMatrix struct {
	h      mat.SparseMat
	tanner Tanner
}

//NewParityCheckMatrix creates an all zero H with the given number of checks (rows) and bits (columns).
func NewParityCheckMatrix(checks, bits int) (*ParityCheckMatrix, error) {
	if checks <= 0 || bits <= 0 {
		return nil, fmt.Errorf("%w: found %vx%v", ErrInvalidShape, checks, bits)
	}

	p := &ParityCheckMatrix{
		h: mat.CSRMat(checks, bits),
		tanner: Tanner{
			CheckToBits: make([][]int, checks),
			BitToChecks: make([][]int, bits),
		},
	}
	for i := range p.tanner.CheckToBits {
		p.tanner.CheckToBits[i] = make([]int, 0)
	}
	for j := range p.tanner.BitToChecks {
		p.tanner.BitToChecks[j] = make([]int, 0)
	}
	return p, nil
}

//FromRows creates H from dense rows of 0s and 1s. All rows must have the same length.
func FromRows(rows [][]int) (*ParityCheckMatrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}

	p, err := NewParityCheckMatrix(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %v has %v entries, expected %v", ErrDimensionMismatch, i, len(row), len(rows[0]))
		}
		for j, v := range row {
			if err := p.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

//FromNeighbors creates H with the given number of bits where neighbors[i] lists the bits in check i.
func FromNeighbors(bits int, neighbors [][]int) (*ParityCheckMatrix, error) {
	p, err := NewParityCheckMatrix(len(neighbors), bits)
	if err != nil {
		return nil, err
	}

	for i, row := range neighbors {
		for _, j := range row {
			if err := p.Set(i, j, 1); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

//FromSparseMat creates H from a copy of m.
func FromSparseMat(m mat.SparseMat) (*ParityCheckMatrix, error) {
	rows, cols := m.Dims()
	neighbors := make([][]int, rows)
	for i := 0; i < rows; i++ {
		neighbors[i] = m.Row(i).NonzeroArray()
	}
	return FromNeighbors(cols, neighbors)
}

//Dims returns the number of checks (rows) and bits (columns).
func (p *ParityCheckMatrix) Dims() (checks, bits int) {
	return len(p.tanner.CheckToBits), len(p.tanner.BitToChecks)
}

//Checks returns m, the number of check equations.
func (p *ParityCheckMatrix) Checks() int {
	return len(p.tanner.CheckToBits)
}

//Bits returns n, the codeword length.
func (p *ParityCheckMatrix) Bits() int {
	return len(p.tanner.BitToChecks)
}

func (p *ParityCheckMatrix) checkRange(check, bit int) error {
	checks, bits := p.Dims()
	if check < 0 || check >= checks || bit < 0 || bit >= bits {
		return fmt.Errorf("%w: (%v,%v) not within %vx%v", ErrIndexOutOfRange, check, bit, checks, bits)
	}
	return nil
}

//Set assigns H[check][bit] = value, value must be 0 or 1.
func (p *ParityCheckMatrix) Set(check, bit, value int) error {
	if err := p.checkRange(check, bit); err != nil {
		return err
	}
	if value != 0 && value != 1 {
		return fmt.Errorf("%w: found %v at (%v,%v)", ErrNotBinary, value, check, bit)
	}

	p.h.Set(check, bit, value)
	if value == 1 {
		p.tanner.CheckToBits[check] = insertSorted(p.tanner.CheckToBits[check], bit)
		p.tanner.BitToChecks[bit] = insertSorted(p.tanner.BitToChecks[bit], check)
	} else {
		p.tanner.CheckToBits[check] = removeSorted(p.tanner.CheckToBits[check], bit)
		p.tanner.BitToChecks[bit] = removeSorted(p.tanner.BitToChecks[bit], check)
	}
	return nil
}

func insertSorted(values []int, v int) []int {
	i, has := slices.BinarySearch(values, v)
	if has {
		return values
	}
	return slices.Insert(values, i, v)
}

func removeSorted(values []int, v int) []int {
	i, has := slices.BinarySearch(values, v)
	if !has {
		return values
	}
	return slices.Delete(values, i, i+1)
}

//At returns H[check][bit].
func (p *ParityCheckMatrix) At(check, bit int) (int, error) {
	if err := p.checkRange(check, bit); err != nil {
		return 0, err
	}
	if _, has := slices.BinarySearch(p.tanner.CheckToBits[check], bit); has {
		return 1, nil
	}
	return 0, nil
}

//CheckNeighbors returns the bits participating in the check. The result must not be modified.
func (p *ParityCheckMatrix) CheckNeighbors(check int) ([]int, error) {
	if check < 0 || check >= p.Checks() {
		return nil, fmt.Errorf("%w: check %v not within [0,%v)", ErrIndexOutOfRange, check, p.Checks())
	}
	return p.tanner.CheckToBits[check], nil
}

//BitNeighbors returns the checks the bit participates in. The result must not be modified.
func (p *ParityCheckMatrix) BitNeighbors(bit int) ([]int, error) {
	if bit < 0 || bit >= p.Bits() {
		return nil, fmt.Errorf("%w: bit %v not within [0,%v)", ErrIndexOutOfRange, bit, p.Bits())
	}
	return p.tanner.BitToChecks[bit], nil
}

//Tanner returns the neighbor lists of H, used by the decoders.
func (p *ParityCheckMatrix) Tanner() Tanner {
	return p.tanner
}

//Validate returns an ErrEmptyCheck for the first check with no participating bits.
func (p *ParityCheckMatrix) Validate() error {
	for i, bits := range p.tanner.CheckToBits {
		if len(bits) == 0 {
			return fmt.Errorf("%w: check %v", ErrEmptyCheck, i)
		}
	}
	return nil
}

//SparseMat returns a copy of H.
func (p *ParityCheckMatrix) SparseMat() mat.SparseMat {
	return mat.CSRMatCopy(p.h)
}

//Equals reports whether both matrices have the same shape and ones.
func (p *ParityCheckMatrix) Equals(o *ParityCheckMatrix) bool {
	if o == nil {
		return false
	}
	pc, pb := p.Dims()
	oc, ob := o.Dims()
	if pc != oc || pb != ob {
		return false
	}
	for i := range p.tanner.CheckToBits {
		if !slices.Equal(p.tanner.CheckToBits[i], o.tanner.CheckToBits[i]) {
			return false
		}
	}
	return true
}

func (p *ParityCheckMatrix) String() string {
	return p.h.String()
}

//MarshalJSON writes H in the sparsemat CSR form.
func (p *ParityCheckMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.h)
}

//UnmarshalJSON reads H in the sparsemat CSR form and rebuilds the neighbor lists.
func (p *ParityCheckMatrix) UnmarshalJSON(bytes []byte) error {
	var h mat.CSRMatrix
	err := json.Unmarshal(bytes, &h)
	if err != nil {
		return err
	}

	tmp, err := FromSparseMat(&h)
	if err != nil {
		return err
	}
	*p = *tmp
	return nil
}

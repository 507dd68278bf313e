package linearblock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nathanhack/ldpc/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

type Systemic struct {
	HColumnOrder []int
	G            mat.SparseMat
}

//LinearBlock contains the parity check matrix H and the systemic G generator derived from it.
type LinearBlock struct {
	H          *ParityCheckMatrix //the original H(parity) matrix
	Processing *Systemic          // contains systemic generator matrix, nil when only decoding is needed
}

//// For JSON unmarshalling
type systemic struct {
	HColumnOrder []int
	G            mat.CSRMatrix
}
type linearblock struct {
	H          *ParityCheckMatrix
	Processing *systemic
}

//UnmarshalJSON is needed because Systemic has a mat.SparseMat and requires special handling
func (l *LinearBlock) UnmarshalJSON(bytes []byte) error {
	var lb linearblock
	err := json.Unmarshal(bytes, &lb)
	if err != nil {
		return err
	}
	if lb.H == nil {
		return fmt.Errorf("%w: missing H", ErrInvalidShape)
	}

	l.H = lb.H
	l.Processing = nil
	if lb.Processing == nil {
		return nil
	}

	l.Processing = &Systemic{
		HColumnOrder: lb.Processing.HColumnOrder,
		G:            &lb.Processing.G,
	}
	return nil
}

//New creates a LinearBlock from H, deriving the systemic generator.
// H may be rank deficient, the message length is then n-rank(H).
func New(ctx context.Context, H *ParityCheckMatrix, showProgressBar bool) (*LinearBlock, error) {
	order, g, err := internal.NewFromH(ctx, H.Tanner().CheckToBits, H.Bits(), showProgressBar)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRankDeficient, err)
	}

	return &LinearBlock{
		H: H,
		Processing: &Systemic{
			HColumnOrder: order,
			G:            g,
		},
	}, nil
}

func (l *LinearBlock) systemic() *Systemic {
	if l.Processing == nil {
		panic("linearblock has no generator, create it with New")
	}
	return l.Processing
}

//Encode take in a message and encodes it using the linear block, returning a codeword
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	G := l.systemic().G
	rows, cols := G.Dims()
	if message.Len() != rows {
		panic(fmt.Sprintf("message length == %v is required but found %v", rows, message.Len()))
	}

	codeword = mat.CSRVec(cols)
	codeword.MulMat(message, G)

	return ToNonSystematic(codeword, l.Processing.HColumnOrder)
}

//ToNonSystematic moves the symbols of a codeword in generator order back to the column order of H.
func ToNonSystematic(codeword mat.SparseVector, ordering []int) mat.SparseVector {
	if codeword.Len() != len(ordering) {
		panic("vector length must equal ordering length")
	}
	result := mat.CSRVec(codeword.Len())

	for _, c := range codeword.NonzeroArray() {
		result.Set(ordering[c], 1)
	}
	return result
}

//ToSystematic moves the symbols of a codeword in H column order to generator order.
func ToSystematic(codeword mat.SparseVector, ordering []int) mat.SparseVector {
	if codeword.Len() != len(ordering) {
		panic("vector length must equal ordering length")
	}
	result := mat.CSRVec(codeword.Len())

	for c, c1 := range ordering {
		if codeword.At(c1) != 0 {
			result.Set(c, 1)
		}
	}
	return result
}

//Decode takes in a codeword and returns the message contained in it
func (l *LinearBlock) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	codeword = ToSystematic(codeword, l.systemic().HColumnOrder)
	return codeword.Slice(0, l.MessageLength())
}

//Syndrome returns H*codeword.
func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (mat.SparseVector, error) {
	return Syndrome(l.H, codeword)
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.systemic().G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	return l.CodewordLength() - l.MessageLength()
}
func (l *LinearBlock) CodewordLength() int {
	return l.H.Bits()
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

//Validate will test if this linearblock satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H
func (l *LinearBlock) Validate() bool {
	if l.Processing == nil {
		return false
	}
	return internal.ValidateHGMatrices(l.Processing.G, l.H.Tanner().CheckToBits, l.Processing.HColumnOrder)
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(l.H.String())
	if l.Processing != nil {
		buf.WriteString(fmt.Sprintf("Order: %v", l.Processing.HColumnOrder))
		buf.WriteString("\nG:\n")
		buf.WriteString(l.Processing.G.String())
	}
	buf.WriteString("\n}\n")
	return buf.String()
}

package benchmarking

import (
	"math"
	"math/rand"
	"sync"

	"github.com/nathanhack/ldpc/linearblock/messagepassing/bec"
	mat "github.com/nathanhack/sparsemat"
	mat2 "gonum.org/v1/gonum/mat"
)

//Generator creates reproducible random test vectors. It is safe for concurrent use,
// though concurrent callers will interleave draws from the same source.
type Generator struct {
	mux sync.Mutex
	rng *rand.Rand
}

//NewGenerator creates a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return NewGeneratorFrom(rand.NewSource(seed))
}

//NewGeneratorFrom creates a Generator drawing from src.
func NewGeneratorFrom(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

//GenerateBits returns n uniformly random bits from a generator seeded with seed.
func GenerateBits(n int, seed int64) []int {
	return NewGenerator(seed).Bits(n)
}

//Bits returns n uniformly random bits.
func (g *Generator) Bits(n int) []int {
	g.mux.Lock()
	defer g.mux.Unlock()

	bits := make([]int, n)
	for i := range bits {
		bits[i] = g.rng.Intn(2)
	}
	return bits
}

// Message creates a random message of length len.
func (g *Generator) Message(len int) mat.SparseVector {
	message := mat.CSRVec(len)
	for i, b := range g.Bits(len) {
		if b == 1 {
			message.Set(i, 1)
		}
	}
	return message
}

// MessageOnesCount creates a random message of length len with a hamming weight equal to min(onesCount,len)
func (g *Generator) MessageOnesCount(len int, onesCount int) mat.SparseVector {
	message := mat.CSRVec(len)
	for _, i := range g.indices(len, onesCount) {
		message.Set(i, 1)
	}
	return message
}

func (g *Generator) indices(n, count int) []int {
	if count > n {
		count = n
	}
	if count <= 0 {
		return nil
	}
	g.mux.Lock()
	defer g.mux.Unlock()
	return g.rng.Perm(n)[:count]
}

// FlipBitCount flips min(numberOfBitsToFlip,len(input)) randomly chosen bits of a copy of input.
func (g *Generator) FlipBitCount(input mat.SparseVector, numberOfBitsToFlip int) mat.SparseVector {
	output := mat.CSRVecCopy(input)
	for _, i := range g.indices(input.Len(), numberOfBitsToFlip) {
		output.Set(i, output.At(i)+1)
	}
	return output
}

// Erase creates a copy of codeword with round(probabilityOfErasure*len(codeword)) bits erased
func (g *Generator) Erase(codeword []bec.ErasureBit, probabilityOfErasure float64) []bec.ErasureBit {
	return g.EraseCount(codeword, int(math.Round(probabilityOfErasure*float64(len(codeword)))))
}

// EraseCount creates a copy of the codeword and randomly sets min(numberOfBitsToErase,len(codeword)) of them to Erased
func (g *Generator) EraseCount(codeword []bec.ErasureBit, numberOfBitsToErase int) []bec.ErasureBit {
	output := make([]bec.ErasureBit, len(codeword))
	copy(output, codeword)

	for _, i := range g.indices(len(codeword), numberOfBitsToErase) {
		output[i] = bec.Erased
	}
	return output
}

// NoiseBPSK adds white gaussian noise to the bpsk vector using the E_b/N_0 passed in
func (g *Generator) NoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) *mat2.VecDense {
	σ := Sigma(E_bPerN_0)

	g.mux.Lock()
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, g.rng.NormFloat64()*σ)
	}
	g.mux.Unlock()

	result.AddVec(result, bpsk)
	return result
}

//Sigma is the noise standard deviation for E_b/N_0.
func Sigma(E_bPerN_0 float64) float64 {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	return math.Sqrt(1 / (2 * E_bPerN_0))
}

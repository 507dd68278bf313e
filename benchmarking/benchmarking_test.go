package benchmarking

import (
	"context"
	"fmt"

	"github.com/nathanhack/ldpc/linearblock/hamming"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bec"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bec/iterative"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bitflipping/harddecision"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/softdecision"
	mat "github.com/nathanhack/sparsemat"
	mat2 "gonum.org/v1/gonum/mat"
)

func exhaustiveMessages(trial int) mat.SparseVector {
	t := trial % 16
	message := mat.CSRVec(4)
	for i := 0; i < 4; i++ {
		message.Set(i, (t&(1<<i))>>i)
	}
	return message
}

func ExampleBenchmarkBSC() {
	linearBlock, _ := hamming.New(context.Background(), 3)
	generator := NewGenerator(1)

	encode := func(message mat.SparseVector) (codeword mat.SparseVector) {
		return linearBlock.Encode(message)
	}

	channel := func(originalCodeword mat.SparseVector) (erroredCodeword mat.SparseVector) {
		//since hamming can fix only one bit wrong we'll just flip one bit per codeword
		return generator.FlipBitCount(originalCodeword, 1)
	}
	repair := func(originalCodeword, channelInducedCodeword mat.SparseVector) (fixed mat.SparseVector) {
		alg := &harddecision.Gallager{
			H: linearBlock.H,
		}

		fixed, _, _ = harddecision.BitFlipping(alg, linearBlock.H, channelInducedCodeword, 50)
		return fixed
	}

	checkpoint := func(updatedStats Stats) {}

	stats := BenchmarkBSC(context.Background(), 100, 1, exhaustiveMessages, encode, channel, repair, Metrics(linearBlock), checkpoint, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Codeword:0.00(+/-0.00), Message:0.00(+/-0.00), Parity:0.00(+/-0.00)}
}

func ExampleBenchmarkBEC() {
	linearBlock, _ := hamming.New(context.Background(), 3)
	generator := NewGenerator(2)

	encode := func(message mat.SparseVector) (codeword []bec.ErasureBit) {
		return bec.FromVector(linearBlock.Encode(message), nil)
	}

	channel := func(originalCodeword []bec.ErasureBit) (erroredCodeword []bec.ErasureBit) {
		//since hamming can fix only one bit wrong under BSC but for BEC this code can fix 2 errors!!
		return generator.EraseCount(originalCodeword, 2)
	}

	repair := func(originalCodeword, channelInducedCodeword []bec.ErasureBit) (fixed []bec.ErasureBit) {
		alg := &iterative.Simple{
			H: linearBlock.H,
		}
		fixed, _, _ = bec.Flipping(alg, linearBlock.H, channelInducedCodeword)
		return fixed
	}

	checkpoint := func(updatedStats Stats) {
	}

	stats := BenchmarkBEC(context.Background(), 1000, 4, exhaustiveMessages, encode, channel, repair, ErasureMetrics(linearBlock), checkpoint, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Codeword:0.00(+/-0.00), Message:0.00(+/-0.00), Parity:0.00(+/-0.00)}
}

func ExampleBenchmarkBPSK() {
	const E_bPerN_0 = 10.0
	linearBlock, _ := hamming.New(context.Background(), 3)
	generator := NewGenerator(3)

	encode := func(message mat.SparseVector) (codeword mat2.Vector) {
		return BitsToBPSK(linearBlock.Encode(message))
	}

	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		return generator.NoiseBPSK(codeword, E_bPerN_0)
	}

	repair := func(originalCodeword, channelInducedCodeword mat2.Vector) (codeword mat2.Vector) {
		fixed, _, _ := softdecision.SumProductLLR(linearBlock.H, BPSKToLLR(channelInducedCodeword, E_bPerN_0), 20)
		return BitsToBPSK(fixed)
	}

	checkpoint := func(updatedStats Stats) {}

	stats := BenchmarkBPSK(context.Background(), 1000, 0, exhaustiveMessages, encode, channel, repair, BPSKMetrics(linearBlock), checkpoint, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Codeword:0.00(+/-0.00), Message:0.00(+/-0.00), Parity:0.00(+/-0.00)}
}

package bpsk

import (
	"context"
	"fmt"

	"github.com/nathanhack/ldpc/benchmarking"
	"github.com/nathanhack/ldpc/cmd/internal/tools"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bitflipping/harddecision"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/softdecision"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
	mat2 "gonum.org/v1/gonum/mat"
)

var (
	Trials       uint
	EbN0         []float64
	Threads      uint
	MaxIter      uint
	Seed         int64
	Alpha        float64
	EtaThreshold float64
)

//Decoder decodes the channel log likelihood ratios of one codeword.
type Decoder func(l *linearblock.LinearBlock, llr mat2.Vector, maxIter int) mat.SparseVector

//SumProduct decodes with the LLR seeded sum product decoder.
func SumProduct(l *linearblock.LinearBlock, llr mat2.Vector, maxIter int) mat.SparseVector {
	fixed, _, err := softdecision.SumProductLLR(l.H, llr, maxIter)
	if err != nil {
		panic(err)
	}
	return fixed
}

//DWBF decodes the hard decision of the llr weighted by its reliabilities.
func DWBF(l *linearblock.LinearBlock, llr mat2.Vector, maxIter int) mat.SparseVector {
	received, reliability, err := harddecision.HardDecision(llr)
	if err != nil {
		panic(err)
	}
	//DWBF keeps per codeword state so every trial gets its own
	alg := &harddecision.DWBF{
		H:            l.H,
		AlphaFactor:  Alpha,
		EtaThreshold: EtaThreshold,
		Reliability:  reliability,
	}
	fixed, _, err := harddecision.BitFlipping(alg, l.H, received, maxIter)
	if err != nil {
		panic(err)
	}
	return fixed
}

//RunBPSK simulates BPSK over an AWGN channel with the given E_b/N_0 and decodes with the channel LLRs.
func RunBPSK(ctx context.Context,
	l *linearblock.LinearBlock,
	generator *benchmarking.Generator,
	E_bPerN_0 float64, trials, threads, maxIter int,
	decoder Decoder,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) mat.SparseVector {
		return generator.Message(l.MessageLength())
	}

	encode := func(message mat.SparseVector) (codeword mat2.Vector) {
		return benchmarking.BitsToBPSK(l.Encode(message))
	}

	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		return generator.NoiseBPSK(codeword, E_bPerN_0)
	}

	repair := func(originalCodeword, channelInducedCodeword mat2.Vector) (codeword mat2.Vector) {
		return benchmarking.BitsToBPSK(decoder(l, benchmarking.BPSKToLLR(channelInducedCodeword, E_bPerN_0), maxIter))
	}

	return benchmarking.BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, encode, channel, repair, benchmarking.BPSKMetrics(l), checkpoints, previousStats, showProgress)
}

var SumProductRun = Command("BPSK:softdecision/SumProductLLR", SumProduct)

var DwbfRun = Command("BPSK:harddecision/DWBF", DWBF)

//Command creates the run func of a BPSK simulation with the decoder.
func Command(typeInfo string, decoder Decoder) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		run(typeInfo, decoder, args)
	}
}

func run(typeInfo string, decoder Decoder, args []string) {
	if len(args) != 2 {
		fmt.Println("requires both ECC_FILE RESULT_JSON")
		return
	}
	ctx := tools.SignalContext()

	ecc, err := tools.LoadLinearBlockECC(ctx, args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	data, err := tools.PrepareResults(args[1], typeInfo, ecc)
	if err != nil {
		fmt.Println(err)
		return
	}

	generator := benchmarking.NewGenerator(Seed)
	step := func(ctx context.Context, ebn0 float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunBPSK(ctx, ecc, generator, ebn0, trials, threads, int(MaxIter), decoder, previousStats, checkpoints, false)
	}
	tools.Simulate(ctx, data, args[1], int(Trials), int(Threads), EbN0, step)
}

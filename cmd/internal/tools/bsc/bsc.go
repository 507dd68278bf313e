package bsc

import (
	"context"
	"fmt"

	"github.com/nathanhack/ldpc/benchmarking"
	"github.com/nathanhack/ldpc/cmd/internal/tools"
	"github.com/nathanhack/ldpc/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	MaxIter          uint
	Seed             int64
)

//Decoder creates the correction of a BSC simulation for the linear block.
type Decoder func(l *linearblock.LinearBlock, maxIter int) benchmarking.BinarySymmetricChannelCorrection

//RunBSC simulates the binary symmetric channel, every codeword gets crossoverProbability*n bits flipped.
func RunBSC(ctx context.Context,
	l *linearblock.LinearBlock,
	generator *benchmarking.Generator,
	crossoverProbability float64, trials, threads int,
	correctionAlg benchmarking.BinarySymmetricChannelCorrection,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) mat.SparseVector {
		return generator.Message(l.MessageLength())
	}

	encode := func(message mat.SparseVector) (codeword mat.SparseVector) {
		return l.Encode(message)
	}

	channel := func(originalCodeword mat.SparseVector) (erroredCodeword mat.SparseVector) {
		count := int(crossoverProbability * float64(originalCodeword.Len()))
		return generator.FlipBitCount(originalCodeword, count)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, correctionAlg, benchmarking.Metrics(l), checkpoints, previousStats, showProgress)
}

//Command returns the Run func of a BSC simulation using decoder, typeInfo identifies the results.
func Command(typeInfo string, decoder Decoder) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println("requires both ECC_FILE RESULT_JSON")
			return
		}
		ctx := tools.SignalContext()

		//first get the ECC to use
		ecc, err := tools.LoadLinearBlockECC(ctx, args[0])
		if err != nil {
			fmt.Println(err)
			return
		}

		//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
		data, err := tools.PrepareResults(args[1], typeInfo, ecc)
		if err != nil {
			fmt.Println(err)
			return
		}

		generator := benchmarking.NewGenerator(Seed)
		correctionAlg := decoder(ecc, int(MaxIter))
		step := func(ctx context.Context, p float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
			return RunBSC(ctx, ecc, generator, p, trials, threads, correctionAlg, previousStats, checkpoints, false)
		}
		tools.Simulate(ctx, data, args[1], int(Trials), int(Threads), ErrorProbability, step)
	}
}

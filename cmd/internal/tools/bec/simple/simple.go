package simple

import (
	"context"
	"fmt"
	"reflect"

	"github.com/nathanhack/ldpc/benchmarking"
	"github.com/nathanhack/ldpc/cmd/internal/tools"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bec"
	bec2 "github.com/nathanhack/ldpc/linearblock/messagepassing/bec"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bec/iterative"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	Seed             int64
)

var BecRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		fmt.Println("requires both ECC_FILE RESULT_JSON")
		return
	}

	// handle ctrl-C's to kill in a nice way
	ctx := tools.SignalContext()

	//first get the ECC to use
	ecc, err := tools.LoadLinearBlockECC(ctx, args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	data, err := tools.PrepareResults(args[1], typeInfo(), ecc)
	if err != nil {
		fmt.Println(err)
		return
	}

	correctionAlg := func(originalCodeword, channelInducedCodeword []bec2.ErasureBit) (fixedChannelInducedCodeword []bec2.ErasureBit) {
		alg := &iterative.Simple{
			H: ecc.H,
		}
		fixed, _, err := bec2.Flipping(alg, ecc.H, channelInducedCodeword)
		if err != nil {
			panic(err)
		}
		return fixed
	}

	generator := benchmarking.NewGenerator(Seed)
	step := func(ctx context.Context, p float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return bec.RunBEC(ctx, ecc, generator, p, trials, threads, correctionAlg, previousStats, checkpoints, false)
	}
	tools.Simulate(ctx, data, args[1], int(Trials), int(Threads), ErrorProbability, step)
}

func typeInfo() string {
	t := reflect.TypeOf(iterative.Simple{})
	return fmt.Sprintf("BEC:%v/%v", t.PkgPath(), t.Name())
}

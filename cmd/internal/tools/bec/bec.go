package bec

import (
	"context"

	"github.com/nathanhack/ldpc/benchmarking"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bec"
	mat "github.com/nathanhack/sparsemat"
)

//RunBEC simulates the binary erasure channel, every codeword gets percentage*n bits erased.
func RunBEC(ctx context.Context,
	l *linearblock.LinearBlock,
	generator *benchmarking.Generator,
	percentage float64, trials, threads int,
	correctionAlg benchmarking.BinaryErasureChannelCorrection,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgressBar bool) benchmarking.Stats {

	createMessage := func(trial int) mat.SparseVector {
		return generator.Message(l.MessageLength())
	}

	encode := func(message mat.SparseVector) (codeword []bec.ErasureBit) {
		return bec.FromVector(l.Encode(message), nil)
	}

	channel := func(originalCodeword []bec.ErasureBit) (erroredCodeword []bec.ErasureBit) {
		count := int(percentage * float64(len(originalCodeword)))
		return generator.EraseCount(originalCodeword, count)
	}

	return benchmarking.BenchmarkBECContinueStats(ctx, trials, threads, createMessage, encode, channel, correctionAlg, benchmarking.ErasureMetrics(l), checkpoints, previousStats, showProgressBar)
}

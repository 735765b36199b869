package bsc

import (
	"context"
	"fmt"

	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools"
	"github.com/nathanhack/secded/linearblock/secded"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
)

const TypeInfo = "BSC:secded"

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	ExactCount       bool
)

var BscRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}

	codec := secded.New()

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.NewOrLoadResults(args[0], TypeInfo, codec)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, p := range ErrorProbability {
		if p < 0 || p > 0.5 {
			fmt.Printf("crossover probability %v must be in [0, 0.5]\n", p)
			return
		}
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	step := func(ctx context.Context, p float64, trials, threads int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats {
		return RunBSC(ctx, codec, p, ExactCount, trials, threads, previous, checkpoint, false)
	}
	tools.RunSimulation(ctx, data, ErrorProbability, int(Trials), int(Threads), args[0], step, true)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

//RunBSC sends random messages through a binary symmetric channel. With exactCount every
// codeword gets round(crossoverProbability * 11) flipped bits, otherwise each bit flips
// independently with the crossoverProbability.
func RunBSC(ctx context.Context,
	codec *secded.Codec,
	crossoverProbability float64, exactCount bool,
	trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(secded.MessageLength)
	}

	channel := func(originalCodeword mat.SparseVector) (erroredCodeword mat.SparseVector) {
		if exactCount {
			count := int(crossoverProbability*float64(originalCodeword.Len()) + 0.5)
			return benchmarking.RandomFlipBitCount(originalCodeword, count)
		}
		return benchmarking.RandomFlipProbability(originalCodeword, crossoverProbability)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, codec, trials, threads, createMessage, channel, checkpoints, previousStats, showProgress)
}

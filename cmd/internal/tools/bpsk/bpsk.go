package bpsk

import (
	"context"
	"fmt"

	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools"
	"github.com/nathanhack/secded/linearblock/secded"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
	mat2 "gonum.org/v1/gonum/mat"
)

const TypeInfo = "BPSK:secded"

var (
	Trials  uint
	EbN0    []float64
	Threads uint
)

var BpskRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}

	for _, e := range EbN0 {
		if e <= 0 {
			fmt.Printf("Eb/N0 %v must be > 0\n", e)
			return
		}
	}

	codec := secded.New()
	data, err := tools.NewOrLoadResults(args[0], TypeInfo, codec)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	step := func(ctx context.Context, e float64, trials, threads int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats {
		return RunBPSK(ctx, codec, e, trials, threads, previous, checkpoint, false)
	}
	tools.RunSimulation(ctx, data, EbN0, int(Trials), int(Threads), args[0], step, true)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

//RunBPSK sends random messages as BPSK symbols through an AWGN channel with the given
// Eb/N0 (linear, not dB) and decodes the hard decision.
func RunBPSK(ctx context.Context,
	codec *secded.Codec,
	ebPerN0 float64,
	trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(secded.MessageLength)
	}

	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		return benchmarking.RandomNoiseBPSK(codeword, ebPerN0)
	}

	return benchmarking.BenchmarkBPSKContinueStats(ctx, codec, trials, threads, createMessage, channel, checkpoints, previousStats, showProgress)
}

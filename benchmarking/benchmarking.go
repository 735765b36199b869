package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/secded/linearblock/secded"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	mat2 "gonum.org/v1/gonum/mat"
)

type Stats struct {
	ChannelCodewordError avgstd.AvgStd // probability of a bit error caused by the channel
	MessageError         avgstd.AvgStd // probability of a message bit error after decoding, delivered words only
	WordError            avgstd.AvgStd // probability a word is not delivered intact
	Valid                int
	Corrected            int
	Uncorrectable        int
	Miscorrected         int // delivered as OK or FIXED but the message is wrong
}

func (s Stats) String() string {
	return fmt.Sprintf("{Channel:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f), Word:%0.02f(+/-%0.02f), OK:%v, FIXED:%v, ERROR:%v, Miscorrected:%v}",
		s.ChannelCodewordError.Mean, math.Sqrt(s.ChannelCodewordError.SampledVariance()),
		s.MessageError.Mean, math.Sqrt(s.MessageError.SampledVariance()),
		s.WordError.Mean, math.Sqrt(s.WordError.SampledVariance()),
		s.Valid, s.Corrected, s.Uncorrectable, s.Miscorrected,
	)
}

//Trials returns the number of trials the stats were built from.
func (s Stats) Trials() int {
	return s.ChannelCodewordError.Count
}

//Count returns how many trials decoded to r.
func (s Stats) Count(r secded.Result) int {
	switch r {
	case secded.Valid:
		return s.Valid
	case secded.Corrected:
		return s.Corrected
	case secded.Uncorrectable:
		return s.Uncorrectable
	}
	return 0
}

// Trial is the outcome of sending one message through a channel and decoding it.
type Trial struct {
	Message      mat.SparseVector
	Decoded      mat.SparseVector // nil when Uncorrectable
	Result       secded.Result
	ChannelFlips int // bits of the codeword changed by the channel
}

func (s *Stats) update(t Trial) {
	s.ChannelCodewordError.Update(float64(t.ChannelFlips) / float64(secded.CodewordLength))

	switch t.Result {
	case secded.Valid:
		s.Valid++
	case secded.Corrected:
		s.Corrected++
	case secded.Uncorrectable:
		s.Uncorrectable++
	}

	if t.Decoded == nil {
		s.WordError.Update(1)
		return
	}

	messageErrors := t.Decoded.HammingDistance(t.Message)
	s.MessageError.Update(float64(messageErrors) / float64(secded.MessageLength))
	if messageErrors > 0 {
		s.Miscorrected++
		s.WordError.Update(1)
	} else {
		s.WordError.Update(0)
	}
}

type Checkpoints func(updatedStats Stats)

type BinaryMessageConstructor func(trial int) (message mat.SparseVector)

//specific to BSC
type BinarySymmetricChannel func(codeword mat.SparseVector) (channelInducedCodeword mat.SparseVector)

//specific to BPSK
type BPSKChannel func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector)

func BenchmarkBSC(ctx context.Context,
	codec *secded.Codec,
	trials, threads int,
	createMessage BinaryMessageConstructor,
	channel BinarySymmetricChannel,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBSCContinueStats(ctx, codec, trials, threads, createMessage, channel, checkpoints, Stats{}, showProgress)
}

func BenchmarkBSCContinueStats(ctx context.Context,
	codec *secded.Codec,
	trials, threads int,
	createMessage BinaryMessageConstructor,
	channel BinarySymmetricChannel,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {

	trial := func(i int) Trial {
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword, err := codec.Encode(message)
		if err != nil {
			panic(err)
		}

		// send through the channel to get channel induced errors
		received := channel(codeword)

		// repair the codeword (if possible)
		decoded, result, err := codec.Decode(received)
		if err != nil {
			panic(err)
		}

		return Trial{
			Message:      message,
			Decoded:      decoded,
			Result:       result,
			ChannelFlips: codeword.HammingDistance(received),
		}
	}

	return run(ctx, trials, threads, trial, checkpoints, previousStats, showProgress)
}

func BenchmarkBPSK(ctx context.Context,
	codec *secded.Codec,
	trials, threads int,
	createMessage BinaryMessageConstructor,
	channel BPSKChannel,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBPSKContinueStats(ctx, codec, trials, threads, createMessage, channel, checkpoints, Stats{}, showProgress)
}

//BenchmarkBPSKContinueStats maps codewords onto BPSK symbols, sends them through the channel
// and makes a hard decision (>=0 is a 1) before decoding.
func BenchmarkBPSKContinueStats(ctx context.Context,
	codec *secded.Codec,
	trials, threads int,
	createMessage BinaryMessageConstructor,
	channel BPSKChannel,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {

	trial := func(i int) Trial {
		message := createMessage(i)

		codeword, err := codec.Encode(message)
		if err != nil {
			panic(err)
		}

		symbols := BitsToBPSK(codeword)
		received := channel(symbols)

		decoded, result, err := codec.Decode(BPSKToBits(received, 0))
		if err != nil {
			panic(err)
		}

		return Trial{
			Message:      message,
			Decoded:      decoded,
			Result:       result,
			ChannelFlips: HammingDistanceBPSK(symbols, received),
		}
	}

	return run(ctx, trials, threads, trial, checkpoints, previousStats, showProgress)
}

func run(ctx context.Context,
	trials, threads int,
	trial func(i int) Trial,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.Trials()
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	for i := previousStats.Trials(); i < trials; i++ {
		index := i
		pool.Add(func() {
			if showProgress {
				bar.Increment()
			}
			t := trial(index)

			statsMux.Lock()
			previousStats.update(t)
			if checkpoints != nil {
				checkpoints(previousStats) //give them the updated checkpoint
			}
			statsMux.Unlock()
		})
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

//BitsToBPSK converts a [0,1] vector to a [-1,1] vector
func BitsToBPSK(a mat.SparseVector) mat2.Vector {
	output := mat2.NewVecDense(a.Len(), nil)

	for i := 0; i < a.Len(); i++ {
		if a.At(i) > 0 {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

//BPSKToBits conversts a BPSK vector [-1,1] to sparse vector [0,1].
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) mat.SparseVector {
	result := mat.CSRVec(a.Len())

	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) >= boundary {
			result.Set(i, 1)
		}
	}
	return result
}

//HammingDistanceBPSK calculates number of bits different.
// Assumes >=0 is 1 and <0 is 0
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistanceBPSK(a, b mat2.Vector) int {
	min := a.Len()
	max := b.Len()
	if min > max {
		min = b.Len()
		max = a.Len()
	}

	count := 0
	for i := 0; i < min; i++ {
		aOne := a.AtVec(i) >= 0
		bOne := b.AtVec(i) >= 0
		if aOne != bOne {
			count++
		}
	}
	return max - min + count
}

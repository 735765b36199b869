package bsc

import (
	"context"
	"strconv"
	"testing"

	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/linearblock/secded"
)

func TestRunBSC(t *testing.T) {
	codec := secded.New()
	tests := []struct {
		probability float64
		result      secded.Result
	}{
		{0, secded.Valid},
		{0.09, secded.Corrected},     // one flipped bit
		{0.18, secded.Uncorrectable}, // two flipped bits
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			stats := RunBSC(context.Background(), codec, test.probability, true, 200, 2, benchmarking.Stats{}, nil, false)
			if stats.Count(test.result) != 200 {
				t.Fatalf("expected 200 %v but found %v", test.result, stats)
			}
		})
	}
}

func TestRunBSC_Probability(t *testing.T) {
	stats := RunBSC(context.Background(), secded.New(), 0, false, 50, 1, benchmarking.Stats{}, nil, false)
	if stats.Valid != 50 || stats.ChannelCodewordError.Mean != 0 {
		t.Fatalf("expected a noise free channel but found %v", stats)
	}
}

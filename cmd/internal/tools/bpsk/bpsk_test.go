package bpsk

import (
	"context"
	"testing"

	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/linearblock/secded"
)

func TestRunBPSK(t *testing.T) {
	stats := RunBPSK(context.Background(), secded.New(), 4.0, 500, 2, benchmarking.Stats{}, nil, false)

	if stats.Trials() != 500 {
		t.Fatalf("expected 500 trials but found %v", stats.Trials())
	}
	total := stats.Valid + stats.Corrected + stats.Uncorrectable
	if total != 500 {
		t.Fatalf("expected every trial to have a result but found %v", stats)
	}
	//the channel error rate at Eb/N0 = 4 is about 0.2%
	if stats.ChannelCodewordError.Mean > 0.05 {
		t.Fatalf("expected a small channel error but found %v", stats)
	}
}

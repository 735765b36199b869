package csv

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools"
)

func statsWithMean(mean float64) benchmarking.Stats {
	s := benchmarking.Stats{}
	s.ChannelCodewordError.Update(mean)
	return s
}

func TestWrite(t *testing.T) {
	stats := []*tools.SimulationStats{
		{Stats: map[float64]benchmarking.Stats{0.1: statsWithMean(0.5), 0.01: statsWithMean(0.25)}},
		{Stats: map[float64]benchmarking.Stats{0.2: statsWithMean(1)}},
	}

	if actual := Parameters(stats); !reflect.DeepEqual(actual, []float64{0.01, 0.1, 0.2}) {
		t.Fatalf("expected sorted parameters but found %v", actual)
	}

	buf := bytes.Buffer{}
	err := Write(&buf, []string{"a.json", "b.json"}, stats, selector())
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	expected := "Results File,0.01,0.1,0.2\na,0.25,0.5,\nb,,,1\n"
	if buf.String() != expected {
		t.Fatalf("expected %q but found %q", expected, buf.String())
	}
}

package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools"
)

func TestRender(t *testing.T) {
	s := benchmarking.Stats{}
	s.WordError.Update(1)
	stats := []*tools.SimulationStats{
		{Stats: map[float64]benchmarking.Stats{0.18: s}},
	}

	buf := bytes.Buffer{}
	if err := Render(&buf, []string{"bsc.json"}, stats); err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if !strings.Contains(buf.String(), "bsc.json") {
		t.Fatalf("expected the series name in the chart")
	}
}

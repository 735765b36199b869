package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var OutputFile string
var MessageError bool
var WordError bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	stats := make([]*tools.SimulationStats, len(args))
	var err error
	for i, resultFile := range args {
		stats[i], err = tools.LoadResults(resultFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		if stats[i] == nil {
			fmt.Printf("results file %v does not exist\n", resultFile)
			return
		}
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = Write(f, args, stats, selector())
	if err != nil {
		fmt.Println(err)
	}
}

func selector() func(benchmarking.Stats) float64 {
	switch {
	case MessageError:
		return func(s benchmarking.Stats) float64 { return s.MessageError.Mean }
	case WordError:
		return func(s benchmarking.Stats) float64 { return s.WordError.Mean }
	default:
		return func(s benchmarking.Stats) float64 { return s.ChannelCodewordError.Mean }
	}
}

//Parameters returns every error parameter found in stats, sorted.
func Parameters(stats []*tools.SimulationStats) []float64 {
	parameters := make([]float64, 0)
	for _, s := range stats {
		for p := range s.Stats {
			if !slices.Contains(parameters, p) {
				parameters = append(parameters, p)
			}
		}
	}
	slices.Sort(parameters)
	return parameters
}

//Write outputs one row per results file and one column per error parameter.
func Write(out io.Writer, names []string, stats []*tools.SimulationStats, value func(benchmarking.Stats) float64) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	parameters := Parameters(stats)
	header := []string{"Results File"}
	for _, p := range parameters {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(names[i], filepath.Ext(names[i]))

		for j, p := range parameters {
			v, has := s.Stats[p]
			if has {
				record[j+1] = fmt.Sprintf("%v", value(v))
			}
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	return nil
}

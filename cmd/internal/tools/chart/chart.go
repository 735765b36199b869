package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/nathanhack/secded/cmd/internal/tools"
	"github.com/nathanhack/secded/cmd/internal/tools/csv"
	"github.com/spf13/cobra"
)

var OutputFile string

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	// loop through all the results files and collect data needed for displaying
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

	err = Render(f, args, stats)
	if err != nil {
		fmt.Println(err)
	}
}

//Render writes an html bar chart of the word error rate per error parameter, one series per results file.
func Render(w io.Writer, names []string, stats []*tools.SimulationStats) error {
	xvalues := csv.Parameters(stats)
	xnames := make([]string, len(xvalues))
	for i, x := range xvalues {
		xnames[i] = fmt.Sprint(x)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: "Word Error Rates",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Error Parameter",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Word Error",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)
	for i, s := range stats {
		bar.AddSeries(names[i], series(s, xvalues))
	}

	return bar.Render(w)
}

func series(stat *tools.SimulationStats, values []float64) []opts.BarData {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: x.WordError.Mean,
		}
	}
	return results
}

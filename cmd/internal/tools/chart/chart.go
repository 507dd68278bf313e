package chart

import (
	"fmt"
	"os"

	"github.com/nathanhack/ldpc/cmd/internal/tools"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string
var MessageError bool
var ParityError bool

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	// loop through all the results files and collect data needed for displaying
	stats, xvalues, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: "Error Rates",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Channel Parameter",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Remaining Error",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	line.SetXAxis(xAxisNames(xvalues))

	for i, s := range stats {
		line.AddSeries(args[i], series(s, xvalues))
	}

	if err := line.Render(f); err != nil {
		fmt.Println(err)
	}
}

func xAxisNames(values []float64) []string {
	strs := make([]string, 0, len(values))
	for _, n := range values {
		strs = append(strs, fmt.Sprint(n))
	}
	return strs
}

func series(stat *tools.SimulationStats, values []float64) []opts.LineData {
	results := make([]opts.LineData, len(values))
	null := opts.LineData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.LineData{
			Value: tools.Select(x, MessageError, ParityError).Mean,
		}
	}
	return results
}

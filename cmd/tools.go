package cmd

import (
	"github.com/nathanhack/ldpc/cmd/internal/tools/bec/simple"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bpsk"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bsc"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bsc/dwbf"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bsc/gallager"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bsc/rowflip"
	"github.com/nathanhack/ldpc/cmd/internal/tools/bsc/sumproduct"
	"github.com/nathanhack/ldpc/cmd/internal/tools/chart"
	"github.com/nathanhack/ldpc/cmd/internal/tools/csv"
	"github.com/nathanhack/ldpc/cmd/internal/tools/girth"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for linearblock ECCs`,
}

// toolsLinearblockCmd represents the linearblock command
var toolsLinearblockCmd = &cobra.Command{
	Use:     "linearblock",
	Aliases: []string{"lb", "l"},
	Short:   "Linearblock channel simulators",
	Long:    `Channel simulators for linearblock ECCs`,
}

// toolsBecCmd represents the bec command
var toolsBecCmd = &cobra.Command{
	Use:   "bec ECC_FILE RESULT_JSON",
	Short: "An erasure channel simulator",
	Long:  `A simple erasure channel simulator for linearblock ECCs using the peeling decoder`,
	Args:  cobra.ExactArgs(2),
	Run:   simple.BecRun,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator for linearblock ECCs`,
}

// toolsRowFlipCmd represents the rowflip command
var toolsRowFlipCmd = &cobra.Command{
	Use:     "rowflip ECC_FILE RESULT_JSON",
	Aliases: []string{"r"},
	Short:   "A linearblock BSC simulator with the row flipping algorithm",
	Long:    `A linearblock BSC simulator with the row flipping algorithm, every unsatisfied check flips all of its bits`,
	Args:    cobra.ExactArgs(2),
	Run:     rowflip.RowFlipRun,
}

// toolsGallagerCmd represents the gallager command
var toolsGallagerCmd = &cobra.Command{
	Use:     "gallager ECC_FILE RESULT_JSON",
	Aliases: []string{"g"},
	Short:   "A linearblock BSC simulator with gallager based bit flipping algorithm",
	Long:    `A linearblock BSC simulator with gallager based bit flipping algorithm`,
	Args:    cobra.ExactArgs(2),
	Run:     gallager.GallagerRun,
}

// toolsDwbfCmd represents the dwbf command
var toolsDwbfCmd = &cobra.Command{
	Use:     "dwbf ECC_FILE RESULT_JSON",
	Aliases: []string{"d"},
	Short:   "A linearblock BSC simulator with dwbf based bit flipping algorithm",
	Long:    `A linearblock BSC simulator with dwbf based bit flipping algorithm`,
	Args:    cobra.ExactArgs(2),
	Run:     dwbf.DwbfRun,
}

// toolsSumProductCmd represents the sumproduct command
var toolsSumProductCmd = &cobra.Command{
	Use:     "sumproduct ECC_FILE RESULT_JSON",
	Aliases: []string{"s"},
	Short:   "A linearblock BSC simulator with the bit seeded sum product decoder",
	Long:    `A linearblock BSC simulator with the bit seeded sum product decoder`,
	Args:    cobra.ExactArgs(2),
	Run:     sumproduct.SumProductRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk",
	Short: "A BPSK over AWGN channel simulator",
	Long:  `A BPSK over AWGN channel simulator for linearblock ECCs`,
}

// toolsBpskSumProductCmd represents the bpsk sumproduct command
var toolsBpskSumProductCmd = &cobra.Command{
	Use:     "sumproduct ECC_FILE RESULT_JSON",
	Aliases: []string{"s"},
	Short:   "A linearblock BPSK simulator with the LLR sum product decoder",
	Long:    `A linearblock BPSK simulator decoding the channel log likelihood ratios with the sum product decoder`,
	Args:    cobra.ExactArgs(2),
	Run:     bpsk.SumProductRun,
}

// toolsBpskDwbfCmd represents the bpsk dwbf command
var toolsBpskDwbfCmd = &cobra.Command{
	Use:     "dwbf ECC_FILE RESULT_JSON",
	Aliases: []string{"d"},
	Short:   "A linearblock BPSK simulator with the reliability weighted dwbf decoder",
	Long:    `A linearblock BPSK simulator flipping the hard decision with dwbf weighted by the channel reliabilities`,
	Args:    cobra.ExactArgs(2),
	Run:     bpsk.DwbfRun,
}

// toolsGirthCmd represents the girth command
var toolsGirthCmd = &cobra.Command{
	Use:     "girth MATRIX_FILE",
	Aliases: []string{"gi"},
	Short:   "Prints the girth of the tanner graph",
	Long:    `Prints the girth of the tanner graph of the parity check matrix and one of its smallest cycles`,
	Args:    cobra.ExactArgs(1),
	Run:     girth.GirthRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Args:    cobra.MinimumNArgs(1),
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to an HTML line chart",
	Long:    `Export to an HTML line chart`,
	Args:    cobra.MinimumNArgs(1),
	Run:     chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)
	toolsCmd.AddCommand(toolsGirthCmd)
	toolsGirthCmd.Flags().UintVarP(&girth.Threads, "threads", "t", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsChansimCmd.AddCommand(toolsLinearblockCmd)

	toolsLinearblockCmd.AddCommand(toolsBecCmd)
	toolsBecCmd.Flags().UintVarP(&simple.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBecCmd.Flags().Float64SliceVarP(&simple.ErrorProbability, "probability", "p", []float64{0.01, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.99}, "probability of erasure [0, 1)")
	toolsBecCmd.Flags().UintVar(&simple.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBecCmd.Flags().Int64Var(&simple.Seed, "seed", 1, "seed of the message and erasure generator")

	toolsLinearblockCmd.AddCommand(toolsBscCmd)
	for _, c := range []*cobra.Command{toolsRowFlipCmd, toolsGallagerCmd, toolsDwbfCmd, toolsSumProductCmd} {
		toolsBscCmd.AddCommand(c)
		c.Flags().UintVarP(&bsc.Trials, "trials", "t", 1_000_000, "the number of trials per step")
		c.Flags().Float64SliceVarP(&bsc.ErrorProbability, "probability", "p", []float64{0.01, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50}, "probability of crossover errors to test [0, 0.5]")
		c.Flags().UintVar(&bsc.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
		c.Flags().UintVarP(&bsc.MaxIter, "iters", "i", 0, "max number of iterations the decoder is allowed (0 means the decoder default)")
		c.Flags().Int64Var(&bsc.Seed, "seed", 1, "seed of the message and crossover generator")
	}

	toolsLinearblockCmd.AddCommand(toolsBpskCmd)
	toolsDwbfCmd.Flags().Float64VarP(&dwbf.Alpha, "alpha", "a", .5, "hyperparameter 0<α<1")
	toolsDwbfCmd.Flags().Float64VarP(&dwbf.EtaThreshold, "eta", "e", 0.0, "hyperparameter η threshold: no requirement but frequently 0.0 is a good value")

	for _, c := range []*cobra.Command{toolsBpskSumProductCmd, toolsBpskDwbfCmd} {
		toolsBpskCmd.AddCommand(c)
		c.Flags().UintVarP(&bpsk.Trials, "trials", "t", 1_000_000, "the number of trials per step")
		c.Flags().Float64SliceVarP(&bpsk.EbN0, "ebn0", "e", []float64{0.5, 1, 1.5, 2, 3, 4, 6, 8}, "E_b/N_0 values (linear, not dB) to test")
		c.Flags().UintVar(&bpsk.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
		c.Flags().UintVarP(&bpsk.MaxIter, "iters", "i", 0, "max number of iterations the decoder is allowed (0 means the decoder default)")
		c.Flags().Int64Var(&bpsk.Seed, "seed", 1, "seed of the message and noise generator")
	}
	toolsBpskDwbfCmd.Flags().Float64VarP(&bpsk.Alpha, "alpha", "a", .5, "hyperparameter 0<α<1")
	toolsBpskDwbfCmd.Flags().Float64Var(&bpsk.EtaThreshold, "eta", 0.0, "hyperparameter η threshold: no requirement but frequently 0.0 is a good value")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.MessageError, "message", "m", false, "outputs the MessageError instead of CodewordError or ParityError")
	toolsCSVCmd.Flags().BoolVarP(&csv.ParityError, "parity", "p", false, "outputs the ParityError instead of CodewordError or MessageError")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().BoolVarP(&chart.MessageError, "message", "m", false, "charts the MessageError instead of CodewordError or ParityError")
	toolsChartCmd.Flags().BoolVarP(&chart.ParityError, "parity", "p", false, "charts the ParityError instead of CodewordError or MessageError")
}

package cmd

import (
	"github.com/nathanhack/ldpc/cmd/internal/decode"
	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode MATRIX_FILE BITS",
	Aliases: []string{"d"},
	Short:   "Decodes a received word",
	Long: `Decodes a received word with the parity check matrix in MATRIX_FILE (.json or .yaml).
BITS is a string of 0s and 1s. Prints the corrected bits, whether all checks are satisfied
and the remaining syndrome weight.`,
	Args: cobra.ExactArgs(2),
	Run:  decode.DecodeRun,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&decode.Alg, "alg", "a", "rowflip", "the decoder: rowflip, gallager, dwbf or sumproduct")
	decodeCmd.Flags().Float64Var(&decode.Alpha, "alpha", .5, "dwbf hyperparameter 0<α<1")
	decodeCmd.Flags().Float64Var(&decode.EtaThreshold, "eta", 0.0, "dwbf hyperparameter η threshold: no requirement but frequently 0.0 is a good value")
	decodeCmd.Flags().IntVarP(&decode.Iters, "iters", "i", 0, "max number of iterations; 0 uses the decoder default")
}

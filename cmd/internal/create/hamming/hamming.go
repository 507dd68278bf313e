package hamming

import (
	"fmt"

	"github.com/nathanhack/ldpc/cmd/internal/tools"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ParityBits uint
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	if ParityBits < 3 {
		fmt.Println("parity must be >= 3")
		return
	}
	ctx := tools.SignalContext()

	h, err := hamming.New(ctx, int(ParityBits))
	if err != nil {
		fmt.Println("Unable to create hamming code: ", err)
		return
	}
	logrus.Debugf("created hamming code (%v,%v)", h.CodewordLength(), h.MessageLength())

	err = linearblock.SaveFile(args[0], h)
	if err != nil {
		fmt.Println("unable to write file: ", err)
	}
}

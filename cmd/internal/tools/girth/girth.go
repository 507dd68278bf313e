package girth

import (
	"fmt"

	"github.com/nathanhack/ldpc/cmd/internal/tools"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/spf13/cobra"
)

var Threads uint

var GirthRun = func(cmd *cobra.Command, args []string) {
	lb, err := linearblock.LoadFile(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx := tools.SignalContext()

	checks, bits := lb.H.Dims()
	fmt.Printf("checks: %v bits: %v edges: %v\n", checks, bits, lb.H.Tanner().Edges())

	cycle := linearblock.SmallestCycle(ctx, lb.H, int(Threads))
	if cycle == nil {
		fmt.Println("girth: none (no cycles)")
		return
	}
	fmt.Printf("girth: %v\n", len(cycle))
	fmt.Printf("cycle: %v\n", cycle)
}

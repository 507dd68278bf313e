package gallager

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nathanhack/ldpc/cmd/internal/tools"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/ldpc/gallager"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Checks uint
var Wc uint
var Wr uint
var Smallest uint
var Iter uint
var Threads uint
var Seed int64

var GallagerRun = func(cmd *cobra.Command, args []string) {
	//a zero seed gives something different every time
	seed := Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logrus.Debugf("gallager search seed %v", seed)

	ctx := tools.SignalContext()

	g, err := gallager.Search(ctx, rand.New(rand.NewSource(seed)), int(Checks), int(Wc), int(Wr), int(Smallest), int(Iter), int(Threads))
	if err != nil {
		fmt.Println("Unable to create gallager LDPC: ", err)
		return
	}

	err = linearblock.SaveFile(args[0], g)
	if err != nil {
		fmt.Println("unable to write file: ", err)
	}
}

package linearblock

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fixture6x12 is a full rank 6x12 parity check matrix with row weight 5, shared with
// the decoder tests through internal/testfixture.
var fixture6x12 = fixtureRows(filepath.Join("..", "internal", "testfixture", "fixture6x12.yaml"))

func fixtureRows(path string) [][]int {
	bs, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var d Definition
	if err := yaml.Unmarshal(bs, &d); err != nil {
		panic(err)
	}
	return d.Rows
}

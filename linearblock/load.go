package linearblock

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//Definition is the YAML form of a parity check matrix. Either Rows (dense 0/1 rows)
// or Neighbors (the bit indices of each check) must be given.
type Definition struct {
	Checks    int     `yaml:"checks"`
	Bits      int     `yaml:"bits"`
	Rows      [][]int `yaml:"rows,omitempty"`
	Neighbors [][]int `yaml:"neighbors,omitempty"`
}

//ParityCheckMatrix builds H from the definition.
func (d Definition) ParityCheckMatrix() (*ParityCheckMatrix, error) {
	switch {
	case len(d.Rows) > 0 && len(d.Neighbors) > 0:
		return nil, fmt.Errorf("only one of rows or neighbors may be given")
	case len(d.Rows) > 0:
		if d.Checks != 0 && d.Checks != len(d.Rows) {
			return nil, fmt.Errorf("%w: %v checks declared but %v rows found", ErrDimensionMismatch, d.Checks, len(d.Rows))
		}
		if d.Bits != 0 && d.Bits != len(d.Rows[0]) {
			return nil, fmt.Errorf("%w: %v bits declared but rows have %v", ErrDimensionMismatch, d.Bits, len(d.Rows[0]))
		}
		return FromRows(d.Rows)
	case len(d.Neighbors) > 0:
		if d.Checks != 0 && d.Checks != len(d.Neighbors) {
			return nil, fmt.Errorf("%w: %v checks declared but %v neighbor lists found", ErrDimensionMismatch, d.Checks, len(d.Neighbors))
		}
		return FromNeighbors(d.Bits, d.Neighbors)
	}
	return nil, fmt.Errorf("%w: no rows or neighbors", ErrInvalidShape)
}

//DefinitionOf returns the sparse YAML definition of H.
func DefinitionOf(H *ParityCheckMatrix) Definition {
	checks, bits := H.Dims()
	neighbors := make([][]int, checks)
	for i, row := range H.Tanner().CheckToBits {
		neighbors[i] = append([]int{}, row...)
	}
	return Definition{
		Checks:    checks,
		Bits:      bits,
		Neighbors: neighbors,
	}
}

//ParseYAML reads a Definition and builds H.
func ParseYAML(bs []byte) (*ParityCheckMatrix, error) {
	var d Definition
	if err := yaml.Unmarshal(bs, &d); err != nil {
		return nil, err
	}
	return d.ParityCheckMatrix()
}

//MarshalYAML writes H as a Definition.
func (p *ParityCheckMatrix) MarshalYAML() (interface{}, error) {
	return DefinitionOf(p), nil
}

//LoadFile loads a linear block from a .json file (a serialized LinearBlock)
// or a .yaml/.yml file (a Definition, no generator).
func LoadFile(path string) (*LinearBlock, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", path, err)
	}

	var lb LinearBlock
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		lb.H, err = ParseYAML(bs)
	default:
		err = json.Unmarshal(bs, &lb)
	}
	if err != nil {
		return nil, fmt.Errorf("error while parsing file %v: %w", path, err)
	}

	if err := lb.H.Validate(); err != nil {
		logrus.Warnf("%v: %v", path, err)
	}
	logrus.Debugf("loaded %vx%v parity check matrix from %v", lb.H.Checks(), lb.H.Bits(), path)
	return &lb, nil
}

//SaveFile writes the linear block as JSON, or only H as YAML for a .yaml/.yml path.
func SaveFile(path string, lb *LinearBlock) error {
	var bs []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		bs, err = yaml.Marshal(lb.H)
	default:
		bs, err = json.Marshal(lb)
	}
	if err != nil {
		return fmt.Errorf("unable to serialize: %w", err)
	}
	return os.WriteFile(path, bs, 0644)
}

package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/ldpc/benchmarking"
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

func Md5Sum(H *linearblock.ParityCheckMatrix) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

//LoadLinearBlockECC loads a linear block and derives its generator when the file only holds H.
func LoadLinearBlockECC(ctx context.Context, filepath string) (*linearblock.LinearBlock, error) {
	ecc, err := linearblock.LoadFile(filepath)
	if err != nil {
		return nil, err
	}
	if ecc.Processing != nil {
		return ecc, nil
	}

	logrus.Debugf("deriving generator for %v", filepath)
	return linearblock.New(ctx, ecc.H, false)
}

//LoadResults returns nil, nil when filepath does not exist.
func LoadResults(filepath string) (*SimulationStats, error) {
	bs, err := os.ReadFile(filepath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %v", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %v", filepath, err)
	}
	return nil
}

//SignalContext returns a context canceled on SIGINT or SIGTERM.
func SignalContext() context.Context {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()
	return ctx
}

//PrepareResults loads the results in resultsFile, or creates them, and checks they belong to typeInfo and ecc.
func PrepareResults(resultsFile, typeInfo string, ecc *linearblock.LinearBlock) (*SimulationStats, error) {
	data, err := LoadResults(resultsFile)
	if err != nil {
		return nil, err
	}

	//if data is nil then we create it
	if data == nil {
		data = &SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  Md5Sum(ecc.H),
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	//in either case lets validate it
	if data.TypeInfo != typeInfo {
		return nil, fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != Md5Sum(ecc.H) {
		return nil, fmt.Errorf("results loaded do not match the ECC")
	}
	return data, nil
}

//Step runs the simulation of one error probability up to trials total trials.
type Step func(ctx context.Context, probability float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats

//Simulate runs step for every probability in rounds of threads*10 trials until trials are done
// or ctx is canceled, saving data to outputFilename along the way.
func Simulate(ctx context.Context, data *SimulationStats, outputFilename string, trials, threads int, probabilities []float64, step Step) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	numberOfThread := threads
	if numberOfThread <= 0 {
		numberOfThread = runtime.NumCPU()
	}

	trialsPerIter := numberOfThread * 10
	bar := pb.StartNew(trials * len(probabilities))
trialLoops:
	for t := trialsPerIter; ; t += trialsPerIter {
		if t > trials {
			t = trials
		}
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, p := range probabilities {
			p := p
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[p] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}
			previous := data.Stats[p]
			data.Stats[p] = step(ctx, p, t, numberOfThread, previous, checkpoint)
			bar.Add(data.Stats[p].ChannelCodewordError.Count - previous.ChannelCodewordError.Count)
		}
		if t == trials {
			break
		}
	}
	bar.Finish()

	err := SaveResults(outputFilename, data)
	if err != nil {
		fmt.Println(err)
	}
}

//LoadAllResults loads every results file and returns the sorted union of their probabilities.
func LoadAllResults(files []string) ([]*SimulationStats, []float64, error) {
	stats := make([]*SimulationStats, len(files))
	percentages := make(map[float64]bool)
	for i, resultFile := range files {
		s, err := LoadResults(resultFile)
		if err != nil {
			return nil, nil, err
		}
		if s == nil {
			return nil, nil, fmt.Errorf("results file %v does not exist", resultFile)
		}
		stats[i] = s
		for p := range s.Stats {
			percentages[p] = true
		}
	}

	list := make([]float64, 0, len(percentages))
	for p := range percentages {
		list = append(list, p)
	}
	slices.Sort(list)
	return stats, list, nil
}

//Select returns the message or parity error when requested, else the codeword error.
func Select(s benchmarking.Stats, messageError, parityError bool) avgstd.AvgStd {
	switch {
	case messageError:
		return s.ChannelMessageError
	case parityError:
		return s.ChannelParityError
	}
	return s.ChannelCodewordError
}

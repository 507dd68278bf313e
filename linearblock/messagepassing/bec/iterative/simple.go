package iterative

import (
	"github.com/nathanhack/ldpc/linearblock"
	"github.com/nathanhack/ldpc/linearblock/messagepassing/bec"
)

//Simple is the peeling decoder: any check with exactly one erased bit determines that bit.
type Simple struct {
	H           *linearblock.ParityCheckMatrix
	checkToBits [][]int
	bitToChecks [][]int
}

func (s *Simple) Flip(currentCodeword []bec.ErasureBit) (nextCodeword []bec.ErasureBit, done bool) {
	if s.H == nil {
		panic("Simple BEC flipping algorithm must have the H parity matrix set before using")
	}
	if s.checkToBits == nil {
		s.init()
	}

	nextCodeword = make([]bec.ErasureBit, len(currentCodeword))
	copy(nextCodeword, currentCodeword)
	erasedBits := getErasedIndices(nextCodeword)
	progress := false

	for len(erasedBits) > 0 {

		progress = false

		checksCompleted := make(map[int]bool)
		for _, erasedBit := range erasedBits {
			for _, row := range s.bitToChecks[erasedBit] {
				if checksCompleted[row] {
					continue
				}

				if progressM(nextCodeword, s.checkToBits[row]) {
					progress = true
					checksCompleted[row] = true
				}
			}
		}

		if !progress {
			return nextCodeword, true
		}

		erasedBits = getErasedIndices(nextCodeword)
	}

	return nextCodeword, true
}

func (s *Simple) init() {
	t := s.H.Tanner()
	s.checkToBits = t.CheckToBits
	s.bitToChecks = t.BitToChecks
}

func getErasedIndices(m []bec.ErasureBit) []int {
	erasedBits := make([]int, 0, len(m))

	for i, r := range m {
		if r == bec.Erased {
			erasedBits = append(erasedBits, i)
		}
	}
	return erasedBits
}

func progressM(M []bec.ErasureBit, B []int) bool {
	count := 0
	missing := -1
	value := 0
	for _, b := range B {
		if M[b] != bec.Erased {
			value += int(M[b])
			continue
		}

		count++
		missing = b
		//we can only fix a check node with only 1 missing value
		if count > 1 {
			return false
		}
	}

	if count != 1 {
		return false
	}
	M[missing] = bec.ErasureBit(value % 2)

	return true
}

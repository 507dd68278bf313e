package linearblock

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/nathanhack/threadpool"
)

//Node is a structure containing the Index and state of whether it is a check node or a bit node
type Node struct {
	Index int
	Check bool
}

//Cycle is a slice of Nodes
type Cycle []Node

//String returns a standard rep of the cycle
func (c Cycle) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, n := range c {
		if n.Check {
			sb.WriteString(fmt.Sprintf("c:%v", n.Index))
		} else {
			sb.WriteString(fmt.Sprintf("v:%v", n.Index))
		}
		if i < len(c)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

//Equal compares two cycles to see if they are equal. To be equal
// the first node must be equal but they could be in opposite order.
func (c Cycle) Equal(c2 Cycle) bool {
	if len(c) != len(c2) {
		return false
	}

	if len(c) == 0 {
		return true
	}

	if c[0] != c2[0] {
		return false
	}

	t1 := c[1:]
	t2 := c2[1:]

	forward, backward := true, true
	l := len(t1)
	for i, n := range t1 {
		forward = forward && t2[i] == n
		backward = backward && t2[l-1-i] == n
	}
	return forward || backward
}

//SmallestCycle returns a cycle from the set of smallest cycles of the tanner graph of H,
// starting at the lowest check that lies on one. It returns nil when H has no cycles.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func SmallestCycle(ctx context.Context, H *ParityCheckMatrix, threads int) Cycle {
	t := H.Tanner()
	pool := threadpool.New(ctx, threads)
	mux := sync.Mutex{}
	var smallest Cycle
	smallestCheck := -1
	for i := range t.CheckToBits {
		check := i
		pool.Add(func() {
			mux.Lock()
			limit := math.MaxInt32
			if smallest != nil {
				limit = len(smallest)
			}
			mux.Unlock()

			c := smallestCycle(t, check, limit)
			if c == nil {
				return
			}

			mux.Lock()
			if smallest == nil || len(c) < len(smallest) || (len(c) == len(smallest) && check < smallestCheck) {
				smallest = c
				smallestCheck = check
			}
			mux.Unlock()
		})
	}
	pool.Wait()
	return smallest
}

//smallestCycle follows the same search as CalculateCycleLowerBound but keeps every hop so the
// nodes of the cycle can be recovered.
func smallestCycle(t Tanner, check, maxLen int) Cycle {
	//history[level][node] is the parent of node, levels alternate between
	// bit nodes (even levels) and check nodes (odd levels)
	hop := make(map[int]int)
	for _, bit := range t.CheckToBits[check] {
		hop[bit] = check
	}
	if len(hop) <= 1 {
		return nil
	}
	history := []map[int]int{hop}

	checks := len(t.CheckToBits)
	for level := 1; level < 2*checks && (level+1)*2 <= maxLen; level++ {
		next := make(map[int]int)
		toChecks := level%2 == 1
		for node, parent := range history[level-1] {
			var neighbors []int
			if toChecks {
				neighbors = t.BitToChecks[node]
			} else {
				neighbors = t.CheckToBits[node]
			}
			for _, i := range neighbors {
				if i == parent {
					continue
				}
				if toChecks && i == check {
					return append(Cycle{{Index: check, Check: true}}, path(history, node, level-1)...)
				}
				if other, has := next[i]; has {
					a := path(history, other, level-1)
					b := path(history, node, level-1)
					reverse(b)

					cycle := make(Cycle, 0, len(a)+len(b)+2)
					cycle = append(cycle, Node{Index: check, Check: true})
					cycle = append(cycle, a...)
					cycle = append(cycle, Node{Index: i, Check: toChecks})
					return append(cycle, b...)
				}
				next[i] = node
			}
		}
		if len(next) == 0 {
			return nil
		}
		history = append(history, next)
	}
	return nil
}

//path returns the nodes from level 0 up to index at level.
func path(history []map[int]int, index, level int) Cycle {
	result := make(Cycle, level+1)
	for l := level; l >= 0; l-- {
		result[l] = Node{Index: index, Check: l%2 == 1}
		index = history[l][index]
	}
	return result
}

func reverse(nodes Cycle) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

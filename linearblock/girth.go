package linearblock

import (
	"context"
	"math"
	"sync"

	"github.com/nathanhack/threadpool"
)

// CalculateGirthLowerBoundByEdges returns a bool if true it is possible for the matrix to be
// free of all cycles C_i  where i \in 3<=i<=minGirth. If false, it is impossible to
// be free of all cycles C_i.
func CalculateGirthLowerBoundByEdges(H *ParityCheckMatrix, minGirth int) bool {
	// from the paper Fast Distributed Algorithms for Girth, Cycles and Small Subgraphs by K. Censor-Hillel, et al
	// that if m is free of all C_i cycles 3<=i<=2k then m contains at most n^(1+1/k)+n edges.
	checks, bits := H.Dims()
	edges := H.Tanner().Edges()

	n := float64(checks + bits)
	n = math.Pow(n, 1+1/(float64(minGirth)/2)) + n
	return int(n) >= edges
}

// CalculateGirth calculates the girth of the tanner graph induced by H, -1 if it has no cycles.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func CalculateGirth(ctx context.Context, H *ParityCheckMatrix, threads int) int {
	return CalculateGirthLowerBound(ctx, H, -1, threads)
}

// CalculateGirthLowerBound returns the length of the smallest cycle.
// It searches for cycles with a length <= smallestGirth. If no cycles are found
// that are smaller or equal to smallestGirth then it returns -1.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func CalculateGirthLowerBound(ctx context.Context, H *ParityCheckMatrix, smallestGirth, threads int) int {
	if smallestGirth != -1 && (smallestGirth < 4 || smallestGirth%2 != 0) {
		panic("smallestGirth == -1 or smallestGirth must be a even number >=4")
	}

	pool := threadpool.New(ctx, threads)
	calculated := -1
	mux := sync.Mutex{}
	for i := 0; i < H.Checks(); i++ {
		check := i
		pool.Add(func() {
			mux.Lock()
			limit := smallestGirth
			if calculated != -1 {
				limit = calculated
			}
			mux.Unlock()

			g := CalculateCycleLowerBound(H, check, limit)
			if g == -1 {
				return
			}

			mux.Lock()
			if calculated == -1 || g < calculated {
				calculated = g
			}
			mux.Unlock()
		})
	}
	pool.Wait()
	return calculated
}

// HasGirthSmallerThan will search for cycle smaller than the given cycleLen.
func HasGirthSmallerThan(ctx context.Context, H *ParityCheckMatrix, cycleLen, threads int) bool {
	if cycleLen < 4 {
		panic("cycleLen >=4 required")
	}
	g := CalculateGirthLowerBound(ctx, H, cycleLen-cycleLen%2, threads)
	return g != -1 && g < cycleLen
}

// CalculateCycleLowerBound runs a BFS on the tanner graph starting at the check node, for maxGirth/2 steps
// if maxGirth ==-1 it will search until it finds a cycle
// in either case it returns the length of the cycle (up to maxGirth) or -1 if no cycle was found
func CalculateCycleLowerBound(H *ParityCheckMatrix, check, maxGirth int) int {
	if maxGirth == -1 {
		maxGirth = math.MaxInt32
	}
	t := H.Tanner()

	//parent[node] for the current hop, the hops alternate between
	// bit nodes (even levels) and check nodes (odd levels)
	hop := make(map[int]int)
	for _, bit := range t.CheckToBits[check] {
		hop[bit] = check
	}
	//if there was only one bit node (or less) then there is no way this will have a loop
	if len(hop) <= 1 {
		return -1
	}

	checks := len(t.CheckToBits)
	for level := 1; level < 2*checks && (level+1)*2 <= maxGirth; level++ {
		next := make(map[int]int)
		toChecks := level%2 == 1
		for node, parent := range hop {
			//node is a bit when heading to checks
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
				if _, has := next[i]; has || (toChecks && i == check) {
					return (level + 1) * 2
				}
				next[i] = node
			}
		}
		if len(next) == 0 {
			return -1
		}
		hop = next
	}
	return -1
}

package eax

import (
	"sort"

	"github.com/kestrelrt/eaxtsp/cycles"
	"github.com/kestrelrt/eaxtsp/problem"
)

// mergeCandidate is a reconnection swap: edges (from->to) and
// (nnV->nnTo) are replaced by (from->nnTo) and (nnV->to), merging the two
// cycles they sit on (spec.md section 4.5 step 3.3-3.4).
type mergeCandidate struct {
	from, to, nnV, nnTo int
	delta               float64
}

// reconnect merges a's disjoint sub-tours into a single Hamiltonian cycle
// (spec.md section 4.5 step 3.3), repeatedly picking the smallest
// sub-tour and the least-delta merge that reconnects it to the rest.
// scanOrder is consulted only by the fallback phase.
func (op *Operator) reconnect(a *cycles.AsymmetricCycles, prob *problem.TSProblem, n int, scanOrder []int) error {
	for a.CycleCount() > 1 {
		rep, length := smallestCycle(a.Cycles())

		ignore := make([]bool, n)
		cur := rep
		for i := 0; i < length; i++ {
			ignore[cur] = true
			nxt, ok := a.Next(cur)
			if !ok {
				break
			}
			cur = nxt
		}

		best, found, err := op.findNNCandidate(a, prob, ignore, rep, length)
		if err != nil {
			return err
		}
		if !found {
			best, found, err = findFallbackCandidate(a, prob, ignore, rep, scanOrder)
			if err != nil {
				return err
			}
		}
		if !found {
			// A complete weight matrix always admits a merge; this
			// guards against a malformed donor rather than a reachable
			// case.
			return ErrNoReconnectCandidate
		}

		if err := a.AddEdge(best.from, best.nnTo); err != nil {
			return err
		}
		if err := a.AddEdge(best.nnV, best.to); err != nil {
			return err
		}
	}
	return nil
}

// smallestCycle returns the representative and length of the cycle with
// minimum length, ties broken by ascending representative id (the
// deterministic stand-in for "encounter order").
func smallestCycle(cyclesMap map[int]int) (rep, length int) {
	reps := make([]int, 0, len(cyclesMap))
	for r := range cyclesMap {
		reps = append(reps, r)
	}
	sort.Ints(reps)
	best := reps[0]
	for _, r := range reps[1:] {
		if cyclesMap[r] < cyclesMap[best] {
			best = r
		}
	}
	return best, cyclesMap[best]
}

// findNNCandidate scans the smallest sub-tour's edges (from->to) against
// the top-k forward nearest neighbors of each edge's from (spec.md section 4.5 step
// 3.3). Returns found=false if nn is disabled or no candidate qualifies.
func (op *Operator) findNNCandidate(a *cycles.AsymmetricCycles, prob *problem.TSProblem, ignore []bool, rep, length int) (mergeCandidate, bool, error) {
	var best mergeCandidate
	found := false
	if !op.opts.NN {
		return best, false, nil
	}

	cur := rep
	for i := 0; i < length; i++ {
		to, ok := a.Next(cur)
		if !ok {
			break
		}
		from := cur

		neighbors, err := prob.NearestNeighborsForward(nnNeighborCount, from)
		if err != nil {
			return best, false, err
		}
		for _, nnV := range neighbors {
			if ignore[nnV] {
				continue
			}
			nnTo, ok2 := a.Next(nnV)
			if !ok2 || ignore[nnTo] {
				continue
			}
			delta, err := mergeDelta(prob, from, to, nnV, nnTo)
			if err != nil {
				return best, false, err
			}
			if !found || delta < best.delta {
				best = mergeCandidate{from: from, to: to, nnV: nnV, nnTo: nnTo, delta: delta}
				found = true
			}
		}
		cur = to
	}
	return best, found, nil
}

// findFallbackCandidate scans every vertex of scanOrder against the
// smallest sub-tour's single representative edge (spec.md section 4.5
// step 3.4): "from = currentSub.key -> to = a.next[from]" against
// "(c, a.next[c])".
func findFallbackCandidate(a *cycles.AsymmetricCycles, prob *problem.TSProblem, ignore []bool, rep int, scanOrder []int) (mergeCandidate, bool, error) {
	var best mergeCandidate
	from := rep
	to, ok := a.Next(from)
	if !ok {
		return best, false, nil
	}

	found := false
	for _, c := range scanOrder {
		if ignore[c] {
			continue
		}
		cTo, ok2 := a.Next(c)
		if !ok2 || ignore[cTo] {
			continue
		}
		delta, err := mergeDelta(prob, from, to, c, cTo)
		if err != nil {
			return best, false, err
		}
		if !found || delta < best.delta {
			best = mergeCandidate{from: from, to: to, nnV: c, nnTo: cTo, delta: delta}
			found = true
		}
	}
	return best, found, nil
}

// mergeDelta computes Δ = (w(from,nnTo) + w(nnV,to)) − (w(from,to) +
// w(nnV,nnTo)) for the candidate merge that replaces edges (from->to)
// and (nnV->nnTo) with (from->nnTo) and (nnV->to).
func mergeDelta(prob *problem.TSProblem, from, to, nnV, nnTo int) (float64, error) {
	wFromTo, err := prob.Weights.At(from, to)
	if err != nil {
		return 0, err
	}
	wNNPair, err := prob.Weights.At(nnV, nnTo)
	if err != nil {
		return 0, err
	}
	wFromNnTo, err := prob.Weights.At(from, nnTo)
	if err != nil {
		return 0, err
	}
	wNnTo, err := prob.Weights.At(nnV, to)
	if err != nil {
		return 0, err
	}
	return (wFromNnTo + wNnTo) - (wFromTo + wNNPair), nil
}

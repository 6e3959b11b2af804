package stsp

import (
	"math"

	"github.com/kestrelrt/eaxtsp/directedid"
	"github.com/kestrelrt/eaxtsp/objective"
	"github.com/kestrelrt/eaxtsp/problem"
	"github.com/kestrelrt/eaxtsp/tour"
	"github.com/kestrelrt/eaxtsp/tsprand"
)

// Solver produces a tour for an STSProblem. Router.Route falls back to
// DefaultSolver when none is supplied (spec.md section 4.6 step 5:
// "problem.solve() or problem.solve(customSolver)").
type Solver func(prob *problem.STSProblem, rng *tsprand.Rand) (*tour.Tour, objective.STSPFitness, error)

// DefaultSolver greedily extends a tour from prob.First: at each step it
// picks, among unvisited physical vertices and their four turn options,
// the one with least incremental cost (inter-side weight plus turn
// penalty) that keeps the running weight within prob.Max, stopping when
// no further extension is feasible. If prob.Last is set, it is appended
// (or, when it equals First, used to close the cycle) only if that stays
// within budget; otherwise the tour is left open.
//
// rng is accepted for Solver-interface symmetry with solvers that do need
// randomness (e.g. one built on ga.SolverBase) but is unused here: the
// greedy choice is already fully deterministic.
//
// Complexity: O(numPhysicalVertices^2): each of up to numPhysicalVertices
// extension steps scans every remaining vertex's 4 turn options.
func DefaultSolver(prob *problem.STSProblem, rng *tsprand.Rand) (*tour.Tour, objective.STSPFitness, error) {
	numPhysical := prob.Weights.Rows() / 2
	universe := directedid.UniverseSize(numPhysical)

	reserveLast := prob.Last != nil && *prob.Last != prob.First
	closeToFirst := prob.Last != nil && *prob.Last == prob.First

	startID, err := directedid.Build(prob.First, 0, 0, directedid.SidesToTurn(0, 0))
	if err != nil {
		return nil, objective.STSPFitness{}, err
	}

	visited := make([]bool, numPhysical)
	visited[prob.First] = true
	seq := []int{startID}
	weight := 0.0
	prevDeparture := directedid.SideIndex(prob.First, 0)

	for {
		bestV, bestArrival, bestDeparture, bestTurn := -1, 0, 0, 0
		bestDelta := math.Inf(1)

		for v := 0; v < numPhysical; v++ {
			if visited[v] {
				continue
			}
			if reserveLast && v == *prob.Last {
				continue // appended explicitly once the main loop stops.
			}
			for turn := 0; turn < 4; turn++ {
				arrival, departure := directedid.TurnToSides(turn)
				arrivalIdx := directedid.SideIndex(v, arrival)
				w, err := prob.Weights.At(prevDeparture, arrivalIdx)
				if err != nil {
					return nil, objective.STSPFitness{}, err
				}
				delta := w + prob.TurnPenalties[turn]
				if weight+delta > prob.Max {
					continue
				}
				if delta < bestDelta {
					bestDelta, bestV, bestArrival, bestDeparture, bestTurn = delta, v, arrival, departure, turn
				}
			}
		}

		if bestV < 0 {
			break
		}
		id, err := directedid.Build(bestV, bestArrival, bestDeparture, bestTurn)
		if err != nil {
			return nil, objective.STSPFitness{}, err
		}
		seq = append(seq, id)
		visited[bestV] = true
		weight += bestDelta
		prevDeparture = directedid.SideIndex(bestV, bestDeparture)
	}

	var lastPtr *int
	switch {
	case reserveLast:
		arrivalIdx := directedid.SideIndex(*prob.Last, 0)
		w, err := prob.Weights.At(prevDeparture, arrivalIdx)
		if err != nil {
			return nil, objective.STSPFitness{}, err
		}
		delta := w + prob.TurnPenalties[directedid.SidesToTurn(0, 0)]
		if weight+delta <= prob.Max {
			id, err := directedid.Build(*prob.Last, 0, 0, directedid.SidesToTurn(0, 0))
			if err != nil {
				return nil, objective.STSPFitness{}, err
			}
			seq = append(seq, id)
			weight += delta
			last := id
			lastPtr = &last
		}
	case closeToFirst:
		closeW, err := prob.Weights.At(prevDeparture, directedid.SideIndex(prob.First, 0))
		if err != nil {
			return nil, objective.STSPFitness{}, err
		}
		if weight+closeW <= prob.Max {
			first := seq[0]
			lastPtr = &first
		}
	}

	t, err := tour.New(universe, seq, lastPtr)
	if err != nil {
		return nil, objective.STSPFitness{}, err
	}
	fit, err := objective.CalculateSTSP(prob, t)
	if err != nil {
		return nil, objective.STSPFitness{}, err
	}
	return t, fit, nil
}

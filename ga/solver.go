package ga

import (
	"errors"

	"github.com/kestrelrt/eaxtsp/objective"
	"github.com/kestrelrt/eaxtsp/problem"
	"github.com/kestrelrt/eaxtsp/tour"
	"github.com/kestrelrt/eaxtsp/tsprand"
)

// Sentinel errors.
var (
	ErrInvalidPopulationSize = errors.New("ga: population size must be at least 2")
	ErrInvalidGenerations    = errors.New("ga: generations must be non-negative")
	ErrInvalidElitism        = errors.New("ga: elitism must be in [0, populationSize)")
)

// individual pairs a tour with its already-computed fitness, avoiding
// redundant recomputation across selection and replacement.
type individual struct {
	t   *tour.Tour
	fit objective.TSPFitness
}

// SolverBase is a minimal generational GA: population init, binary (or
// n-ary) tournament selection, crossover via any Crossover satisfying the
// EAX contract, an optional mutation hook, and elitist replacement.
//
// It is additive scaffolding filling out spec.md section 4.7's "Solver
// framework (interfaces only)" component — not a second combinatorial
// search paradigm, and not required by the core's minimum scope.
type SolverBase struct {
	Crossover Crossover
	Opts      Options
}

// NewSolverBase constructs a SolverBase bound to crossover and opts.
func NewSolverBase(crossover Crossover, opts Options) *SolverBase {
	return &SolverBase{Crossover: crossover, Opts: opts}
}

// Run executes the generational loop over prob, seeding its initial
// population from rng, and returns the best tour found, its fitness, and
// per-generation diagnostics.
//
// Determinism: identical prob, rng state, and Opts produce an identical
// result sequence (spec.md section 5).
//
// Complexity: O(generations * populationSize) crossover applications,
// each O(N) to O(N^2) per eax.Operator.Apply's own complexity note.
func (s *SolverBase) Run(prob *problem.TSProblem, rng *tsprand.Rand) (*tour.Tour, objective.TSPFitness, []Stats, error) {
	opts := s.Opts
	if opts.PopulationSize < 2 {
		return nil, 0, nil, ErrInvalidPopulationSize
	}
	if opts.Generations < 0 {
		return nil, 0, nil, ErrInvalidGenerations
	}
	if opts.Elitism < 0 || opts.Elitism >= opts.PopulationSize {
		return nil, 0, nil, ErrInvalidElitism
	}
	if opts.TournamentSize < 1 {
		opts.TournamentSize = 1
	}

	pop := make([]individual, opts.PopulationSize)
	for i := range pop {
		t, err := randomTour(prob, rng)
		if err != nil {
			return nil, 0, nil, err
		}
		fit, err := objective.CalculateTSP(prob, t)
		if err != nil {
			return nil, 0, nil, err
		}
		pop[i] = individual{t: t, fit: fit}
	}

	history := make([]Stats, 0, opts.Generations+1)
	var best *tour.Tour
	var bestFit objective.TSPFitness

	recordBest := func() {
		for _, ind := range pop {
			if best == nil || ind.fit.CompareTo(bestFit) < 0 {
				best, bestFit = ind.t, ind.fit
			}
		}
	}
	recordBest()
	history = append(history, computeStats(0, fitnessesOf(pop)))

	for gen := 1; gen <= opts.Generations; gen++ {
		sortByFitness(pop)

		next := make([]individual, 0, opts.PopulationSize)
		for i := 0; i < opts.Elitism; i++ {
			next = append(next, pop[i])
		}

		for len(next) < opts.PopulationSize {
			p1 := tournamentSelect(pop, opts.TournamentSize, rng)
			p2 := tournamentSelect(pop, opts.TournamentSize, rng)

			child, fit, err := s.Crossover.Apply(prob, p1.t, p2.t)
			if err != nil {
				return nil, 0, nil, err
			}
			if opts.Mutation != nil {
				mutated, err := opts.Mutation(prob, child)
				if err != nil {
					return nil, 0, nil, err
				}
				child = mutated
				fit, err = objective.CalculateTSP(prob, child)
				if err != nil {
					return nil, 0, nil, err
				}
			}
			next = append(next, individual{t: child, fit: fit})
		}

		pop = next
		recordBest()
		history = append(history, computeStats(gen, fitnessesOf(pop)))
	}

	return best, bestFit, history, nil
}

func fitnessesOf(pop []individual) []objective.TSPFitness {
	out := make([]objective.TSPFitness, len(pop))
	for i, ind := range pop {
		out[i] = ind.fit
	}
	return out
}

// sortByFitness orders pop ascending by fitness (best first) in place
// using a simple insertion sort; population sizes in this driver's
// intended use are small enough that this stays O(popSize^2) without
// materially affecting wall-clock time.
func sortByFitness(pop []individual) {
	for i := 1; i < len(pop); i++ {
		cur := pop[i]
		j := i - 1
		for j >= 0 && pop[j].fit.CompareTo(cur.fit) > 0 {
			pop[j+1] = pop[j]
			j--
		}
		pop[j+1] = cur
	}
}

// tournamentSelect samples size individuals uniformly at random (with
// replacement) from pop and returns the fittest.
func tournamentSelect(pop []individual, size int, rng *tsprand.Rand) individual {
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < size; i++ {
		cand := pop[rng.Intn(len(pop))]
		if cand.fit.CompareTo(best.fit) < 0 {
			best = cand
		}
	}
	return best
}

// randomTour builds one random tour honoring prob's shape: Open when
// prob.Last is nil, Closed when *prob.Last == prob.First, FixedEnd
// otherwise.
func randomTour(prob *problem.TSProblem, rng *tsprand.Rand) (*tour.Tour, error) {
	n := prob.Weights.Rows()

	if prob.Last == nil {
		return tour.New(n, shuffledSequence(n, prob.First, -1, rng), nil)
	}
	if *prob.Last == prob.First {
		last := prob.First
		return tour.New(n, shuffledSequence(n, prob.First, -1, rng), &last)
	}
	last := *prob.Last
	return tour.New(n, shuffledSequence(n, prob.First, last, rng), &last)
}

// shuffledSequence returns a random permutation of [0,n) with first
// placed at index 0, and (if excluded >= 0) excluded placed at the tail,
// suitable for tour.New's Open/Closed/FixedEnd construction rules.
func shuffledSequence(n, first, excluded int, rng *tsprand.Rand) []int {
	rest := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v == first || v == excluded {
			continue
		}
		rest = append(rest, v)
	}
	tsprand.ShuffleInts(rest, rng)

	seq := make([]int, 0, n)
	seq = append(seq, first)
	seq = append(seq, rest...)
	if excluded >= 0 {
		seq = append(seq, excluded)
	}
	return seq
}

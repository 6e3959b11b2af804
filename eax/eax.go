package eax

import (
	"github.com/kestrelrt/eaxtsp/cycles"
	"github.com/kestrelrt/eaxtsp/diag"
	"github.com/kestrelrt/eaxtsp/objective"
	"github.com/kestrelrt/eaxtsp/problem"
	"github.com/kestrelrt/eaxtsp/tour"
	"github.com/kestrelrt/eaxtsp/tsprand"
)

// Operator applies the EAX crossover to a pair of parent tours over a
// shared TSProblem (spec.md section 4.5). It owns one random source and
// must not be shared across goroutines; independent parallel callers
// need independent Operators (spec.md section 5).
type Operator struct {
	rng  *tsprand.Rand
	opts Options
	sink diag.Sink
}

// New constructs an Operator. rng is required (the EAX contract forbids
// any ambient process-wide generator); sink may be nil, defaulting to
// diag.NoopSink.
func New(rng *tsprand.Rand, opts Options, sink diag.Sink) (*Operator, error) {
	if opts.MaxOffspring <= 0 {
		return nil, ErrInvalidMaxOffspring
	}
	if sink == nil {
		sink = diag.NoopSink{}
	}
	return &Operator{rng: rng, opts: opts, sink: sink}, nil
}

// Name returns the operator's derived identifier (spec.md section 6).
func (op *Operator) Name() string { return op.opts.Name() }

// Apply runs the EAX crossover on p1 and p2 over prob, returning one
// child tour and its fitness (spec.md section 4.5 steps 0-5).
func (op *Operator) Apply(prob *problem.TSProblem, p1, p2 *tour.Tour) (*tour.Tour, objective.TSPFitness, error) {
	if err := checkPrecondition(prob, p1, p2); err != nil {
		return nil, 0, err
	}

	n := prob.Weights.Rows()
	origShape := p1.ShapeOf()
	var origLast *int
	if origShape == tour.FixedEnd {
		v, _ := p1.Last()
		origLast = &v
	}

	// Step 0: shape normalization.
	cp1, changed1, err := normalizeClosed(p1, n, prob.First)
	if err != nil {
		return nil, 0, err
	}
	cp2, changed2, err := normalizeClosed(p2, n, prob.First)
	if err != nil {
		return nil, 0, err
	}
	if changed1 || changed2 {
		op.sink.Log(diag.Warning, "eax: parent shape normalized to closed")
	}

	// Step 1: edge sets.
	seq1 := cp1.Sequence()
	eA, err := cycles.FromSequence(n, seq1)
	if err != nil {
		return nil, 0, err
	}
	eB := buildEB(n, cp2)

	// Step 2: AB-cycles.
	altCycles, err := cycles.NewAsymmetricAlternatingCycles(successorArray(eA, n), eB)
	if err != nil {
		return nil, 0, err
	}

	// eA is the donor for every offspring and the material for step 4's
	// fallback. With MaxOffspring > 1 each offspring patches a clone and
	// eA stays unchanged; with MaxOffspring == 1 the single offspring
	// patches eA in place.
	pool := newCyclePool(len(altCycles.Cycles()))

	var best *tour.Tour
	var bestFit objective.TSPFitness

	// Step 3: generate offspring.
	for i := 0; i < op.opts.MaxOffspring; i++ {
		if pool.exhausted(op.opts.Strategy) {
			break
		}
		selected := pool.selectFor(op.opts.Strategy, op.rng)

		var donor *cycles.AsymmetricCycles
		if op.opts.MaxOffspring > 1 {
			donor = eA.Clone()
		} else {
			donor = eA
		}

		for _, cid := range selected {
			for next, paired := range altCycles.Walk(cid) {
				if err := donor.AddEdge(paired, next); err != nil {
					return nil, 0, err
				}
			}
		}

		if err := op.reconnect(donor, prob, n, seq1); err != nil {
			return nil, 0, err
		}

		child, spans := materialize(donor, n, prob.First)
		if !spans {
			continue
		}
		fit, err := objective.CalculateTSP(prob, child)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || fit.CompareTo(bestFit) < 0 {
			best, bestFit = child, fit
		}
	}

	// Step 4: fallback.
	if best == nil {
		fallback, _ := materialize(eA, n, prob.First)
		fit, err := objective.CalculateTSP(prob, fallback)
		if err != nil {
			return nil, 0, err
		}
		best, bestFit = fallback, fit
	}

	// Step 5: reverse shape normalization, unconditionally (spec.md
	// section 9).
	result, err := denormalize(best, n, origShape, origLast)
	if err != nil {
		return nil, 0, err
	}
	if origShape != tour.Closed {
		bestFit, err = objective.CalculateTSP(prob, result)
		if err != nil {
			return nil, 0, err
		}
	}

	return result, bestFit, nil
}

// checkPrecondition enforces spec.md section 7's one programmer-error
// case: both parents' first and last must agree with prob's.
func checkPrecondition(prob *problem.TSProblem, p1, p2 *tour.Tour) error {
	if p1.First() != prob.First || p2.First() != prob.First {
		return &PreconditionError{Field: "first", Reason: "parent first does not match problem.First"}
	}
	if !lastMatches(p1, prob.Last) || !lastMatches(p2, prob.Last) {
		return &PreconditionError{Field: "last", Reason: "parent last does not match problem.Last"}
	}
	return nil
}

func lastMatches(t *tour.Tour, probLast *int) bool {
	last, ok := t.Last()
	if probLast == nil {
		return !ok
	}
	return ok && last == *probLast
}

// successorArray reads ac's current next[] out as a plain slice, the
// shape cycles.NewAsymmetricAlternatingCycles expects for E_A.
func successorArray(ac *cycles.AsymmetricCycles, n int) []int {
	out := make([]int, n)
	for v := 0; v < n; v++ {
		if nxt, ok := ac.Next(v); ok {
			out[v] = nxt
		} else {
			out[v] = cycles.NotSet
		}
	}
	return out
}

// buildEB builds E_B as an array indexed by "to": eB[to] = from for every
// consecutive pair of cp2 (spec.md section 4.5 step 1).
func buildEB(n int, cp2 *tour.Tour) []int {
	eB := make([]int, n)
	for i := range eB {
		eB[i] = cycles.NotSet
	}
	for from, to := range cp2.Pairs() {
		eB[to] = from
	}
	return eB
}

// materialize walks a.next from first, collecting successors until it
// returns to first or hits NotSet (spec.md section 4.5 step 3.4). spans
// reports whether every vertex that carries an edge in a was visited,
// i.e. every customer of the normalized problem (a fixed last customer
// dropped by normalizeClosed carries no edge).
func materialize(a *cycles.AsymmetricCycles, n, first int) (*tour.Tour, bool) {
	seq := make([]int, 0, n)
	visited := make([]bool, n)
	cur := first
	for {
		if visited[cur] {
			break
		}
		seq = append(seq, cur)
		visited[cur] = true
		nxt, ok := a.Next(cur)
		if !ok || nxt == first {
			break
		}
		cur = nxt
	}
	t, err := tour.New(n, seq, &first)
	if err != nil {
		return nil, false
	}
	withEdge := 0
	for v := 0; v < n; v++ {
		if _, ok := a.Next(v); ok {
			withEdge++
		}
	}
	return t, len(seq) == withEdge
}

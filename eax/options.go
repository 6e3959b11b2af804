package eax

import "fmt"

// Strategy selects how AB-cycles are chosen for patching during one
// offspring-generation loop (spec.md section 4.5 step 3.1).
type Strategy int

const (
	// SingleRandom (EAX-1AB) picks one uniform-random cycle per
	// offspring and removes it from the selectable pool: each cycle
	// patches at most one offspring per Apply call.
	SingleRandom Strategy = iota
	// MultipleRandom includes each remaining cycle independently with
	// probability 0.75. Selection is non-destructive: the pool never
	// shrinks across offspring, so a cycle may be reselected (spec.md
	// section 9, preserved deliberately).
	MultipleRandom
)

// String renders the strategy's short tag used by Options.Name.
func (s Strategy) String() string {
	switch s {
	case SingleRandom:
		return "SR"
	case MultipleRandom:
		return "MR"
	default:
		return "?"
	}
}

// multipleRandomInclusionProb is the per-cycle inclusion probability for
// the MultipleRandom strategy (spec.md section 4.5 step 3.1).
const multipleRandomInclusionProb = 0.75

// nnNeighborCount is k in the nearest-neighbor reconnection phase
// (spec.md section 4.5 step 3.3 and section 4.5 complexity note).
const nnNeighborCount = 10

// Options configures an Operator (spec.md section 6).
type Options struct {
	// MaxOffspring bounds how many candidate children are generated per
	// Apply call. Default 30.
	MaxOffspring int
	// Strategy selects cycle-selection policy. Default SingleRandom.
	Strategy Strategy
	// NN enables the nearest-neighbor reconnection phase before falling
	// back to the brute-force scan. Default true.
	NN bool
}

// DefaultOptions returns the spec's documented defaults.
func DefaultOptions() Options {
	return Options{MaxOffspring: 30, Strategy: SingleRandom, NN: true}
}

// Name derives the operator's identifier: EAX_(SR{m}), EAX_(SR{m}_NN),
// EAX_(MR{m}), EAX_(MR{m}_NN).
func (o Options) Name() string {
	suffix := ""
	if o.NN {
		suffix = "_NN"
	}
	return fmt.Sprintf("EAX_(%s%d%s)", o.Strategy, o.MaxOffspring, suffix)
}

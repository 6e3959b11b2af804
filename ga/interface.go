package ga

import (
	"github.com/kestrelrt/eaxtsp/objective"
	"github.com/kestrelrt/eaxtsp/problem"
	"github.com/kestrelrt/eaxtsp/tour"
)

// Operator is the part of the operator contract shared by every operator
// in the solver framework: its name. It has no Apply method; applying an
// operator to a problem and parents is defined by Crossover, for the
// two-parent case only.
type Operator interface {
	// Name returns the operator's derived identifier.
	Name() string
}

// Crossover is the binary case of Operator: exactly two parents, one
// child. eax.Operator satisfies this contract.
type Crossover interface {
	Operator
	Apply(prob *problem.TSProblem, p1, p2 *tour.Tour) (*tour.Tour, objective.TSPFitness, error)
}

// MutationFn perturbs a tour in place (or returns a perturbed copy); used
// as SolverBase's optional post-crossover hook. A nil MutationFn disables
// mutation.
type MutationFn func(prob *problem.TSProblem, t *tour.Tour) (*tour.Tour, error)

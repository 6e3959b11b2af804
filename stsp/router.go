package stsp

import (
	"fmt"

	"github.com/kestrelrt/eaxtsp/objective"
	"github.com/kestrelrt/eaxtsp/problem"
	"github.com/kestrelrt/eaxtsp/tour"
	"github.com/kestrelrt/eaxtsp/tsprand"
)

// Router is the STSPRouter driver of spec.md section 4.6: it validates a
// caller-facing first/last pair against the matrix collaborator, builds
// an STSProblem over the directed weight matrix, invokes a solver, and
// publishes the resulting tour (or a diagnostic on failure).
type Router struct {
	// Matrix is the external matrix collaborator (spec.md section 6).
	Matrix problem.MatrixProvider
	// TurnPenalties indexes by the turn field (0..4).
	TurnPenalties [4]float64
	// Max is the weight budget passed to STSProblem.
	Max float64

	// Tour is the best tour discovered, or nil when Succeeded is false.
	Tour *tour.Tour
	// Fitness is Tour's STSP fitness, meaningful only when Succeeded.
	Fitness objective.STSPFitness
	// Succeeded reports whether Route last completed without error.
	Succeeded bool
	// ErrorMessage is a human-readable diagnostic set on failure.
	ErrorMessage string
}

// NewRouter constructs a Router bound to matrix, turnPenalties, and max.
func NewRouter(matrix problem.MatrixProvider, turnPenalties [4]float64, max float64) *Router {
	return &Router{Matrix: matrix, TurnPenalties: turnPenalties, Max: max}
}

// Route runs the driver end to end (spec.md section 4.6 steps 1-6):
//   1. Run the matrix algorithm if it has not already run.
//   2-3. Validate first and (if given) last against the matrix.
//   4. Build the STSProblem from the resolved interior indices.
//   5. Invoke solver (DefaultSolver if nil).
//   6. Publish the result.
//
// On any failure, Route sets Succeeded=false, Tour=nil, and a textual
// ErrorMessage, and returns the corresponding sentinel error.
func (r *Router) Route(first int, last *int, rng *tsprand.Rand, solver Solver) error {
	r.Tour = nil
	r.Fitness = objective.STSPFitness{}
	r.Succeeded = false
	r.ErrorMessage = ""

	if err := r.ensureMatrixRun(); err != nil {
		return err
	}

	firstIdx, err := r.resolveEndpoint(first, "first")
	if err != nil {
		return err
	}

	var lastIdx *int
	if last != nil {
		idx, err := r.resolveEndpoint(*last, "last")
		if err != nil {
			return err
		}
		lastIdx = &idx
	}

	prob, err := problem.NewSTSProblem(firstIdx, lastIdx, r.Matrix.Weights(), r.TurnPenalties, r.Max)
	if err != nil {
		r.fail(err.Error())
		return err
	}

	solve := solver
	if solve == nil {
		solve = DefaultSolver
	}
	t, fit, err := solve(prob, rng)
	if err != nil {
		r.fail(err.Error())
		return ErrEndpointUnroutable
	}

	r.Tour, r.Fitness, r.Succeeded = t, fit, true
	return nil
}

// ensureMatrixRun runs the matrix collaborator if it hasn't already, and
// surfaces its error message on failure (spec.md section 4.6 step 1).
func (r *Router) ensureMatrixRun() error {
	if !r.Matrix.HasRun() {
		if err := r.Matrix.Run(); err != nil {
			r.fail(err.Error())
			return ErrMatrixUnavailable
		}
	}
	if !r.Matrix.HasSucceeded() {
		r.fail(r.Matrix.ErrorMessage())
		return ErrMatrixUnavailable
	}
	return nil
}

// resolveEndpoint maps a caller-facing id to a matrix-interior index and
// checks it for location/router-point errors (spec.md section 4.6 steps
// 2-3). On failure it surfaces a location-specific or router-specific
// message when the matrix has one, else the generic "<which> location was
// in error list".
func (r *Router) resolveEndpoint(original int, which string) (int, error) {
	idx, err := r.Matrix.WeightIndex(original)
	if err != nil {
		r.fail(fmt.Sprintf("%s location was in error list", which))
		return 0, ErrEndpointUnresolved
	}
	locErr, routeErr := r.Matrix.TryGetError(idx)
	if locErr != nil {
		r.fail(locErr.Error())
		return 0, ErrEndpointUnresolved
	}
	if routeErr != nil {
		r.fail(routeErr.Error())
		return 0, ErrEndpointUnresolved
	}
	return idx, nil
}

func (r *Router) fail(msg string) {
	r.Tour = nil
	r.Fitness = objective.STSPFitness{}
	r.Succeeded = false
	r.ErrorMessage = msg
}

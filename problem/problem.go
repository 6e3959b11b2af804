package problem

import (
	"errors"

	"github.com/kestrelrt/eaxtsp/weights"
)

// Sentinel errors.
var (
	ErrNilWeights         = errors.New("problem: weight matrix is nil")
	ErrInvalidFirst       = errors.New("problem: first is out of range")
	ErrInvalidLast        = errors.New("problem: last is out of range")
	ErrInvalidTurnCount   = errors.New("problem: turnPenalties must have exactly 4 entries")
	ErrNegativeBudget     = errors.New("problem: max budget must be non-negative")
	ErrInvalidTimeWindows = errors.New("problem: time window count must match matrix size")
)

// TSProblem is the symmetric/asymmetric TSP problem: a customer universe,
// a required starting customer, an optional fixed last customer, and a
// weight matrix.
type TSProblem struct {
	First   int
	Last    *int
	Weights weights.Matrix
}

// NewTSProblem validates and constructs a TSProblem.
func NewTSProblem(first int, last *int, w weights.Matrix) (*TSProblem, error) {
	if w == nil {
		return nil, ErrNilWeights
	}
	n := w.Rows()
	if first < 0 || first >= n {
		return nil, ErrInvalidFirst
	}
	if last != nil && (*last < 0 || *last >= n) {
		return nil, ErrInvalidLast
	}
	return &TSProblem{First: first, Last: last, Weights: w}, nil
}

// NearestNeighborsForward returns the k nearest forward neighbors of v.
func (p *TSProblem) NearestNeighborsForward(k, v int) ([]int, error) {
	return weights.NearestNeighborsForward(p.Weights, v, k)
}

// STSProblem is the directed, turn-penalized, budget-bounded selective TSP
// problem solved by STSPRouter. Weights is the side-expanded directed
// matrix, indexed by directedid.SideIndex(vertex, side); turnPenalties is
// indexed by the turn field (0..4).
type STSProblem struct {
	First         int
	Last          *int
	Weights       weights.Matrix
	TurnPenalties [4]float64
	Max           float64
}

// NewSTSProblem validates and constructs an STSProblem.
func NewSTSProblem(first int, last *int, w weights.Matrix, turnPenalties [4]float64, max float64) (*STSProblem, error) {
	if w == nil {
		return nil, ErrNilWeights
	}
	n := w.Rows()
	if first < 0 || first >= n {
		return nil, ErrInvalidFirst
	}
	if last != nil && (*last < 0 || *last >= n) {
		return nil, ErrInvalidLast
	}
	if max < 0 {
		return nil, ErrNegativeBudget
	}
	return &STSProblem{First: first, Last: last, Weights: w, TurnPenalties: turnPenalties, Max: max}, nil
}

// TimeWindow bounds the earliest and latest permissible arrival at a
// customer.
type TimeWindow struct {
	Start float64
	End   float64
}

// TSPTWProblem is TSProblem augmented with per-customer time windows. The
// windows are for external violation checking; neither the objective
// (which only sums weights) nor EAX reads them.
type TSPTWProblem struct {
	First   int
	Last    *int
	Weights weights.Matrix
	Windows []TimeWindow
}

// NewTSPTWProblem validates and constructs a TSPTWProblem.
func NewTSPTWProblem(first int, last *int, w weights.Matrix, windows []TimeWindow) (*TSPTWProblem, error) {
	if w == nil {
		return nil, ErrNilWeights
	}
	n := w.Rows()
	if first < 0 || first >= n {
		return nil, ErrInvalidFirst
	}
	if last != nil && (*last < 0 || *last >= n) {
		return nil, ErrInvalidLast
	}
	if len(windows) != n {
		return nil, ErrInvalidTimeWindows
	}
	return &TSPTWProblem{First: first, Last: last, Weights: w, Windows: windows}, nil
}

// MatrixProvider is the external matrix collaborator consumed by
// STSPRouter (spec section 6). It is presented only through this
// contract; the matrix precomputation itself lives outside this module.
type MatrixProvider interface {
	HasRun() bool
	HasSucceeded() bool
	ErrorMessage() string
	Run() error
	// TryGetError reports a location-specific error and/or a routing-point
	// error for the matrix-interior index, if any occurred.
	TryGetError(index int) (locationErr error, routerPointErr error)
	// WeightIndex maps a caller-facing id to the matrix-interior id.
	WeightIndex(original int) (int, error)
	Weights() weights.Matrix
}

package objective

import (
	"errors"
	"math"

	"github.com/kestrelrt/eaxtsp/directedid"
	"github.com/kestrelrt/eaxtsp/problem"
	"github.com/kestrelrt/eaxtsp/tour"
	"github.com/kestrelrt/eaxtsp/weights"
)

// roundScale controls final cost stabilization precision (1e-9), kept
// local to this package rather than factored into a shared helper.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision, avoiding tiny
// floating-point drift across platforms.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Sentinel errors.
var (
	ErrEmptyTour = errors.New("objective: tour has no customers")
)

// TSPFitness is the scalar fitness shared by TSP and TSP-TW: lower is
// better.
type TSPFitness float64

// ZeroTSP is the additive identity.
func ZeroTSP() TSPFitness { return 0 }

// InfiniteTSP is the worst possible TSP fitness.
func InfiniteTSP() TSPFitness { return TSPFitness(math.MaxFloat64) }

// IsZero reports whether f is the additive identity.
func (f TSPFitness) IsZero() bool { return f == 0 }

// Add combines two fitness values.
func (f TSPFitness) Add(other TSPFitness) TSPFitness { return TSPFitness(round1e9(float64(f + other))) }

// Subtract removes other's contribution from f.
func (f TSPFitness) Subtract(other TSPFitness) TSPFitness {
	return TSPFitness(round1e9(float64(f - other)))
}

// CompareTo returns <0 if f beats other, 0 if equal, >0 if other beats f.
func (f TSPFitness) CompareTo(other TSPFitness) int {
	switch {
	case f < other:
		return -1
	case f > other:
		return 1
	default:
		return 0
	}
}

// CalculateTSP sums w(from,to) over t's pairs, per spec.md section 4.3.
func CalculateTSP(p *problem.TSProblem, t *tour.Tour) (TSPFitness, error) {
	return sumPairs(p.Weights, t)
}

// CalculateTSPTW uses the same scalar sum formula as TSP over the time
// matrix; window violations are computed outside this package and never
// feed back into the scalar fitness itself.
func CalculateTSPTW(p *problem.TSPTWProblem, t *tour.Tour) (TSPFitness, error) {
	return sumPairs(p.Weights, t)
}

// IsNonContinuousTSPTW always returns true: time-window violations,
// computed elsewhere, introduce discontinuities the GA must not assume
// away.
func IsNonContinuousTSPTW() bool { return true }

func sumPairs(w weights.Matrix, t *tour.Tour) (TSPFitness, error) {
	if t.Count() == 0 {
		return 0, ErrEmptyTour
	}
	var sum float64
	for from, to := range t.Pairs() {
		edge, err := w.At(from, to)
		if err != nil {
			return 0, err
		}
		sum += edge
	}
	return TSPFitness(round1e9(sum)), nil
}

// STSPFitness is the composite fitness for the directed, turn-penalized
// selective TSP: more customers visited is better, ties broken by lower
// weight.
type STSPFitness struct {
	Customers int
	Weight    float64
}

// ZeroSTSP is the additive identity.
func ZeroSTSP() STSPFitness { return STSPFitness{} }

// InfiniteSTSP is the worst possible STSP fitness: the minimum int as the
// customer count, at maximal cost.
func InfiniteSTSP() STSPFitness {
	return STSPFitness{Customers: math.MinInt, Weight: math.MaxFloat64}
}

// IsZero reports whether f is the additive identity.
func (f STSPFitness) IsZero() bool { return f.Customers == 0 && f.Weight == 0 }

// Add combines two fitness values.
func (f STSPFitness) Add(other STSPFitness) STSPFitness {
	return STSPFitness{
		Customers: f.Customers + other.Customers,
		Weight:    round1e9(f.Weight + other.Weight),
	}
}

// Subtract removes other's contribution from f.
func (f STSPFitness) Subtract(other STSPFitness) STSPFitness {
	return STSPFitness{
		Customers: f.Customers - other.Customers,
		Weight:    round1e9(f.Weight - other.Weight),
	}
}

// CompareTo returns <0 if f beats other, 0 if equal, >0 if other beats f.
// A fitness (c1,w1) beats (c2,w2) if c1 > c2, or c1 == c2 and w1 < w2.
func (f STSPFitness) CompareTo(other STSPFitness) int {
	if f.Customers != other.Customers {
		if f.Customers > other.Customers {
			return -1
		}
		return 1
	}
	switch {
	case f.Weight < other.Weight:
		return -1
	case f.Weight > other.Weight:
		return 1
	default:
		return 0
	}
}

// CalculateSTSP walks t's directed-id sequence, accumulating inter-side
// weight and per-vertex turn penalties, per spec.md section 4.3.
func CalculateSTSP(p *problem.STSProblem, t *tour.Tour) (STSPFitness, error) {
	seq := t.Sequence()
	if len(seq) == 0 {
		return STSPFitness{}, ErrEmptyTour
	}

	var (
		weight            float64
		firstArrival      int
		previousDeparture int
	)
	for i, packed := range seq {
		arrival, departure, id, turn := directedid.ExtractAll(packed)
		arrivalIdx := directedid.SideIndex(id, arrival)
		departureIdx := directedid.SideIndex(id, departure)
		if i == 0 {
			firstArrival = arrivalIdx
		} else {
			edge, err := p.Weights.At(previousDeparture, arrivalIdx)
			if err != nil {
				return STSPFitness{}, err
			}
			weight += edge
		}
		weight += p.TurnPenalties[turn]
		previousDeparture = departureIdx
	}

	if lastVal, ok := t.Last(); ok && lastVal == t.First() {
		edge, err := p.Weights.At(previousDeparture, firstArrival)
		if err != nil {
			return STSPFitness{}, err
		}
		weight += edge
	}

	return STSPFitness{Customers: t.Count(), Weight: round1e9(weight)}, nil
}

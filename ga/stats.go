package ga

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kestrelrt/eaxtsp/objective"
)

// Stats summarizes one generation's fitness distribution (mean, standard
// deviation, best), mirrored from cbarrick/evo's hand-rolled Stats but
// backed by gonum/stat instead of bespoke running-variance arithmetic.
type Stats struct {
	Generation int
	Mean       float64
	StdDev     float64
	Best       float64
}

// computeStats reduces a generation's population fitness values (lower is
// better, per objective.TSPFitness.CompareTo) into a Stats summary.
func computeStats(generation int, fitnesses []objective.TSPFitness) Stats {
	if len(fitnesses) == 0 {
		return Stats{Generation: generation}
	}

	values := make([]float64, len(fitnesses))
	best := fitnesses[0]
	for i, f := range fitnesses {
		values[i] = float64(f)
		if f.CompareTo(best) < 0 {
			best = f
		}
	}

	mean := stat.Mean(values, nil)
	var sd float64
	if len(values) > 1 {
		sd = stat.StdDev(values, nil)
	}

	return Stats{
		Generation: generation,
		Mean:       mean,
		StdDev:     sd,
		Best:       float64(best),
	}
}

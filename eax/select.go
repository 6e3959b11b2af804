package eax

import "github.com/kestrelrt/eaxtsp/tsprand"

// cyclePool tracks which AB-cycle ids remain selectable across the
// offspring-generation loop of a single Apply call (spec.md section 4.5
// step 3.1).
type cyclePool struct {
	remaining []int // SingleRandom: shrinks as cycles are consumed.
	all       []int // MultipleRandom: the full set, never mutated.
}

// newCyclePool seeds a pool from the AB-cycle ids produced by
// cycles.NewAsymmetricAlternatingCycles (0..k-1, contiguous by
// construction).
func newCyclePool(count int) *cyclePool {
	ids := make([]int, count)
	for i := range ids {
		ids[i] = i
	}
	remaining := make([]int, count)
	copy(remaining, ids)
	return &cyclePool{remaining: remaining, all: ids}
}

// exhausted reports whether the offspring-generation loop must stop:
// true only for SingleRandom once every cycle has been consumed.
// MultipleRandom's pool never shrinks, so it is exhausted only when
// there were no AB-cycles to begin with.
func (p *cyclePool) exhausted(strategy Strategy) bool {
	if strategy == SingleRandom {
		return len(p.remaining) == 0
	}
	return len(p.all) == 0
}

// selectFor picks the AB-cycle ids patched into the next offspring.
func (p *cyclePool) selectFor(strategy Strategy, rng *tsprand.Rand) []int {
	switch strategy {
	case SingleRandom:
		if len(p.remaining) == 0 {
			return nil
		}
		idx := rng.Intn(len(p.remaining))
		picked := p.remaining[idx]
		p.remaining = append(p.remaining[:idx], p.remaining[idx+1:]...)
		return []int{picked}
	default: // MultipleRandom
		var selected []int
		for _, id := range p.all {
			if rng.Float64() < multipleRandomInclusionProb {
				selected = append(selected, id)
			}
		}
		return selected
	}
}

package eax

import (
	"testing"

	"github.com/kestrelrt/eaxtsp/tsprand"
	"github.com/stretchr/testify/require"
)

// TestEAX_MultipleRandomMayReselect asserts the documented asymmetry
// (spec.md section 9): SingleRandom's pool shrinks by one cycle id per
// selectFor call and eventually empties, while MultipleRandom's pool
// never shrinks - the same cycle id can appear in more than one
// offspring's selection within a single Apply call.
func TestEAX_MultipleRandomMayReselect(t *testing.T) {
	rng := tsprand.New(123)

	single := newCyclePool(3)
	for i := 0; i < 3; i++ {
		require.False(t, single.exhausted(SingleRandom))
		got := single.selectFor(SingleRandom, rng)
		require.Len(t, got, 1)
	}
	require.True(t, single.exhausted(SingleRandom))

	multi := newCyclePool(3)
	seenAcrossCalls := make(map[int]int)
	for i := 0; i < 20; i++ {
		require.False(t, multi.exhausted(MultipleRandom))
		for _, id := range multi.selectFor(MultipleRandom, rng) {
			seenAcrossCalls[id]++
		}
	}
	require.Len(t, multi.all, 3, "MultipleRandom's backing set must never shrink")
	reselected := false
	for _, count := range seenAcrossCalls {
		if count > 1 {
			reselected = true
			break
		}
	}
	require.True(t, reselected, "expected at least one cycle id to be selected more than once across calls")
}

// TestCyclePool_SingleRandomNeverRepeatsWithinApply confirms SingleRandom's
// destructive selection: once a cycle id is picked it cannot be picked
// again during the same Apply call.
func TestCyclePool_SingleRandomNeverRepeatsWithinApply(t *testing.T) {
	rng := tsprand.New(7)
	pool := newCyclePool(4)

	picked := make(map[int]bool)
	for !pool.exhausted(SingleRandom) {
		for _, id := range pool.selectFor(SingleRandom, rng) {
			require.False(t, picked[id], "cycle %d selected twice under SingleRandom", id)
			picked[id] = true
		}
	}
	require.Len(t, picked, 4)
}

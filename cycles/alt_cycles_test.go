package cycles_test

import (
	"testing"

	"github.com/kestrelrt/eaxtsp/cycles"
	"github.com/stretchr/testify/require"
)

// buildEB turns a P2 visiting order (closed tour) into the eB[to] = from
// array described by the EAX edge-set construction.
func buildEB(n int, p2 []int) []int {
	eB := make([]int, n)
	for i := range eB {
		eB[i] = cycles.NotSet
	}
	for i, from := range p2 {
		to := p2[(i+1)%len(p2)]
		eB[to] = from
	}
	return eB
}

func buildEA(n int, p1 []int) []int {
	eA := make([]int, n)
	for i := range eA {
		eA[i] = cycles.NotSet
	}
	for i, from := range p1 {
		to := p1[(i+1)%len(p1)]
		eA[from] = to
	}
	return eA
}

func TestAsymmetricAlternatingCycles_IdenticalParentsHaveNoCycles(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4}
	eA := buildEA(5, p1)
	eB := buildEB(5, p1)

	ac, err := cycles.NewAsymmetricAlternatingCycles(eA, eB)
	require.NoError(t, err)
	require.Empty(t, ac.Cycles())
}

func TestAsymmetricAlternatingCycles_DecomposesIntoTwoCycles(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{0, 2, 1, 3, 5, 4}
	eA := buildEA(6, p1)
	eB := buildEB(6, p2)

	ac, err := cycles.NewAsymmetricAlternatingCycles(eA, eB)
	require.NoError(t, err)
	require.Equal(t, map[int]int{0: 3, 1: 3}, ac.Cycles())
}

func TestAsymmetricAlternatingCycles_WalkYieldsAddEdgeArguments(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{0, 2, 1, 3, 5, 4}
	eA := buildEA(6, p1)
	eB := buildEB(6, p2)

	ac, err := cycles.NewAsymmetricAlternatingCycles(eA, eB)
	require.NoError(t, err)
	require.Equal(t, map[int]int{0: 3, 1: 3}, ac.Cycles())

	cycleID, ok := ac.CycleOf(1)
	require.True(t, ok)

	var got [][2]int
	for next, paired := range ac.Walk(cycleID) {
		got = append(got, [2]int{next, paired})
	}
	require.Equal(t, [][2]int{{1, 2}, {3, 1}, {2, 0}}, got)
}

func TestAsymmetricAlternatingCycles_RejectsLengthMismatch(t *testing.T) {
	_, err := cycles.NewAsymmetricAlternatingCycles([]int{0, 1}, []int{0, 1, 2})
	require.ErrorIs(t, err, cycles.ErrLengthMismatch)
}

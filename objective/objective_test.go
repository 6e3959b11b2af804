package objective_test

import (
	"testing"

	"github.com/kestrelrt/eaxtsp/directedid"
	"github.com/kestrelrt/eaxtsp/objective"
	"github.com/kestrelrt/eaxtsp/problem"
	"github.com/kestrelrt/eaxtsp/tour"
	"github.com/kestrelrt/eaxtsp/weights"
	"github.com/stretchr/testify/require"
)

func TestCalculateTSP_ClosedSquare(t *testing.T) {
	d, err := weights.NewDenseFromRows([][]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	})
	require.NoError(t, err)

	p, err := problem.NewTSProblem(0, intPtr(0), d)
	require.NoError(t, err)

	tr, err := tour.New(4, []int{0, 1, 2, 3}, intPtr(0))
	require.NoError(t, err)

	fit, err := objective.CalculateTSP(p, tr)
	require.NoError(t, err)
	require.Equal(t, objective.TSPFitness(4), fit)
}

func TestTSPFitness_CompareTo(t *testing.T) {
	require.Equal(t, -1, objective.TSPFitness(3).CompareTo(objective.TSPFitness(5)))
	require.Equal(t, 1, objective.TSPFitness(5).CompareTo(objective.TSPFitness(3)))
	require.Equal(t, 0, objective.TSPFitness(5).CompareTo(objective.TSPFitness(5)))
}

func TestSTSPFitness_CompareTo_MoreCustomersWins(t *testing.T) {
	a := objective.STSPFitness{Customers: 5, Weight: 100}
	b := objective.STSPFitness{Customers: 4, Weight: 1}
	require.Equal(t, -1, a.CompareTo(b))
}

func TestSTSPFitness_CompareTo_TieBreaksOnLowerWeight(t *testing.T) {
	a := objective.STSPFitness{Customers: 5, Weight: 10}
	b := objective.STSPFitness{Customers: 5, Weight: 20}
	require.Equal(t, -1, a.CompareTo(b))
}

func TestSTSPFitness_MonotoneUnderAdd(t *testing.T) {
	x := objective.STSPFitness{Customers: 2, Weight: 5}
	y := objective.STSPFitness{Customers: 1, Weight: 3}
	sum := x.Add(y)
	// y adds a visited customer, so the sum beats x (CompareTo < 0).
	require.LessOrEqual(t, sum.CompareTo(x), 0)
}

// CalculateSTSP scenario from spec.md section 8 concrete scenario 4: three
// physical vertices, turn penalties [0,1,1,5], budget max=infinity.
func TestCalculateSTSP_ThreePhysicalVertices(t *testing.T) {
	n := 6 // 3 physical vertices * 2 sides each
	d, err := weights.NewDense(n)
	require.NoError(t, err)
	set := func(from, to int, w float64) {
		require.NoError(t, d.Set(from, to, w))
	}
	// side-expanded indices: vertex v side s -> v*2+s
	set(directedid.SideIndex(0, 0), directedid.SideIndex(1, 1), 3) // w(0->1)
	set(directedid.SideIndex(1, 1), directedid.SideIndex(2, 0), 4) // w(1->2)
	set(directedid.SideIndex(2, 0), directedid.SideIndex(0, 0), 5) // w(2->0)

	turnPenalties := [4]float64{0, 1, 1, 5}
	p, err := problem.NewSTSProblem(0, nil, d, turnPenalties, 1e18)
	require.NoError(t, err)

	d0, err := directedid.Build(0, 0, 0, 0)
	require.NoError(t, err)
	d1, err := directedid.Build(1, 1, 1, 1)
	require.NoError(t, err)
	d2, err := directedid.Build(2, 0, 0, 2)
	require.NoError(t, err)

	tr, err := tour.New(48, []int{d0, d1, d2}, &d0)
	require.NoError(t, err)

	fit, err := objective.CalculateSTSP(p, tr)
	require.NoError(t, err)
	require.Equal(t, 3, fit.Customers)
	require.InDelta(t, 3+4+5+0+1+1, fit.Weight, 1e-9)
}

func intPtr(v int) *int { return &v }

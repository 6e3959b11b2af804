package eax_test

import (
	"testing"

	"github.com/kestrelrt/eaxtsp/eax"
	"github.com/kestrelrt/eaxtsp/objective"
	"github.com/kestrelrt/eaxtsp/problem"
	"github.com/kestrelrt/eaxtsp/tour"
	"github.com/kestrelrt/eaxtsp/tsprand"
	"github.com/kestrelrt/eaxtsp/weights"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// unitCircleMatrix builds a circulant distance matrix: w(i,j) = the
// shorter of the two arcs between i and j around an n-vertex ring.
func unitCircleMatrix(t *testing.T, n int) weights.Matrix {
	t.Helper()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := i - j
			if d < 0 {
				d = -d
			}
			if d > n-d {
				d = n - d
			}
			rows[i][j] = float64(d)
		}
	}
	m, err := weights.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func requireSpans(t *testing.T, child *tour.Tour, n int) {
	t.Helper()
	require.Equal(t, n, child.Count())
	seen := make(map[int]bool, n)
	for _, c := range child.Sequence() {
		require.False(t, seen[c], "duplicate customer %d", c)
		seen[c] = true
	}
	require.Len(t, seen, n)
}

// Scenario 1 (spec.md section 8): closed 5-node symmetric TSP on a unit
// circle; EAX (SingleRandom, nn=false, maxOffspring=1, fixed seed) must
// emit a 5-vertex tour starting at 0 with total weight no worse than the
// worse parent's fitness.
func TestEAX_ClosedFiveNode_Scenario1(t *testing.T) {
	w := unitCircleMatrix(t, 5)
	prob, err := problem.NewTSProblem(0, intPtr(0), w)
	require.NoError(t, err)

	p1, err := tour.New(5, []int{0, 1, 2, 3, 4}, intPtr(0))
	require.NoError(t, err)
	p2, err := tour.New(5, []int{0, 2, 4, 1, 3}, intPtr(0))
	require.NoError(t, err)

	fit1, err := objective.CalculateTSP(prob, p1)
	require.NoError(t, err)
	fit2, err := objective.CalculateTSP(prob, p2)
	require.NoError(t, err)
	worse := fit1
	if fit2.CompareTo(worse) > 0 {
		worse = fit2
	}

	opts := eax.Options{MaxOffspring: 1, Strategy: eax.SingleRandom, NN: false}
	op, err := eax.New(tsprand.New(42), opts, nil)
	require.NoError(t, err)

	child, fit, err := op.Apply(prob, p1, p2)
	require.NoError(t, err)
	requireSpans(t, child, 5)
	require.Equal(t, 0, child.First())
	require.Equal(t, tour.Closed, child.ShapeOf())
	require.LessOrEqual(t, float64(fit), float64(worse))
}

// Scenario 2 (spec.md section 8): open 4-node TSP; EAX must convert to
// closed, run, and reopen; the child starts at 0 and has no closing edge.
func TestEAX_OpenFourNode_Scenario2(t *testing.T) {
	w, err := weights.NewDenseFromRows([][]float64{
		{0, 1, 1, 10},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{10, 1, 1, 0},
	})
	require.NoError(t, err)

	prob, err := problem.NewTSProblem(0, nil, w)
	require.NoError(t, err)

	p1, err := tour.New(4, []int{0, 1, 2, 3}, nil)
	require.NoError(t, err)
	p2, err := tour.New(4, []int{0, 2, 1, 3}, nil)
	require.NoError(t, err)

	op, err := eax.New(tsprand.New(1), eax.DefaultOptions(), nil)
	require.NoError(t, err)

	child, _, err := op.Apply(prob, p1, p2)
	require.NoError(t, err)
	requireSpans(t, child, 4)
	require.Equal(t, 0, child.First())
	require.Equal(t, tour.Open, child.ShapeOf())
}

// Scenario 3 (spec.md section 8): fixed-endpoint TSP, first=0, last=4,
// 5 nodes. Normalization drops 4, EAX runs on the closed 4-node problem,
// and the output re-appends 4 as the final customer.
func TestEAX_FixedEndpoint_Scenario3(t *testing.T) {
	w := unitCircleMatrix(t, 5)
	last := 4
	prob, err := problem.NewTSProblem(0, &last, w)
	require.NoError(t, err)

	p1, err := tour.New(5, []int{0, 1, 2, 3, 4}, &last)
	require.NoError(t, err)
	p2, err := tour.New(5, []int{0, 2, 1, 3, 4}, &last)
	require.NoError(t, err)

	op, err := eax.New(tsprand.New(7), eax.DefaultOptions(), nil)
	require.NoError(t, err)

	child, _, err := op.Apply(prob, p1, p2)
	require.NoError(t, err)
	requireSpans(t, child, 5)
	require.Equal(t, tour.FixedEnd, child.ShapeOf())
	seq := child.Sequence()
	require.Equal(t, 4, seq[len(seq)-1])
	gotLast, ok := child.Last()
	require.True(t, ok)
	require.Equal(t, 4, gotLast)
}

// Scenario 6 (spec.md section 8): determinism. Identical parents, problem,
// and seed must yield a byte-equal child sequence across two independent
// runs.
func TestEAX_Deterministic_Scenario6(t *testing.T) {
	w := unitCircleMatrix(t, 6)
	prob, err := problem.NewTSProblem(0, intPtr(0), w)
	require.NoError(t, err)

	p1, err := tour.New(6, []int{0, 1, 2, 3, 4, 5}, intPtr(0))
	require.NoError(t, err)
	p2, err := tour.New(6, []int{0, 2, 4, 1, 5, 3}, intPtr(0))
	require.NoError(t, err)

	run := func() []int {
		op, err := eax.New(tsprand.New(99), eax.Options{MaxOffspring: 5, Strategy: eax.MultipleRandom, NN: true}, nil)
		require.NoError(t, err)
		child, _, err := op.Apply(prob, p1, p2)
		require.NoError(t, err)
		return child.Sequence()
	}

	seq1 := run()
	seq2 := run()
	require.Equal(t, seq1, seq2)
}

// Invariant 6 (spec.md section 8): EAX with identical parents returns a
// tour with the same edge set as the parents (no AB-cycles can form, so
// step 3 generates no offspring and step 4's fallback materializes E_A
// unchanged).
func TestEAX_IdenticalParents_SameEdgeSet(t *testing.T) {
	w := unitCircleMatrix(t, 5)
	prob, err := problem.NewTSProblem(0, intPtr(0), w)
	require.NoError(t, err)

	p1, err := tour.New(5, []int{0, 1, 2, 3, 4}, intPtr(0))
	require.NoError(t, err)
	p2, err := tour.New(5, []int{0, 1, 2, 3, 4}, intPtr(0))
	require.NoError(t, err)

	op, err := eax.New(tsprand.New(3), eax.DefaultOptions(), nil)
	require.NoError(t, err)

	child, _, err := op.Apply(prob, p1, p2)
	require.NoError(t, err)
	require.Equal(t, p1.Sequence(), child.Sequence())
}

// Open question 1 (spec.md section 9, SPEC_FULL.md section 5): when EAX
// falls back to materializing E_A directly, the reverse shape-
// normalization step still runs unconditionally, including for an
// originally-open problem.
func TestEAX_FallbackStillReopens(t *testing.T) {
	w := unitCircleMatrix(t, 5)
	prob, err := problem.NewTSProblem(0, nil, w)
	require.NoError(t, err)

	// Identical parents guarantee zero AB-cycles, forcing the fallback
	// path (spec.md section 4.5 step 4) regardless of strategy/seed.
	p1, err := tour.New(5, []int{0, 1, 2, 3, 4}, nil)
	require.NoError(t, err)
	p2, err := tour.New(5, []int{0, 1, 2, 3, 4}, nil)
	require.NoError(t, err)

	op, err := eax.New(tsprand.New(5), eax.DefaultOptions(), nil)
	require.NoError(t, err)

	child, _, err := op.Apply(prob, p1, p2)
	require.NoError(t, err)
	require.Equal(t, tour.Open, child.ShapeOf())
	require.Equal(t, []int{0, 1, 2, 3, 4}, child.Sequence())
}

// Precondition violation (spec.md section 7): Apply called with a parent
// whose first or last disagrees with the problem's must raise
// ErrPreconditionViolation.
func TestEAX_PreconditionViolation(t *testing.T) {
	w := unitCircleMatrix(t, 4)
	prob, err := problem.NewTSProblem(0, intPtr(0), w)
	require.NoError(t, err)

	goodParent, err := tour.New(4, []int{0, 1, 2, 3}, intPtr(0))
	require.NoError(t, err)
	wrongFirst, err := tour.New(4, []int{1, 2, 3, 0}, intPtr(1))
	require.NoError(t, err)

	op, err := eax.New(tsprand.New(1), eax.DefaultOptions(), nil)
	require.NoError(t, err)

	_, _, err = op.Apply(prob, goodParent, wrongFirst)
	require.ErrorIs(t, err, eax.ErrPreconditionViolation)
}

func TestNew_RejectsNonPositiveMaxOffspring(t *testing.T) {
	_, err := eax.New(tsprand.New(1), eax.Options{MaxOffspring: 0}, nil)
	require.ErrorIs(t, err, eax.ErrInvalidMaxOffspring)
}

func TestOptions_Name(t *testing.T) {
	require.Equal(t, "EAX_(SR30_NN)", eax.DefaultOptions().Name())
	require.Equal(t, "EAX_(MR5)", eax.Options{MaxOffspring: 5, Strategy: eax.MultipleRandom}.Name())
}

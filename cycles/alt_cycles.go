package cycles

import (
	"errors"
	"iter"
)

// Sentinel errors for AsymmetricAlternatingCycles construction.
var (
	ErrLengthMismatch = errors.New("cycles: eA and eB must have equal length")
)

// AsymmetricAlternatingCycles is an immutable AB-cycle decomposition of the
// edge-union multigraph E_A ⊕ E_B of two parent tours.
//
// For every vertex v with eA[v] != NotSet, let a = eA[v] and b = eB[a] (eB
// is indexed by "to", giving the P2-predecessor of a). If v != b and
// b != NotSet, the triple (v, a, b) is one alternating hop: an A-edge
// v->a followed by the B-edge b->a. Chaining triples by following b as
// the next v partitions the valid triples into AB-cycles.
type AsymmetricAlternatingCycles struct {
	n       int
	a       []int
	b       []int
	valid   []bool
	cycleOf []int // cycle id per vertex, or NotSet if v has no valid triple
	lengths map[int]int
	order   map[int][]int // cycle id -> vertices in walk order
}

// NewAsymmetricAlternatingCycles decomposes eA (E_A successor array) and
// eB (E_B predecessor array, eB[to] = from) into AB-cycles.
//
// Complexity: O(N).
func NewAsymmetricAlternatingCycles(eA, eB []int) (*AsymmetricAlternatingCycles, error) {
	if len(eA) != len(eB) {
		return nil, ErrLengthMismatch
	}
	n := len(eA)

	ac := &AsymmetricAlternatingCycles{
		n:       n,
		a:       make([]int, n),
		b:       make([]int, n),
		valid:   make([]bool, n),
		cycleOf: make([]int, n),
		lengths: make(map[int]int),
		order:   make(map[int][]int),
	}
	for v := range ac.cycleOf {
		ac.cycleOf[v] = NotSet
	}

	for v := 0; v < n; v++ {
		av := eA[v]
		if av == NotSet {
			continue
		}
		if av < 0 || av >= n {
			return nil, ErrOutOfRange
		}
		bv := eB[av]
		if bv == NotSet || bv == v {
			continue
		}
		if bv < 0 || bv >= n {
			return nil, ErrOutOfRange
		}
		ac.a[v] = av
		ac.b[v] = bv
		ac.valid[v] = true
	}

	nextID := 0
	for v := 0; v < n; v++ {
		if !ac.valid[v] || ac.cycleOf[v] != NotSet {
			continue
		}
		id := nextID
		nextID++
		cur := v
		for {
			ac.cycleOf[cur] = id
			ac.order[id] = append(ac.order[id], cur)
			nxt := ac.b[cur]
			if nxt == v {
				break
			}
			if !ac.valid[nxt] || ac.cycleOf[nxt] != NotSet {
				break
			}
			cur = nxt
		}
		ac.lengths[id] = len(ac.order[id])
	}

	return ac, nil
}

// Cycles returns a snapshot of cycle-id to length.
func (ac *AsymmetricAlternatingCycles) Cycles() map[int]int {
	out := make(map[int]int, len(ac.lengths))
	for k, v := range ac.lengths {
		out[k] = v
	}
	return out
}

// Next reports the (nextVertex, pairedVertex) triple rooted at v, i.e.
// (eA[v], eB[eA[v]]), if v carries a valid alternating triple.
func (ac *AsymmetricAlternatingCycles) Next(v int) (nextVertex, pairedVertex int, ok bool) {
	if v < 0 || v >= ac.n || !ac.valid[v] {
		return NotSet, NotSet, false
	}
	return ac.a[v], ac.b[v], true
}

// CycleOf reports which AB-cycle v belongs to, if any.
func (ac *AsymmetricAlternatingCycles) CycleOf(v int) (int, bool) {
	if v < 0 || v >= ac.n || ac.cycleOf[v] == NotSet {
		return NotSet, false
	}
	return ac.cycleOf[v], true
}

// Walk yields (nextVertex, pairedVertex) for every triple of the given
// AB-cycle in encounter order. Applying AsymmetricCycles.AddEdge(paired,
// next) for each yielded pair patches that cycle's A-edges with the
// corresponding B-edges.
func (ac *AsymmetricAlternatingCycles) Walk(cycleID int) iter.Seq2[int, int] {
	verts := ac.order[cycleID]
	return func(yield func(int, int) bool) {
		for _, v := range verts {
			if !yield(ac.a[v], ac.b[v]) {
				return
			}
		}
	}
}

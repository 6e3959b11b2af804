package weights

import (
	"errors"
	"math"
)

// Sentinel errors. Never wrapped with fmt.Errorf where one of these
// suffices.
var (
	// ErrInvalidDimensions indicates a non-positive row/column count.
	ErrInvalidDimensions = errors.New("weights: invalid matrix dimensions")

	// ErrOutOfRange indicates an (row,col) pair outside the matrix bounds.
	ErrOutOfRange = errors.New("weights: index out of range")

	// ErrNonSquare indicates Rows() != Cols().
	ErrNonSquare = errors.New("weights: matrix is not square")
)

// Matrix is the minimal contract the routing core requires of a
// precomputed weight table: square, addressable, directed (asymmetry is
// allowed; callers enforce symmetry where they need it).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the weight at (row,col), or ErrOutOfRange.
	At(row, col int) (float64, error)
}

// Dense is a row-major Matrix backed by a flat slice.
type Dense struct {
	n    int       // order (rows == cols == n)
	data []float64 // flat storage, len == n*n
}

// Compile-time assertion that *Dense implements Matrix.
var _ Matrix = (*Dense)(nil)

// NewDense allocates an n×n Dense matrix initialized to zero.
//
// Complexity: O(n^2) time and space.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// NewDenseFromRows builds a Dense from a square [][]float64, copying values
// so later mutation of rows does not alias the returned matrix.
//
// Complexity: O(n^2).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
		copy(d.data[i*n:(i+1)*n], rows[i])
	}
	return d, nil
}

// Rows returns the matrix order.
func (d *Dense) Rows() int { return d.n }

// Cols returns the matrix order.
func (d *Dense) Cols() int { return d.n }

func (d *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= d.n || col < 0 || col >= d.n {
		return 0, ErrOutOfRange
	}
	return row*d.n + col, nil
}

// At returns the weight at (row,col).
//
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	idx, err := d.index(row, col)
	if err != nil {
		return 0, err
	}
	return d.data[idx], nil
}

// Set stores w at (row,col).
//
// Complexity: O(1).
func (d *Dense) Set(row, col int, w float64) error {
	idx, err := d.index(row, col)
	if err != nil {
		return err
	}
	d.data[idx] = w
	return nil
}

// NearestNeighborsForward returns the k vertices u (u != v) with the
// smallest w(v,u), sorted ascending by weight, ties broken by smaller
// index. +Inf-weight neighbors are included only if fewer than k finite
// ones exist.
//
// Complexity: O(n^2) in the worst case, using an insertion sort over all
// n-1 candidates.
func NearestNeighborsForward(m Matrix, v, k int) ([]int, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, ErrNonSquare
	}
	if v < 0 || v >= n {
		return nil, ErrOutOfRange
	}
	if k <= 0 {
		return nil, nil
	}

	type cand struct {
		idx int
		w   float64
	}
	cands := make([]cand, 0, n-1)
	for u := 0; u < n; u++ {
		if u == v {
			continue
		}
		w, err := m.At(v, u)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(w) {
			continue
		}
		cands = append(cands, cand{idx: u, w: w})
	}

	// Simple insertion sort by (w, idx): n is expected small in tests and
	// k is a fixed small constant in production use (k=10); a full sort
	// keeps the code short without introducing an extra dependency.
	for i := 1; i < len(cands); i++ {
		cur := cands[i]
		j := i - 1
		for j >= 0 && (cands[j].w > cur.w || (cands[j].w == cur.w && cands[j].idx > cur.idx)) {
			cands[j+1] = cands[j]
			j--
		}
		cands[j+1] = cur
	}

	if k > len(cands) {
		k = len(cands)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].idx
	}
	return out, nil
}

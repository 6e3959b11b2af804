package tour

import (
	"errors"
	"iter"
)

// NotSet marks "no successor" in the next[] array. Distinct from any valid
// customer id (customer ids are non-negative).
const NotSet = -1

// Shape enumerates the three tour topologies of spec.md section 3.
type Shape int

const (
	// Open: last is absent; the tour has no closing edge.
	Open Shape = iota
	// Closed: last == first; the tour returns to first (a genuine cycle).
	Closed
	// FixedEnd: last is a distinct, immovable final customer.
	FixedEnd
)

// Sentinel errors. Never wrapped with fmt.Errorf where one of these
// suffices.
var (
	ErrEmptySequence     = errors.New("tour: empty sequence")
	ErrDuplicateCustomer = errors.New("tour: duplicate customer in sequence")
	ErrOutOfRange        = errors.New("tour: customer id out of range")
	ErrNotPresent        = errors.New("tour: customer not present in tour")
	ErrAlreadyPresent    = errors.New("tour: customer already present in tour")
	ErrFixedLast         = errors.New("tour: operation would disturb the fixed endpoint")
	ErrFirstImmutable    = errors.New("tour: first customer cannot be removed")
	ErrLastMismatch      = errors.New("tour: last does not match the sequence tail")
)

// Tour is an ordered sequence of distinct customer ids in [0,n) with an
// O(1)-successor representation.
type Tour struct {
	n       int    // universe size; customer ids lie in [0,n)
	next    []int  // next[c] = successor(c), or NotSet
	present []bool // present[c] = c is currently in the tour
	first   int    // the required starting customer
	last    int    // meaningful only when shape != Open
	shape   Shape
	count   int
}

// New builds a Tour from an initial ordered sequence and an optional fixed
// last customer.
//
// Contract:
//   - sequence is non-empty, contains distinct ids in [0,n).
//   - last == nil            => Open.
//   - last != nil, *last == sequence[0] => Closed.
//   - last != nil, *last == sequence[len(sequence)-1] (and != sequence[0])
//     => FixedEnd.
//   - any other value for *last is ErrLastMismatch.
//
// Complexity: O(len(sequence)) time and space.
func New(n int, sequence []int, last *int) (*Tour, error) {
	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}

	t := &Tour{
		n:       n,
		next:    make([]int, n),
		present: make([]bool, n),
		first:   sequence[0],
	}
	for i := range t.next {
		t.next[i] = NotSet
	}

	for _, c := range sequence {
		if c < 0 || c >= n {
			return nil, ErrOutOfRange
		}
		if t.present[c] {
			return nil, ErrDuplicateCustomer
		}
		t.present[c] = true
		t.count++
	}

	tail := sequence[len(sequence)-1]
	for i := 0; i+1 < len(sequence); i++ {
		t.next[sequence[i]] = sequence[i+1]
	}

	switch {
	case last == nil:
		t.shape = Open
		t.last = NotSet
		// next[tail] stays NotSet: the open end.
	case *last == t.first:
		t.shape = Closed
		t.last = t.first
		t.next[tail] = t.first // the array itself forms the cycle.
	case *last == tail && *last != t.first:
		t.shape = FixedEnd
		t.last = *last
		// next[tail] stays NotSet: last has no successor.
	default:
		return nil, ErrLastMismatch
	}

	return t, nil
}

// Rebase constructs a new Tour over the same order as other, but under a
// different shape (open/closed/fixed-endpoint), without otherwise changing
// the order of customers.
//
// Complexity: O(n) time and space.
func Rebase(other *Tour, last *int) (*Tour, error) {
	seq := other.Sequence()
	return New(other.n, seq, last)
}

// Count returns the number of customers currently in the tour.
func (t *Tour) Count() int { return t.count }

// First returns the required starting customer.
func (t *Tour) First() int { return t.first }

// Last returns the fixed/closing endpoint and whether one is defined
// (false for Open tours).
func (t *Tour) Last() (int, bool) {
	if t.shape == Open {
		return 0, false
	}
	return t.last, true
}

// ShapeOf returns the tour's topology.
func (t *Tour) ShapeOf() Shape { return t.shape }

// Contains reports whether c is currently part of the tour.
//
// Complexity: O(1).
func (t *Tour) Contains(c int) bool {
	if c < 0 || c >= t.n {
		return false
	}
	return t.present[c]
}

// NextTo returns the successor of c, or (0,false) if c has none (the tour's
// open end, or c itself is absent).
//
// Complexity: O(1).
func (t *Tour) NextTo(c int) (int, bool) {
	if !t.Contains(c) {
		return 0, false
	}
	nxt := t.next[c]
	if nxt == NotSet {
		return 0, false
	}
	return nxt, true
}

// InsertAfter inserts inserted immediately after from.
//
// Contract:
//   - from must be present.
//   - inserted must not already be present.
//   - inserted must not equal the fixed last customer (it is immovable).
//   - from must not equal the fixed last customer (inserting after it would
//     make it non-terminal, violating the FixedEnd invariant).
//
// Complexity: O(1).
func (t *Tour) InsertAfter(from, inserted int) error {
	if !t.Contains(from) {
		return ErrNotPresent
	}
	if inserted < 0 || inserted >= t.n {
		return ErrOutOfRange
	}
	if t.shape == FixedEnd && inserted == t.last {
		return ErrFixedLast
	}
	if t.present[inserted] {
		return ErrAlreadyPresent
	}
	if t.shape == FixedEnd && from == t.last {
		return ErrFixedLast
	}

	t.next[inserted] = t.next[from]
	t.next[from] = inserted
	t.present[inserted] = true
	t.count++
	return nil
}

// Remove deletes c from the tour, splicing its predecessor directly to its
// successor.
//
// Contract:
//   - c == first is rejected (first is always present).
//   - c equal to a fixed last is rejected (immovable).
//
// Complexity: O(n) to locate the predecessor (the representation has no
// back-pointers); acceptable since removal is rare relative to traversal.
func (t *Tour) Remove(c int) error {
	if !t.Contains(c) {
		return ErrNotPresent
	}
	if c == t.first {
		return ErrFirstImmutable
	}
	if t.shape == FixedEnd && c == t.last {
		return ErrFixedLast
	}

	pred := t.findPredecessor(c)
	if pred == NotSet {
		// c has no predecessor reachable from first; cannot happen for a
		// well-formed tour containing c, guarded defensively.
		return ErrNotPresent
	}

	t.next[pred] = t.next[c]
	t.next[c] = NotSet
	t.present[c] = false
	t.count--
	return nil
}

// findPredecessor walks from first until it finds the customer whose
// successor is c, or returns NotSet if c is unreachable (shouldn't happen
// on a well-formed tour).
func (t *Tour) findPredecessor(c int) int {
	cur := t.first
	for i := 0; i < t.count; i++ {
		nxt := t.next[cur]
		if nxt == c {
			return cur
		}
		if nxt == NotSet {
			return NotSet
		}
		cur = nxt
		if cur == t.first {
			break
		}
	}
	return NotSet
}

// Pairs returns a lazy sequence of consecutive (from,to) pairs in tour
// order, including the closing pair when the tour is Closed.
func (t *Tour) Pairs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		cur := t.first
		for i := 0; i < t.count; i++ {
			nxt := t.next[cur]
			if nxt == NotSet {
				return
			}
			if !yield(cur, nxt) {
				return
			}
			cur = nxt
			if cur == t.first {
				return
			}
		}
	}
}

// Sequence returns the ordered list of customers, starting at first,
// without the closing repeat of first for Closed tours.
//
// Complexity: O(n).
func (t *Tour) Sequence() []int {
	out := make([]int, 0, t.count)
	cur := t.first
	for i := 0; i < t.count; i++ {
		out = append(out, cur)
		nxt := t.next[cur]
		if nxt == NotSet || nxt == t.first {
			break
		}
		cur = nxt
	}
	return out
}

// Clone returns an independent deep copy.
//
// Complexity: O(n).
func (t *Tour) Clone() *Tour {
	c := &Tour{
		n:     t.n,
		next:  make([]int, t.n),
		present: make([]bool, t.n),
		first: t.first,
		last:  t.last,
		shape: t.shape,
		count: t.count,
	}
	copy(c.next, t.next)
	copy(c.present, t.present)
	return c
}

// CopyFrom replaces t's contents with a deep copy of other. Idempotent:
// calling it twice with the same other leaves t equal to other.
//
// Complexity: O(n).
func (t *Tour) CopyFrom(other *Tour) {
	if t.n != other.n {
		t.next = make([]int, other.n)
		t.present = make([]bool, other.n)
		t.n = other.n
	}
	copy(t.next, other.next)
	copy(t.present, other.present)
	t.first = other.first
	t.last = other.last
	t.shape = other.shape
	t.count = other.count
}

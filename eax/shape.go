package eax

import "github.com/kestrelrt/eaxtsp/tour"

// normalizeClosed converts t to a closed tour with endpoint == first
// (spec.md section 4.5 step 0), reporting whether a conversion actually
// happened. Open tours are rebuilt as closed tours in the same order; a
// fixed-endpoint tour has its
// immovable last customer dropped from the sequence before closing, since
// EAX only ever reasons about a pure Hamiltonian cycle over first.
func normalizeClosed(t *tour.Tour, n, first int) (*tour.Tour, bool, error) {
	switch t.ShapeOf() {
	case tour.Closed:
		return t, false, nil
	case tour.Open:
		closed, err := tour.New(n, t.Sequence(), &first)
		return closed, true, err
	default: // tour.FixedEnd
		seq := t.Sequence()
		trimmed := seq[:len(seq)-1] // drop the fixed last customer
		closed, err := tour.New(n, trimmed, &first)
		return closed, true, err
	}
}

// denormalize reverses normalizeClosed, converting child back to
// origShape (spec.md section 4.5 step 5). Per spec.md section 9, this
// runs unconditionally - including on the fallback-materialized E_A -
// regardless of whether the original problem was open or fixed-endpoint.
func denormalize(child *tour.Tour, n int, origShape tour.Shape, origLast *int) (*tour.Tour, error) {
	switch origShape {
	case tour.Closed:
		return child, nil
	case tour.Open:
		return tour.New(n, child.Sequence(), nil)
	default: // tour.FixedEnd
		seq := append(child.Sequence(), *origLast)
		return tour.New(n, seq, origLast)
	}
}

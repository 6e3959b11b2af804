// Package weights defines the weight-matrix contract consumed by the
// routing core (tour, cycles, objective, eax, stsp): a square, addressable
// two-dimensional table of edge weights.
//
// The precomputation of these weights (map-matching, road-network routing,
// turn-restriction lookups) is an external collaborator and out of scope
// here; this package only defines the shape its result must have and
// provides a dense reference implementation.
package weights

// Package cycles implements the two edge-set structures at the heart of the
// EAX crossover:
//
//   - AsymmetricCycles: a mutable directed edge set over N vertices that
//     maintains a partition into simple directed cycles, used both to hold
//     a parent tour's edges and as the EAX "donor" being patched and
//     reconnected.
//   - AsymmetricAlternatingCycles: an immutable AB-cycle decomposition of
//     the edge-union multigraph of two parent tours, alternating A-edges
//     and B-edges.
//
// Design:
//   - Plain int slices indexed by vertex id; no recursion, no hidden
//     allocations on the hot path.
//   - Deterministic tie-breaks: cycle representatives are the minimum
//     vertex id on the cycle; walks proceed in a fixed, caller-visible
//     order.
//   - No logging, no panics on user input - only sentinel errors.
package cycles

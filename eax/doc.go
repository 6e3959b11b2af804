// Package eax implements the Edge Assembly Crossover (EAX) genetic
// operator (spec.md section 4.5), the heart of the routing core.
//
// Given two parent tours over the same problem, Operator.Apply:
//
//  1. normalizes both parents to a closed shape with no fixed endpoint,
//  2. builds the edge-union multigraph E_A ⊕ E_B and decomposes it into
//     AB-cycles via package cycles,
//  3. generates up to maxOffspring candidate children by patching a
//     donor copy of E_A (E_A itself when maxOffspring is 1) with
//     selected AB-cycles and reconnecting the
//     resulting sub-tours into a single Hamiltonian cycle using
//     nearest-neighbor-guided (then brute-force) 2-opt-style merges,
//  4. falls back to E_A if no offspring spans every customer (E_A is
//     unmodified unless maxOffspring is 1), and
//  5. reverses the shape normalization on whichever child is kept.
//
// Design (grounded on tsp/two_opt.go's deterministic first-improvement
// scanning and tsp/rng.go's injected-source discipline):
//   - No process-wide randomness: every Operator owns one *tsprand.Rand,
//     derived once at construction, never shared across goroutines.
//   - No panics on malformed input; the one programmer-error case
//     (parent shape disagreeing with the problem) is a typed
//     PreconditionError, matched via errors.Is against
//     ErrPreconditionViolation.
//   - Recoverable conditions (shape mismatch) surface through a
//     pluggable diag.Sink, at most once per Apply call.
//   - Cycle structures (package cycles) are scratch: built, mutated, and
//     discarded entirely within one Apply call.
package eax

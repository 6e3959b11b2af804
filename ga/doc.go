// Package ga supplies the solver-framework interfaces named in spec.md
// section 4.7 (Operator / Crossover / SolverBase) plus a minimal
// generational genetic algorithm that exercises eax.Operator end to end:
// population init, binary-tournament selection, crossover, an optional
// mutation hook, and elitist replacement.
//
// The GA loop itself is explicitly outside the core's minimum scope
// (spec.md section 4.7); it is included here only because the spec
// requires SolverBase to "accept any crossover satisfying the EAX
// contract", and an interface with no implementation cannot be exercised.
// It remains a single-goroutine, synchronous loop (spec.md section 5 and
// section 6 Non-goals: no parallel/distributed search inside the core).
package ga

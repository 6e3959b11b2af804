// Package stsp implements the U-turn-aware directed Selective-TSP driver
// (spec.md section 4.6, the "STSPRouter"): it validates endpoints against
// a matrix collaborator, builds a problem.STSProblem over the directed,
// side-expanded weight matrix, invokes a solver, and exposes the
// resulting tour or a diagnostic error message. Grounded on
// tsp/solve.go's validate -> build -> delegate -> stabilize dispatcher
// shape.
package stsp

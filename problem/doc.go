// Package problem defines the three immutable problem variants consumed by
// solvers and objectives: TSProblem (symmetric/asymmetric TSP), STSProblem
// (directed, turn-penalized, budget-bounded selective TSP), and
// TSPTWProblem (TSP with time windows). It also defines the MatrixProvider
// contract the STSP driver expects from its external matrix collaborator.
//
// Problems are immutable once constructed; the same instance is shared
// read-only across every solver invocation that references it.
package problem

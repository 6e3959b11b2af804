// Package objective implements the fitness algebra shared by every solver
// in this module: a zero/infinite identity pair, a commutative add/subtract
// monoid, a total order via CompareTo, and a Calculate entry point that
// walks a tour against a problem's weight table.
//
// Three concrete objectives are provided: TSP (scalar cost, lower is
// better), TSP-TW (same scalar shape, marked non-continuous because time-
// window violations introduce discontinuities elsewhere in the pipeline),
// and STSP (composite customers/weight fitness for the directed, budget-
// bounded solver).
package objective

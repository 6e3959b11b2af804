package ga

import "github.com/kestrelrt/eaxtsp/eax"

// Compile-time assertion that eax.Operator satisfies the Crossover
// contract SolverBase depends on.
var _ Crossover = (*eax.Operator)(nil)

package ga

// Options configures a SolverBase run, following the teacher's
// struct-of-knobs + DefaultOptions() convention (tsp.Options /
// tsp.DefaultOptions).
type Options struct {
	// PopulationSize is the number of tours maintained per generation.
	// Default 30.
	PopulationSize int
	// Generations bounds how many replacement rounds run. Default 50.
	Generations int
	// TournamentSize is the number of contenders sampled per parent
	// selection. Default 2 (binary tournament).
	TournamentSize int
	// Elitism is the number of best individuals carried over unchanged
	// into the next generation. Default 1.
	Elitism int
	// Mutation perturbs each child after crossover; nil disables it.
	Mutation MutationFn
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PopulationSize: 30,
		Generations:    50,
		TournamentSize: 2,
		Elitism:        1,
	}
}

// Package builder generates deterministic synthetic road networks for tests,
// benchmarks and demos.
//
// Every constructor places intersections at real coordinates and gives each road
// segment a length of at least the great-circle distance between its endpoints
// (straight distance × detour factor, factor ≥ 1). The straight-line A* heuristic
// is therefore admissible on every generated network.
//
// Constructors:
//
//	Grid(rows, cols)     – two-way streets on a rows×cols lattice.
//	Path(n)              – a one-way chain of n intersections running east.
//	RandomSparse(n, p)   – n scattered intersections, each ordered pair linked with prob p.
//
// Options:
//
//	WithOrigin, WithSpacing – placement of the lattice / scatter box.
//	WithSeed, WithRand      – RNG for RandomSparse and random detours.
//	WithDetour(min, max)    – per-segment detour factor range.
//	WithRoadType            – road type recorded on generated edges.
//
// Option constructors panic on meaningless input; constructors never panic and
// return sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
package builder

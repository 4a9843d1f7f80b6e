package searcher

// Search hyperparameters.

// DefaultMaxDepth is the number of plies searched before the evaluator is
// consulted.
const DefaultMaxDepth = 3

// DefaultSamples is the number of dice rolls drawn at each chance node to
// approximate the 21-outcome expectation.
const DefaultSamples = 14

// DefaultGoroutines is the size of the root-candidate worker pool.
const DefaultGoroutines = 4

// winScore is the terminal score for a won game. Large enough to dominate
// any heuristic sum, but finite so chance-node means stay well defined when
// won and lost outcomes mix in one sample.
const winScore = 1e12

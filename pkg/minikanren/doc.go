// Package minikanren implements a small relational programming engine in
// the miniKanren family: logic variables and substitutions, an extensible
// unifier, a lazy fair-interleaving result stream, goals and their
// combinators, and a reifier that projects answers into readable terms.
//
// The engine is single-threaded and cooperative: fairness between branches
// of a search (including branches that never terminate) comes from the
// Stream's suspension discipline, not from OS threads. See stream.go for
// the scheduler and goals.go for the primitives built on top of it.
package minikanren

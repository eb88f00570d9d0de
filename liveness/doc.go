// Package liveness computes, for every code offset in a bytecode.Function,
// the set of locals live immediately afterward together with every later
// offset that reads each one ("track all usages" mode, as opposed to a
// plain live/dead bit per local).
//
// This is the upstream collaborator dse.DefUseGraph depends on: dse never
// recomputes liveness itself, it only reads the Annotation this package
// produces. Analyzer implements a single backward dataflow pass over a
// straight-line instruction sequence — offsets only flow forward in this
// IR, so a definition's "live after" set is exactly the future read sites
// reachable before the next redefinition of the same local.
package liveness

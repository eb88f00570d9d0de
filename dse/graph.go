// Package dse implements the dead-store-elimination transformation: it
// removes assignments and constant loads whose results are never observed,
// including chains of such definitions that become dead only after earlier
// removals, and self-assignments of the form `x = x`.
//
// The transformation is built around a definition-use graph (DefUseGraph):
// a directed graph over code offsets where an edge a -> b means "the value
// defined at a is used at b". Nodes are restricted to side-effect-free
// definitions (bytecode.Assign, bytecode.Load) on the definition side; any
// other instruction (e.g. a call) may still appear as a use, but is never
// itself a candidate for removal.
//
// This package never recomputes liveness (see package liveness), never
// renumbers locals, never reorders instructions, and performs no
// inter-procedural reasoning.
package dse

import (
	"github.com/katalvlaran/movedce/bytecode"
	"github.com/katalvlaran/movedce/liveness"
)

// DefUseGraph is a per-function definition-use relation plus the set of
// nodes already proven dead. It is built once from a function body and a
// liveness annotation, then consumed (destructively) by DeadStores.
type DefUseGraph struct {
	// children[a] is the set of offsets that use the value defined at a.
	children map[bytecode.CodeOffset]*orderedSet
	// parents[b] is the set of definitions whose value is used at b.
	parents map[bytecode.CodeOffset]*orderedSet
	// dead holds offsets already proven to be dead stores, pending
	// removal by DeadStores.
	dead *orderedSet
}

// NewDefUseGraph builds a DefUseGraph for fn using the liveness annotation
// ann, which must have been produced in "track all usages" mode (see
// package liveness). ann must not be nil; callers are expected to have
// already checked for its presence (see dse.Pass, which turns a missing
// annotation into ErrMissingLiveness before ever calling this).
func NewDefUseGraph(fn *bytecode.Function, ann *liveness.Annotation) *DefUseGraph {
	g := &DefUseGraph{
		children: make(map[bytecode.CodeOffset]*orderedSet),
		parents:  make(map[bytecode.CodeOffset]*orderedSet),
		dead:     newOrderedSet(),
	}
	g.populateFrom(fn, ann)
	return g
}

// populateFrom walks the instruction sequence in increasing offset order,
// incorporating every restricted definition (bytecode.Assign, bytecode.Load)
// into the graph. Any other instruction is skipped on the definition side;
// it may still surface as a use via some other definition's edge.
func (g *DefUseGraph) populateFrom(fn *bytecode.Function, ann *liveness.Annotation) {
	for i, instr := range fn.Code {
		offset := bytecode.CodeOffset(i)
		switch ins := instr.(type) {
		case bytecode.Assign:
			if ins.IsSelf() {
				// Self-assignment is always a dead store, but its use
				// edges are still wired (when dst is live afterward) so
				// that transitive deadness can propagate through it: a
				// forced-dead node is not necessarily a leaf.
				g.incorporateDefinition(ins.Dst, offset, ann, true)
			} else {
				g.incorporateDefinition(ins.Dst, offset, ann, false)
			}
		case bytecode.Load:
			g.incorporateDefinition(ins.Dst, offset, ann, false)
		default:
			// Not a restricted definition: calls, branches, returns, and
			// anything else this package does not recognize. Conservative
			// by construction — only Assign/Load can ever be removed.
		}
	}
}

// incorporateDefinition wires one restricted definition of local def at
// offset into the graph.
//
//  1. If def has no live-after information at offset, mark offset dead and
//     add no outgoing edges — nothing observes this definition.
//  2. Otherwise, if forcedDead (self-assignment), mark offset dead
//     regardless. For every later offset that reads def, add the edge
//     offset -> use. A definition whose live-after set is present but
//     empty ends up with zero children and is marked dead here, the same
//     as "no live-after info".
func (g *DefUseGraph) incorporateDefinition(def bytecode.LocalIndex, offset bytecode.CodeOffset, ann *liveness.Annotation, forcedDead bool) {
	info, ok := ann.At(offset)
	var liveAfter liveness.UsageSet
	var present bool
	if ok {
		liveAfter, present = info.Get(def)
	}
	if !present {
		g.dead.Insert(offset)
		return
	}

	if forcedDead {
		g.dead.Insert(offset)
	}

	children := g.children[offset]
	if children == nil {
		children = newOrderedSet()
		g.children[offset] = children
	}
	for _, use := range liveAfter {
		children.Insert(use)
		parents := g.parents[use]
		if parents == nil {
			parents = newOrderedSet()
			g.parents[use] = parents
		}
		parents.Insert(offset)
	}
	if children.Len() == 0 {
		// Live-after info was present but empty: no observers, same
		// treatment as "not live".
		g.dead.Insert(offset)
	}
}

// DeadStores consumes g and returns the full, ordered set of offsets that
// may safely be deleted from the function body. g must not be used again
// after this call.
func DeadStores(g *DefUseGraph) []bytecode.CodeOffset {
	result := newOrderedSet()
	for {
		offset, ok := g.removeADeadNode()
		if !ok {
			break
		}
		result.Insert(offset)
	}
	return result.All()
}

// removeADeadNode pops one offset from dead (largest first, for
// determinism), disconnects it from its parents and children, reconnects
// every parent to every former child so that transitive reachability is
// preserved, and re-evaluates each former parent for newly-acquired
// deadness. Returns false once dead is empty.
func (g *DefUseGraph) removeADeadNode() (bytecode.CodeOffset, bool) {
	node, ok := g.dead.PopLast()
	if !ok {
		return 0, false
	}

	parents := g.disconnectFromParents(node)
	children := g.disconnectFromChildren(node)

	for _, p := range parents {
		childSet := g.children[p]
		if childSet == nil {
			childSet = newOrderedSet()
			g.children[p] = childSet
		}
		for _, c := range children {
			childSet.Insert(c)
			parentSet := g.parents[c]
			if parentSet == nil {
				parentSet = newOrderedSet()
				g.parents[c] = parentSet
			}
			parentSet.Insert(p)
		}
	}

	for _, p := range parents {
		g.reEvaluateDeath(p)
	}

	return node, true
}

// reEvaluateDeath marks parent dead if every one of its remaining children
// is already dead, or if it has no children left at all. Children can
// never become newly dead from a node's removal — only parents can,
// since a node's deadness depends only on its own outgoing edges, and a
// removal changes the outgoing edges of the removed node's parents only.
func (g *DefUseGraph) reEvaluateDeath(parent bytecode.CodeOffset) {
	children, ok := g.children[parent]
	if !ok || children.Len() == 0 {
		g.dead.Insert(parent)
		return
	}
	if children.Every(func(c bytecode.CodeOffset) bool { return g.dead.Contains(c) }) {
		g.dead.Insert(parent)
	}
}

// disconnectFromParents removes node from every parent's child set, deletes
// node's own parent-set entry, and returns the parents it had.
func (g *DefUseGraph) disconnectFromParents(node bytecode.CodeOffset) []bytecode.CodeOffset {
	parents, ok := g.parents[node]
	if !ok {
		return nil
	}
	all := append([]bytecode.CodeOffset(nil), parents.All()...)
	for _, p := range all {
		if children, ok := g.children[p]; ok {
			children.Remove(node)
		}
	}
	delete(g.parents, node)
	return all
}

// disconnectFromChildren removes node from every child's parent set,
// deletes node's own child-set entry, and returns the children it had.
func (g *DefUseGraph) disconnectFromChildren(node bytecode.CodeOffset) []bytecode.CodeOffset {
	children, ok := g.children[node]
	if !ok {
		return nil
	}
	all := append([]bytecode.CodeOffset(nil), children.All()...)
	for _, c := range all {
		if parents, ok := g.parents[c]; ok {
			parents.Remove(node)
		}
	}
	delete(g.children, node)
	return all
}

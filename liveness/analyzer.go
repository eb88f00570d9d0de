package liveness

import "github.com/katalvlaran/movedce/bytecode"

// Analyzer computes an Annotation for a bytecode.Function. It is a plain
// value; Analyze is safe to call repeatedly and from multiple goroutines as
// long as the Function argument is not being mutated concurrently.
type Analyzer struct{}

// NewAnalyzer returns an Analyzer. There is no configuration: the analyzer
// always runs in "track all usages" mode, which is the only mode dse's
// DefUseGraph construction can consume.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes the liveness Annotation for fn by a single backward pass
// over its instruction sequence.
//
// For each local, Analyze maintains the set of later offsets that will
// read it before it is next redefined. Walking offsets from last to first:
//  1. Snapshot the current pending set as the "after" info for this offset.
//  2. Kill: any local this instruction writes loses its pending usage set
//     (a write here means nothing before this point can see uses recorded
//     past it without going through this definition).
//  3. Gen: any local this instruction reads gets this offset added to its
//     pending usage set.
//
// Because this package models a straight-line instruction sequence (no
// control-flow merges), this single pass is exact; a full CFG-aware
// liveness pass is a separate concern this package does not take on.
func (a *Analyzer) Analyze(fn *bytecode.Function) *Annotation {
	pending := make(map[bytecode.LocalIndex]UsageSet)
	points := make(map[bytecode.CodeOffset]*PointInfo, fn.Len())

	for i := fn.Len() - 1; i >= 0; i-- {
		offset := bytecode.CodeOffset(i)
		points[offset] = snapshot(pending)

		reads, writes := defUse(fn.Code[i])
		for _, w := range writes {
			delete(pending, w)
		}
		for _, r := range reads {
			pending[r] = pending[r].with(offset)
		}
	}

	return &Annotation{points: points}
}

// snapshot deep-copies pending into a PointInfo so later mutation of
// pending does not retroactively change earlier offsets' recorded info.
func snapshot(pending map[bytecode.LocalIndex]UsageSet) *PointInfo {
	if len(pending) == 0 {
		return &PointInfo{After: map[bytecode.LocalIndex]UsageSet{}}
	}
	cp := make(map[bytecode.LocalIndex]UsageSet, len(pending))
	for local, uses := range pending {
		cp[local] = uses.clone()
	}
	return &PointInfo{After: cp}
}

// defUse classifies one instruction into the locals it reads and the
// locals it writes.
func defUse(instr bytecode.Instruction) (reads, writes []bytecode.LocalIndex) {
	switch i := instr.(type) {
	case bytecode.Assign:
		return []bytecode.LocalIndex{i.Src}, []bytecode.LocalIndex{i.Dst}
	case bytecode.Load:
		return nil, []bytecode.LocalIndex{i.Dst}
	case bytecode.Other:
		return i.Reads, i.Writes
	default:
		return nil, nil
	}
}

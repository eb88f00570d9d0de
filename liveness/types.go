package liveness

import (
	"sort"

	"github.com/katalvlaran/movedce/bytecode"
)

// UsageSet is an ordered collection of code offsets that read one local,
// relative to some earlier program point. It is always kept sorted so that
// consumers (notably dse.DefUseGraph) see deterministic iteration order.
type UsageSet []bytecode.CodeOffset

// NewUsageSet builds a UsageSet from arbitrary offsets, sorting and
// deduplicating them.
func NewUsageSet(offsets ...bytecode.CodeOffset) UsageSet {
	if len(offsets) == 0 {
		return UsageSet{}
	}
	cp := make(UsageSet, len(offsets))
	copy(cp, offsets)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, o := range cp[1:] {
		if o != out[len(out)-1] {
			out = append(out, o)
		}
	}
	return out
}

func (u UsageSet) clone() UsageSet {
	cp := make(UsageSet, len(u))
	copy(cp, u)
	return cp
}

func (u UsageSet) with(offset bytecode.CodeOffset) UsageSet {
	// Offsets are always added in strictly decreasing order by the
	// backward analyzer (it walks offsets from last to first and only
	// ever prepends a smaller offset), so a simple prepend keeps the
	// slice sorted without a full re-sort.
	out := make(UsageSet, 0, len(u)+1)
	out = append(out, offset)
	out = append(out, u...)
	return out
}

// PointInfo is the liveness information attached to one code offset: for
// every local live immediately after that offset, the ordered set of later
// offsets that read it.
type PointInfo struct {
	After map[bytecode.LocalIndex]UsageSet
}

// Get returns the usage set for local, and whether it is present at all
// (a local absent from After is not live after this point; a local present
// with an empty UsageSet is live-but-unobserved, which dse treats the same
// way — see DefUseGraph.incorporateDefinition).
func (p *PointInfo) Get(local bytecode.LocalIndex) (UsageSet, bool) {
	if p == nil || p.After == nil {
		return nil, false
	}
	u, ok := p.After[local]
	return u, ok
}

// Annotation is the full per-function liveness result: at most one
// PointInfo per offset. Analyzer records one for every offset, with an
// empty After map where nothing is live afterward.
type Annotation struct {
	points map[bytecode.CodeOffset]*PointInfo
}

// NewAnnotation builds an Annotation from a pre-populated map; mainly used
// by tests that hand-construct fixtures for the scenarios in spec S1-S6.
func NewAnnotation(points map[bytecode.CodeOffset]*PointInfo) *Annotation {
	return &Annotation{points: points}
}

// At returns the PointInfo for offset, and whether one was recorded.
func (a *Annotation) At(offset bytecode.CodeOffset) (*PointInfo, bool) {
	if a == nil || a.points == nil {
		return nil, false
	}
	info, ok := a.points[offset]
	return info, ok
}

// AnnotationKey is the key under which an Annotation is stored in a
// bytecode.AnnotationBundle.
const AnnotationKey = "liveness.Annotation"

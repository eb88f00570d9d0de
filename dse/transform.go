package dse

import "github.com/katalvlaran/movedce/bytecode"

// Transform produces a new instruction sequence by copying every
// instruction of fn whose original offset is not in deadOffsets. Offsets
// are renumbered implicitly by position in the returned sequence.
//
// Because offsets shift, every per-offset annotation on fn becomes stale;
// callers are responsible for clearing fn.Annotations (dse.Pass does this
// unconditionally, even when deadOffsets is empty, since annotation
// invalidation is not conditional on anything having actually changed).
func Transform(fn *bytecode.Function, deadOffsets []bytecode.CodeOffset) []bytecode.Instruction {
	dead := newOrderedSet()
	for _, o := range deadOffsets {
		dead.Insert(o)
	}

	newCode := make([]bytecode.Instruction, 0, len(fn.Code)-dead.Len())
	for i, instr := range fn.Code {
		if !dead.Contains(bytecode.CodeOffset(i)) {
			newCode = append(newCode, instr)
		}
	}
	return newCode
}

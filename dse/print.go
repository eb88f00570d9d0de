package dse

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/katalvlaran/movedce/bytecode"
)

// Render renders fn's instructions as a tree, annotating every offset in
// dead as removed. It is a debugging aid only — analogous to the
// config.DebugDeadCodeElimination trace the transform this package is
// grounded on emits for a requested atom — never consulted by DeadStores
// itself.
func Render(fn *bytecode.Function, dead []bytecode.CodeOffset) string {
	removed := newOrderedSet()
	for _, o := range dead {
		removed.Insert(o)
	}

	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("%s (%d instructions)", fn.Name, fn.Len()))
	for i, instr := range fn.Code {
		offset := bytecode.CodeOffset(i)
		label := fmt.Sprintf("%d: %v", offset, instr)
		if removed.Contains(offset) {
			tree.AddNode(label + "  [removed]")
			continue
		}
		tree.AddNode(label)
	}
	return tree.String()
}

package dse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/movedce/bytecode"
	"github.com/katalvlaran/movedce/dse"
)

func TestTransform_RenumbersByPosition(t *testing.T) {
	fn := &bytecode.Function{Code: []bytecode.Instruction{
		bytecode.Load{Dst: t0, Const: bytecode.Constant{Value: 1}}, // 0 (dead)
		bytecode.Other{Opcode: "A"},                                // 1
		bytecode.Load{Dst: t1, Const: bytecode.Constant{Value: 2}}, // 2 (dead)
		bytecode.Other{Opcode: "B"},                                // 3
	}}

	out := dse.Transform(fn, []bytecode.CodeOffset{0, 2})
	assert.Equal(t, []bytecode.Instruction{
		bytecode.Other{Opcode: "A"},
		bytecode.Other{Opcode: "B"},
	}, out)
}

func TestTransform_EmptyDeadSetIsIdentity(t *testing.T) {
	fn := &bytecode.Function{Code: []bytecode.Instruction{
		bytecode.Other{Opcode: "A"},
		bytecode.Other{Opcode: "B"},
	}}

	out := dse.Transform(fn, nil)
	assert.Equal(t, fn.Code, out)
}

// Dead-only removal: every offset Transform drops must have been a
// restricted definition (enforced upstream by DeadStores; Transform itself
// just trusts its input and never drops anything not named).
func TestTransform_OnlyDropsNamedOffsets(t *testing.T) {
	fn := &bytecode.Function{Code: []bytecode.Instruction{
		bytecode.Other{Opcode: "Call"},
		bytecode.Other{Opcode: "Return"},
	}}
	out := dse.Transform(fn, nil)
	assert.Len(t, out, 2)
}

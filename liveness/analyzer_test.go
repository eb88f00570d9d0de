package liveness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/movedce/bytecode"
	"github.com/katalvlaran/movedce/liveness"
)

const (
	t0 bytecode.LocalIndex = 0
	t1 bytecode.LocalIndex = 1
	t2 bytecode.LocalIndex = 2
)

func TestAnalyze_StraightLineChain(t *testing.T) {
	fn := &bytecode.Function{Code: []bytecode.Instruction{
		bytecode.Load{Dst: t0, Const: bytecode.Constant{Value: 5}}, // 0
		bytecode.Assign{Dst: t1, Src: t0},                          // 1
		bytecode.Assign{Dst: t2, Src: t1},                          // 2
		bytecode.Other{Opcode: "Return"},                           // 3
	}}

	ann := liveness.NewAnalyzer().Analyze(fn)

	info0, ok := ann.At(0)
	require.True(t, ok)
	uses, ok := info0.Get(t0)
	require.True(t, ok)
	assert.Equal(t, liveness.NewUsageSet(1), uses)

	info1, ok := ann.At(1)
	require.True(t, ok)
	uses1, ok := info1.Get(t1)
	require.True(t, ok)
	assert.Equal(t, liveness.NewUsageSet(2), uses1)

	info2, ok := ann.At(2)
	require.True(t, ok)
	_, ok = info2.Get(t2)
	assert.False(t, ok, "t2 is never read after offset 2")
}

func TestAnalyze_SelfAssignmentPassesThroughUse(t *testing.T) {
	fn := &bytecode.Function{Code: []bytecode.Instruction{
		bytecode.Load{Dst: t0, Const: bytecode.Constant{Value: 1}},     // 0
		bytecode.Assign{Dst: t0, Src: t0},                               // 1
		bytecode.Other{Opcode: "Use", Reads: []bytecode.LocalIndex{t0}}, // 2
	}}

	ann := liveness.NewAnalyzer().Analyze(fn)

	info0, _ := ann.At(0)
	uses0, ok := info0.Get(t0)
	require.True(t, ok)
	assert.Equal(t, liveness.NewUsageSet(1), uses0)

	info1, _ := ann.At(1)
	uses1, ok := info1.Get(t0)
	require.True(t, ok)
	assert.Equal(t, liveness.NewUsageSet(2), uses1)
}

func TestAnalyze_KillOnRedefinition(t *testing.T) {
	// t0 is read at 0, then redefined at 1 by an Other instruction; the
	// earlier read should not bleed past the redefinition.
	fn := &bytecode.Function{Code: []bytecode.Instruction{
		bytecode.Other{Opcode: "Use", Reads: []bytecode.LocalIndex{t0}},  // 0
		bytecode.Other{Opcode: "Redefine", Writes: []bytecode.LocalIndex{t0}}, // 1
		bytecode.Other{Opcode: "Use", Reads: []bytecode.LocalIndex{t0}},  // 2
	}}

	ann := liveness.NewAnalyzer().Analyze(fn)

	// t0 is redefined at offset 1, so nothing after offset 0 can observe
	// offset 2's use of the value t0 held before offset 0: "after 0", t0
	// is not live.
	info0, _ := ann.At(0)
	_, ok := info0.Get(t0)
	assert.False(t, ok)

	// "After offset 1" is the snapshot captured before offset 1's own kill
	// and gen are applied: t0 used at offset 2.
	info1, _ := ann.At(1)
	uses1, ok := info1.Get(t0)
	require.True(t, ok)
	assert.Equal(t, liveness.NewUsageSet(2), uses1)
}

func TestUsageSet_SortsAndDedups(t *testing.T) {
	u := liveness.NewUsageSet(5, 1, 3, 1, 2)
	assert.Equal(t, liveness.UsageSet{1, 2, 3, 5}, u)
}

package liveness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/movedce/bytecode"
	"github.com/katalvlaran/movedce/liveness"
	"github.com/katalvlaran/movedce/pipeline"
)

func TestProcessor_AttachesAnnotation(t *testing.T) {
	fn := &bytecode.Function{
		Name:        "f",
		Code:        []bytecode.Instruction{bytecode.Load{Dst: t0, Const: bytecode.Constant{Value: 1}}},
		Annotations: bytecode.NewAnnotationBundle(),
	}

	proc := liveness.NewProcessor()
	out, err := proc.Process(pipeline.FunctionData{Func: fn})
	require.NoError(t, err)

	raw, ok := out.Func.Annotations.Get(liveness.AnnotationKey)
	require.True(t, ok)
	_, ok = raw.(*liveness.Annotation)
	assert.True(t, ok)
}

func TestProcessor_SkipsNative(t *testing.T) {
	fn := &bytecode.Function{Name: "native", Native: true}
	proc := liveness.NewProcessor()
	out, err := proc.Process(pipeline.FunctionData{Func: fn})
	require.NoError(t, err)
	assert.Nil(t, out.Func.Annotations)
}

func TestProcessor_Name(t *testing.T) {
	assert.Equal(t, "LiveVarAnalysis", liveness.NewProcessor().Name())
}

package dse

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/katalvlaran/movedce/liveness"
	"github.com/katalvlaran/movedce/pipeline"
)

// Pass is a pipeline.Processor that performs dead-store elimination on one
// function at a time. It holds no mutable state between functions.
type Pass struct {
	log hclog.Logger
}

// NewPass returns a Pass that logs under the name "movedce.dse".
func NewPass() *Pass {
	return &Pass{log: hclog.Default().Named("movedce.dse")}
}

// Name identifies this pass in pipeline diagnostics. It is stable: "DeadStoreElimination".
func (Pass) Name() string { return "DeadStoreElimination" }

// Process builds the definition-use graph for data.Func, extracts the dead
// stores, rewrites the instruction sequence, and invalidates all per-offset
// annotations on the function.
//
// Native functions (no body) are returned unchanged. A function missing a
// liveness.Annotation in its annotation bundle is a fatal precondition
// violation: Process returns ErrMissingLiveness (wrapped with a stack
// trace) and leaves data untouched.
func (ps Pass) Process(data pipeline.FunctionData) (pipeline.FunctionData, error) {
	fn := data.Func
	if fn.IsNative() {
		return data, nil
	}

	raw, ok := fn.Annotations.Get(liveness.AnnotationKey)
	if !ok {
		return data, errors.Wrapf(ErrMissingLiveness, "function %q", fn.Name)
	}
	ann, ok := raw.(*liveness.Annotation)
	if !ok {
		return data, errors.Wrapf(ErrMissingLiveness, "function %q: annotation bundle held %T, not *liveness.Annotation", fn.Name, raw)
	}

	graph := NewDefUseGraph(fn, ann)
	dead := DeadStores(graph)

	if ps.log != nil {
		ps.log.Debug("dead store elimination", "function", fn.Name, "instructions", fn.Len(), "removed", len(dead))
	}

	fn.Code = Transform(fn, dead)
	fn.Annotations.Clear()

	return pipeline.FunctionData{Func: fn}, nil
}

var _ pipeline.Processor = Pass{}

package liveness

import (
	"github.com/katalvlaran/movedce/bytecode"
	"github.com/katalvlaran/movedce/pipeline"
)

// Processor adapts Analyzer to pipeline.Processor, storing its result in
// the function's annotation bundle under AnnotationKey so that a later
// pass (dse.Pass) can retrieve it.
type Processor struct {
	analyzer *Analyzer
}

// NewProcessor returns a Processor backed by a fresh Analyzer.
func NewProcessor() *Processor {
	return &Processor{analyzer: NewAnalyzer()}
}

// Name identifies this pass in pipeline diagnostics.
func (p *Processor) Name() string { return "LiveVarAnalysis" }

// Process computes liveness for data.Func and attaches it to the
// function's annotation bundle. Native functions are skipped, since they
// have no body to analyze.
func (p *Processor) Process(data pipeline.FunctionData) (pipeline.FunctionData, error) {
	if data.Func.IsNative() {
		return data, nil
	}
	ann := p.analyzer.Analyze(data.Func)
	if data.Func.Annotations == nil {
		data.Func.Annotations = bytecode.NewAnnotationBundle()
	}
	data.Func.Annotations.Set(AnnotationKey, ann)
	return data, nil
}

package pipeline

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/katalvlaran/movedce/bytecode"
	"golang.org/x/sync/errgroup"
)

// FunctionData is the unit of work a Processor operates on: one function.
type FunctionData struct {
	Func *bytecode.Function
}

// Processor is a single pass in the pipeline. Name is used only for
// diagnostics; it must be stable across releases since tooling and logs
// key off it (e.g. dse.Pass reports "DeadStoreElimination").
type Processor interface {
	Name() string
	Process(data FunctionData) (FunctionData, error)
}

// Pipeline is an ordered list of Processor. Functions are scheduled through
// every processor, in registration order.
type Pipeline struct {
	processors []Processor
	log        hclog.Logger
	// Parallel, when true, fans a single processor's work across all
	// functions concurrently via errgroup. Functions share no state (each
	// dse.DefUseGraph is local to one function), so this is safe.
	Parallel bool
}

// New returns a Pipeline that runs processors in the given order, logging
// at hclog's default level under the name "movedce".
func New(processors ...Processor) *Pipeline {
	return &Pipeline{
		processors: processors,
		log:        hclog.Default().Named("movedce"),
	}
}

// Add appends a processor to the end of the pipeline.
func (p *Pipeline) Add(proc Processor) {
	p.processors = append(p.processors, proc)
}

// Run executes every registered processor, in order, over every element of
// funcs. funcs is updated in place (each FunctionData is replaced by the
// result of the last processor that ran on it).
//
// If Parallel is set, a single processor's invocations across functions may
// run concurrently; processors themselves always run strictly in order,
// since later processors (e.g. dse.Pass) depend on annotations earlier ones
// (e.g. a liveness processor) attach.
//
// Run stops scheduling further processors for a function once that
// function has failed, but continues processing the remaining functions.
// All failures are aggregated into a single returned error.
func (p *Pipeline) Run(ctx context.Context, funcs []FunctionData) error {
	var result *multierror.Error
	failed := make([]bool, len(funcs))

	for _, proc := range p.processors {
		p.log.Debug("running pass", "name", proc.Name(), "functions", len(funcs))

		if !p.Parallel {
			for i := range funcs {
				if failed[i] {
					continue
				}
				out, err := proc.Process(funcs[i])
				if err != nil {
					failed[i] = true
					result = multierror.Append(result, errors.Wrapf(err, "pass %q on function %q", proc.Name(), funcs[i].Func.Name))
					continue
				}
				funcs[i] = out
			}
			continue
		}

		g, gctx := errgroup.WithContext(ctx)
		_ = gctx // the processors in this package are synchronous and do not consult ctx
		results := make([]FunctionData, len(funcs))
		errs := make([]error, len(funcs))
		for i := range funcs {
			i := i
			if failed[i] {
				results[i] = funcs[i]
				continue
			}
			g.Go(func() error {
				out, err := proc.Process(funcs[i])
				if err != nil {
					errs[i] = err
					return nil
				}
				results[i] = out
				return nil
			})
		}
		// errgroup.Wait only ever returns an error from a goroutine that
		// itself returns one; since Process errors are captured in errs
		// instead and every goroutine returns nil, Wait returns nil here.
		// ctx cancellation is not observed.
		if err := g.Wait(); err != nil {
			return err
		}
		for i, err := range errs {
			if err != nil {
				failed[i] = true
				result = multierror.Append(result, errors.Wrapf(err, "pass %q on function %q", proc.Name(), funcs[i].Func.Name))
				continue
			}
			funcs[i] = results[i]
		}
	}

	return result.ErrorOrNil()
}

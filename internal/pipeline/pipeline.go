package pipeline

import "github.com/funvibe/swiftkt/internal/ir"

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline in order. Stages communicate failures through
// ctx.Sink rather than aborting the sequence; a fail-fast sink panics a
// diagnostics.StopTranslation, which callers recover with (*diagnostics.Sink).Recover.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

// RunPasses runs a fixed, ordered sequence of IR passes twice (spec.md
// §4.6 "irAfterPasses runs external passes in a fixed two-round order"),
// so a pass whose output depends on another pass having already run once
// (e.g. a template-substitution pass reacting to a prior enum-registration
// pass) converges within the second round.
func RunPasses(stmts []ir.Statement, ctx *Context, passes []Pass) []ir.Statement {
	for round := 0; round < 2; round++ {
		for _, pass := range passes {
			stmts = pass.Run(stmts, ctx)
		}
	}
	return stmts
}

package pipeline

import "github.com/funvibe/swiftkt/internal/ir"

// Processor is any component that can process a Context and return a
// modified Context — one stage of decode/translate/pass/emit.
type Processor interface {
	Process(ctx *Context) *Context
}

// ProcessorFunc adapts a plain function to a Processor.
type ProcessorFunc func(ctx *Context) *Context

func (f ProcessorFunc) Process(ctx *Context) *Context { return f(ctx) }

// Pass is an IR-to-IR rewrite run after translation but before emission
// (spec.md §4.6 "irAfterPasses"), e.g. a template/library bootstrap pass.
type Pass interface {
	Name() string
	Run(stmts []ir.Statement, ctx *Context) []ir.Statement
}

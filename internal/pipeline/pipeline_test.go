package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/swiftkt/internal/ir"
)

func TestPipelineRunChainsProcessorsInOrder(t *testing.T) {
	var order []string
	record := func(name string) Processor {
		return ProcessorFunc(func(ctx *Context) *Context {
			order = append(order, name)
			return ctx
		})
	}

	p := New(record("decode"), record("translate"), record("emit"))
	ctx := NewContext("corr-1", "source", "file.swiftASTDump", nil, nil)

	result := p.Run(ctx)

	require.Same(t, ctx, result)
	require.Equal(t, []string{"decode", "translate", "emit"}, order)
}

type countingPass struct {
	name  string
	calls *[]string
}

func (c countingPass) Name() string { return c.name }
func (c countingPass) Run(stmts []ir.Statement, ctx *Context) []ir.Statement {
	*c.calls = append(*c.calls, c.name)
	return stmts
}

func TestRunPassesRunsEveryPassTwice(t *testing.T) {
	var calls []string
	passes := []Pass{
		countingPass{name: "bootstrap", calls: &calls},
		countingPass{name: "template", calls: &calls},
	}

	ctx := NewContext("corr-2", "source", "file.swiftASTDump", nil, nil)
	RunPasses(nil, ctx, passes)

	require.Equal(t, []string{"bootstrap", "template", "bootstrap", "template"}, calls)
}

func TestRunPassesWithNoPassesIsANoop(t *testing.T) {
	ctx := NewContext("corr-3", "source", "file.swiftASTDump", nil, nil)
	stmts := []ir.Statement{}
	result := RunPasses(stmts, ctx, nil)
	require.Empty(t, result)
}

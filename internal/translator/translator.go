// Package translator lowers a rawtree.RawTree produced by the decoder into
// the ir.Statement/ir.Expression intermediate representation, per spec.md
// §4.2. Dispatch is by RawTree.Name; translation functions are grouped
// across statements.go and expressions.go the way the teacher pipeline's
// evaluator groups its per-node-type eval methods across multiple files.
package translator

import (
	"fmt"

	"github.com/funvibe/swiftkt/internal/collaborators"
	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/ir"
	"github.com/funvibe/swiftkt/internal/rawtree"
	"github.com/funvibe/swiftkt/internal/registry"
	"github.com/funvibe/swiftkt/internal/token"
)

// Translator holds the small amount of local state a single translation
// carries: the pattern-binding queue (confined to one brace scope at a
// time), the injected source file for comment directives, the shared
// registries, and the diagnostic sink.
type Translator struct {
	Sink      *diagnostics.Sink
	Source    collaborators.SourceFile
	Enums     *registry.EnumRegistry
	Functions *registry.FunctionRegistry

	queue patternQueue

	// extendingType is non-empty while translating the members of an
	// Extension Declaration, so nested Function/Variable Declarations can
	// record it as FunctionDecl.ExtendsType / VariableDecl.ExtendsType.
	extendingType string
}

func New(sink *diagnostics.Sink, source collaborators.SourceFile, enums *registry.EnumRegistry, functions *registry.FunctionRegistry) *Translator {
	if sink == nil {
		sink = diagnostics.NewSink()
	}
	return &Translator{Sink: sink, Source: source, Enums: enums, Functions: functions}
}

// TranslateFile translates every top-level child of the dump's root node
// (conventionally a "Source File" node) into a flat statement list.
func (tr *Translator) TranslateFile(root *rawtree.RawTree) []ir.Statement {
	if root == nil {
		return nil
	}
	return tr.translateBraceLikeChildren(root.Children)
}

func (tr *Translator) reportUnexpected(name string, t *rawtree.RawTree, format string, args ...interface{}) {
	pos := tr.startPos(t)
	message := fmt.Sprintf(format, args...)
	err := diagnostics.NewError(diagnostics.PhaseTranslate, diagnostics.ErrUnexpectedASTStructure, name, pos, name, message)
	if t != nil {
		err.Printed = t.String()
	}
	tr.Sink.Report(err)
}

func (tr *Translator) reportUnsupported(name string, t *rawtree.RawTree, reason string) {
	pos := tr.startPos(t)
	err := diagnostics.NewError(diagnostics.PhaseTranslate, diagnostics.ErrUnsupportedConstruct, name, pos, reason)
	if t != nil {
		err.Printed = t.String()
	}
	tr.Sink.Report(err)
}

func (tr *Translator) startPos(t *rawtree.RawTree) token.Pos {
	rng, ok := nodeRange(t)
	if !ok {
		return token.Pos{}
	}
	return rng.Start.Pos
}

// errorStatement builds the IR sentinel for a statement the translator
// could not make sense of, and records the diagnostic.
func (tr *Translator) errorStatement(name string, t *rawtree.RawTree, format string, args ...interface{}) ir.Statement {
	tr.reportUnexpected(name, t, format, args...)
	return &ir.ErrorStatement{Reason: name}
}

// errorExpression builds the IR sentinel for an expression the translator
// could not make sense of, and records the diagnostic.
func (tr *Translator) errorExpression(name string, t *rawtree.RawTree, format string, args ...interface{}) ir.Expression {
	tr.reportUnexpected(name, t, format, args...)
	return &ir.ErrorExpression{Reason: name}
}

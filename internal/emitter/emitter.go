// Package emitter renders the IR into Kotlin source text, per spec.md
// §4.4. It is a set of mutually recursive functions, each taking an IR
// node and a current indentation string; indentation is threaded as a
// plain string of tabs rather than an integer counter, per spec.md §9's
// note that an implementation may choose either. The emitter does not
// panic on its own: on an unexpected IR shape it records a diagnostic and
// emits the sentinel token "<<Error>>" (a fail-fast sink's Report unwinds
// with diagnostics.StopTranslation instead), mirroring the teacher pretty-printer's
// buffer-based renderer (internal/prettyprinter/code_printer.go) adapted
// from an AST-with-Accept walk to a plain type switch over our IR.
package emitter

import (
	"strings"

	"github.com/funvibe/swiftkt/internal/config"
	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/ir"
	"github.com/funvibe/swiftkt/internal/registry"
	"github.com/funvibe/swiftkt/internal/token"
)

const errorSentinel = "<<Error>>"

// Emitter holds the shared, read-only-during-emission lookup tables
// (spec.md §4.4/§5) plus the diagnostic sink.
type Emitter struct {
	Sink      *diagnostics.Sink
	Enums     *registry.EnumRegistry
	Functions *registry.FunctionRegistry
}

func New(sink *diagnostics.Sink, enums *registry.EnumRegistry, functions *registry.FunctionRegistry) *Emitter {
	if sink == nil {
		sink = diagnostics.NewSink()
	}
	return &Emitter{Sink: sink, Enums: enums, Functions: functions}
}

// EmitFile renders a flat top-level statement list into Kotlin source text,
// including the declaration blank-line packing rules of spec.md §4.4 and
// the synthesized `fun main` wrapper around free-standing statements.
func (e *Emitter) EmitFile(stmts []ir.Statement) string {
	decls, freeStanding := partitionTopLevel(stmts)

	var b strings.Builder
	e.writeDeclarationSequence(&b, decls, "")

	if len(freeStanding) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("fun main(args: Array<String>) {\n")
		for _, s := range freeStanding {
			b.WriteString(e.EmitStatement(s, config.IndentUnit))
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// partitionTopLevel splits statements into declarations (importable as-is)
// and bare statements that need wrapping in `fun main`.
func partitionTopLevel(stmts []ir.Statement) (decls, freeStanding []ir.Statement) {
	for _, s := range stmts {
		switch s.(type) {
		case *ir.ImportDeclaration, *ir.TypealiasDeclaration, *ir.ClassDeclaration,
			*ir.StructDeclaration, *ir.EnumDeclaration, *ir.ProtocolDeclaration,
			*ir.ExtensionDeclaration, *ir.FunctionDeclaration:
			decls = append(decls, s)
		default:
			freeStanding = append(freeStanding, s)
		}
	}
	return decls, freeStanding
}

// packsWithoutBlankLine reports whether two adjacent declarations belong to
// one of the "pack without a blank line" families of spec.md §4.4.
func packsWithoutBlankLine(prev, next ir.Statement) bool {
	samePackableKind := func(s ir.Statement) string {
		switch v := s.(type) {
		case *ir.VariableDeclaration:
			return "var"
		case *ir.TypealiasDeclaration:
			return "typealias"
		case *ir.AssignmentStatement:
			return "assign"
		case *ir.ExpressionStatement:
			switch v.Expr.(type) {
			case *ir.CallExpression:
				return "call"
			case *ir.TemplateExpression:
				return "template"
			case *ir.LiteralCodeExpression, *ir.LiteralDeclarationExpression:
				return "literalcode"
			}
		}
		return ""
	}
	a, b := samePackableKind(prev), samePackableKind(next)
	return a != "" && a == b
}

// writeDeclarationSequence renders each declaration, inserting a blank line
// between declarations except where spec.md §4.4 says to pack them.
func (e *Emitter) writeDeclarationSequence(b *strings.Builder, stmts []ir.Statement, indent string) {
	for i, s := range stmts {
		if i > 0 && !packsWithoutBlankLine(stmts[i-1], s) {
			b.WriteString("\n")
		}
		b.WriteString(e.EmitStatement(s, indent))
	}
}

// bodyNeedsBlankLines reports whether a body is long enough to receive
// inter-statement blank lines at all; bodies of three or fewer statements
// never do, per spec.md §4.4.
func bodyNeedsBlankLines(stmts []ir.Statement) bool {
	return len(stmts) > 3
}

func (e *Emitter) emitBody(stmts []ir.Statement, indent string) string {
	var b strings.Builder
	needsBlank := bodyNeedsBlankLines(stmts)
	for i, s := range stmts {
		if i > 0 && needsBlank && !packsWithoutBlankLine(stmts[i-1], s) {
			b.WriteString("\n")
		}
		b.WriteString(e.EmitStatement(s, indent))
	}
	return b.String()
}

func (e *Emitter) reportUnexpectedIR(kind string, reason string) {
	err := diagnostics.NewError(diagnostics.PhaseEmit, diagnostics.ErrUnexpectedIRShape, kind, token.Pos{}, kind, reason)
	e.Sink.Report(err)
}

func (e *Emitter) errorToken(kind, reason string) string {
	e.reportUnexpectedIR(kind, reason)
	return errorSentinel
}

func indentMore(indent string) string { return indent + config.IndentUnit }

func fitsLineBudget(s string) bool {
	lastNewline := strings.LastIndexByte(s, '\n')
	line := s
	if lastNewline >= 0 {
		line = s[lastNewline+1:]
	}
	return len([]rune(line)) <= config.MaxLineWidth
}


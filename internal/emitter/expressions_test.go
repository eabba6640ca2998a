package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/ir"
)

func TestEmitExpressionLiterals(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)

	require.Equal(t, "42", e.EmitExpression(&ir.IntLiteral{Value: 42}, ""))
	require.Equal(t, "42u", e.EmitExpression(&ir.UIntLiteral{Value: 42}, ""))
	require.Equal(t, "true", e.EmitExpression(&ir.BoolLiteral{Value: true}, ""))
	require.Equal(t, "null", e.EmitExpression(&ir.NilLiteral{}, ""))
	require.Equal(t, `"hi"`, e.EmitExpression(&ir.StringLiteral{Value: "hi"}, ""))
	require.Equal(t, `"a\"b"`, e.EmitExpression(&ir.StringLiteral{Value: `a"b`}, ""))
}

func TestEmitBinaryOperatorRewritesNilCoalescing(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	expr := &ir.BinaryOperatorExpression{
		LHS: &ir.DeclarationReferenceExpression{Identifier: "x"},
		Op:  "??",
		RHS: &ir.IntLiteral{Value: 0},
	}
	require.Equal(t, "x ?: 0", e.EmitExpression(expr, ""))
}

func TestEmitArrayAndDictionaryExpressions(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)

	arr := &ir.ArrayExpression{Elements: []ir.Expression{&ir.IntLiteral{Value: 1}, &ir.IntLiteral{Value: 2}}}
	require.Equal(t, "mutableListOf(1, 2)", e.EmitExpression(arr, ""))

	dict := &ir.DictionaryExpression{
		Keys:   []ir.Expression{&ir.StringLiteral{Value: "a"}},
		Values: []ir.Expression{&ir.IntLiteral{Value: 1}},
	}
	require.Equal(t, `mutableMapOf("a" to 1)`, e.EmitExpression(dict, ""))
}

func TestEmitTupleShuffleElidesLabelsAfterVariadic(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	shuffle := &ir.TupleShuffleExpression{
		Indices: []ir.TupleShuffleIndex{
			{Kind: ir.ShufflePresent},
			{Kind: ir.ShuffleVariadic, VariadicCount: 2},
		},
		Labels: []string{"first", "rest"},
		Expressions: []ir.Expression{
			&ir.IntLiteral{Value: 1},
			&ir.IntLiteral{Value: 2},
			&ir.IntLiteral{Value: 3},
		},
	}
	require.Equal(t, "first = 1, 2, 3", e.EmitExpression(shuffle, ""))
}

func TestEmitDotExpressionConsultsEnumRegistry(t *testing.T) {
	enums := newEnumRegistryWithSealed("Shape")
	e := New(diagnostics.NewSink(), enums, nil)

	dot := &ir.DotExpression{
		LHS: &ir.DeclarationReferenceExpression{Identifier: "Shape"},
		RHS: &ir.DeclarationReferenceExpression{Identifier: "circle"},
	}
	require.Equal(t, "Shape.Circle()", e.EmitExpression(dot, ""))
}

func TestEmitExpressionUnhandledKindReportsDiagnostic(t *testing.T) {
	sink := diagnostics.NewSink()
	e := New(sink, nil, nil)
	out := e.EmitExpression(unknownExpr{}, "")
	require.Equal(t, errorSentinel, out)
	require.Len(t, sink.Errors(), 1)
}

// unknownExpr embeds ir.Expression to satisfy its unexported marker method.
type unknownExpr struct{ ir.Expression }

func (unknownExpr) Kind() string { return "unknown" }

package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/ir"
)

func TestEmitIfStmtHoistsLetDeclarationAboveCondition(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	stmt := &ir.IfStatement{If: ir.IfStmt{
		Declarations: []ir.VariableDecl{
			{Identifier: "x", IsLet: true, Expression: &ir.IntLiteral{Value: 1}},
		},
		Statements: []ir.Statement{&ir.ReturnStatement{Expr: &ir.DeclarationReferenceExpression{Identifier: "x"}}},
	}}

	out := e.EmitStatement(stmt, "")

	lines := splitLinesNonEmpty(out)
	require.Equal(t, "val x = 1", lines[0])
	require.Equal(t, "if (x != null) {", lines[1])
}

func TestEmitIfStmtVarDeclarationUsesVarKeyword(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	stmt := &ir.IfStatement{If: ir.IfStmt{
		Declarations: []ir.VariableDecl{
			{Identifier: "y", IsLet: false, Expression: &ir.IntLiteral{Value: 2}},
		},
	}}

	out := e.EmitStatement(stmt, "")

	require.Contains(t, out, "var y = 2")
}

func TestEmitIfStmtWithPlainConditionNoDeclarations(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	stmt := &ir.IfStatement{If: ir.IfStmt{
		Conditions: []ir.Expression{&ir.BoolLiteral{Value: true}},
		Statements: []ir.Statement{&ir.ReturnStatement{}},
	}}

	out := e.EmitStatement(stmt, "")

	require.Contains(t, out, "if (true) {")
	require.Contains(t, out, "return")
	require.NotContains(t, out, "!= null")
}

func TestEmitIfStmtWithElseBranch(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	stmt := &ir.IfStatement{If: ir.IfStmt{
		Conditions: []ir.Expression{&ir.BoolLiteral{Value: true}},
		Statements: []ir.Statement{&ir.ReturnStatement{Expr: &ir.IntLiteral{Value: 1}}},
		ElseStatement: &ir.IfStmt{
			Statements: []ir.Statement{&ir.ReturnStatement{Expr: &ir.IntLiteral{Value: 2}}},
		},
	}}

	out := e.EmitStatement(stmt, "")

	require.Contains(t, out, "} else {")
	require.Contains(t, out, "return 2")
}

func TestEmitIfStmtWithNestedElseIfChain(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	stmt := &ir.IfStatement{If: ir.IfStmt{
		Conditions: []ir.Expression{&ir.BoolLiteral{Value: true}},
		Statements: []ir.Statement{&ir.ReturnStatement{Expr: &ir.IntLiteral{Value: 1}}},
		ElseStatement: &ir.IfStmt{
			Conditions: []ir.Expression{&ir.BoolLiteral{Value: false}},
			Statements: []ir.Statement{&ir.ReturnStatement{Expr: &ir.IntLiteral{Value: 2}}},
		},
	}}

	out := e.EmitStatement(stmt, "")

	require.Contains(t, out, "} else if (false) {")
	require.NotContains(t, out, "} else {\n\tif")
}

func TestEmitSwitchStatementDefaultCase(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	stmt := &ir.SwitchStatement{
		Expr: &ir.DeclarationReferenceExpression{Identifier: "x"},
		Cases: []ir.SwitchCase{
			{Expression: &ir.IntLiteral{Value: 1}, Statements: []ir.Statement{&ir.ReturnStatement{Expr: &ir.IntLiteral{Value: 10}}}},
			{Statements: []ir.Statement{&ir.ReturnStatement{Expr: &ir.IntLiteral{Value: 0}}}},
		},
	}

	out := e.EmitStatement(stmt, "")

	require.Contains(t, out, "when (x) {")
	require.Contains(t, out, "1 -> return 10")
	require.Contains(t, out, "else -> return 0")
}

func TestEmitSwitchCaseWithMultipleStatementsUsesBlockArm(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	stmt := &ir.SwitchStatement{
		Expr: &ir.DeclarationReferenceExpression{Identifier: "x"},
		Cases: []ir.SwitchCase{
			{
				Expression: &ir.IntLiteral{Value: 1},
				Statements: []ir.Statement{
					&ir.ReturnStatement{Expr: &ir.IntLiteral{Value: 1}},
					&ir.ReturnStatement{Expr: &ir.IntLiteral{Value: 2}},
				},
			},
		},
	}

	out := e.EmitStatement(stmt, "")

	require.Contains(t, out, "1 -> {\n")
}

func TestEmitSwitchCaseRangeLikeExpressionRendersAsInTest(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	stmt := &ir.SwitchStatement{
		Expr: &ir.DeclarationReferenceExpression{Identifier: "x"},
		Cases: []ir.SwitchCase{
			{
				Expression: &ir.BinaryOperatorExpression{
					LHS: &ir.IntLiteral{Value: 0},
					Op:  "...",
					RHS: &ir.IntLiteral{Value: 9},
				},
				Statements: []ir.Statement{&ir.ReturnStatement{}},
			},
		},
	}

	out := e.EmitStatement(stmt, "")

	require.Contains(t, out, "in 0")
}

func splitLinesNonEmpty(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if line := s[start:i]; line != "" {
				lines = append(lines, line)
			}
			start = i + 1
		}
	}
	return lines
}

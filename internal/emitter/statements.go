package emitter

import (
	"strings"

	"github.com/funvibe/swiftkt/internal/ir"
)

// emitIfStmt renders an IfStmt. keyword is always "if" on first entry;
// nested else-if chains call themselves recursively via the ElseStatement
// link, matching the RawTree shape's recursive nesting.
func (e *Emitter) emitIfStmt(indent string, s ir.IfStmt, keyword string) string {
	var b strings.Builder

	// Hoist if/guard-let declarations above the if, per spec.md §3
	// invariant (b): conditions and their let-declarations stay in
	// source order, and Kotlin has no inline let-binding-in-condition
	// syntax, so "if let x = e" becomes "val x = e; if (x != null)".
	for _, d := range s.Declarations {
		if d.Expression == nil {
			continue
		}
		declKeyword := "val"
		if !d.IsLet {
			declKeyword = "var"
		}
		b.WriteString(indent + declKeyword + " " + d.Identifier + " = " + e.EmitExpression(d.Expression, indent) + "\n")
	}

	var conds []string
	for _, c := range s.Conditions {
		conds = append(conds, e.EmitExpression(c, indent))
	}
	for _, d := range s.Declarations {
		conds = append(conds, d.Identifier+" != null")
	}
	condText := strings.Join(conds, " && ")

	b.WriteString(indent + keyword + " (" + condText + ") {\n")
	b.WriteString(e.emitBody(s.Statements, indentMore(indent)))
	b.WriteString(indent + "}")

	if s.ElseStatement == nil {
		b.WriteString("\n")
		return b.String()
	}
	if len(s.ElseStatement.Conditions) == 0 && len(s.ElseStatement.Declarations) == 0 {
		b.WriteString(" else {\n")
		b.WriteString(e.emitBody(s.ElseStatement.Statements, indentMore(indent)))
		b.WriteString(indent + "}\n")
		return b.String()
	}
	b.WriteString(" else " + strings.TrimPrefix(e.emitIfStmt(indent, *s.ElseStatement, "if"), indent))
	return b.String()
}

func (e *Emitter) emitSwitchStatement(indent string, v *ir.SwitchStatement) string {
	var b strings.Builder
	b.WriteString(indent + "when (" + e.EmitExpression(v.Expr, indent) + ") {\n")
	inner := indentMore(indent)
	for _, c := range v.Cases {
		b.WriteString(e.emitSwitchCase(inner, c))
	}
	b.WriteString(indent + "}\n")
	return b.String()
}

func (e *Emitter) emitSwitchCase(indent string, c ir.SwitchCase) string {
	label := "else"
	if c.Expression != nil {
		rendered := e.EmitExpression(c.Expression, indent)
		if isRangeLikeExpr(rendered) {
			label = "in " + rendered
		} else {
			label = rendered
		}
	}

	if len(c.Statements) == 1 {
		return indent + label + " -> " + strings.TrimPrefix(strings.TrimSuffix(e.EmitStatement(c.Statements[0], ""), "\n"), "") + "\n"
	}

	var b strings.Builder
	b.WriteString(indent + label + " -> {\n")
	b.WriteString(e.emitBody(c.Statements, indentMore(indent)))
	b.WriteString(indent + "}\n")
	return b.String()
}

package emitter

import (
	"strings"

	"github.com/funvibe/swiftkt/internal/ir"
	"github.com/funvibe/swiftkt/internal/registry"
)

// EmitStatement is the top-level statement dispatch, per spec.md §4.4.
func (e *Emitter) EmitStatement(s ir.Statement, indent string) string {
	if s == nil {
		return ""
	}
	switch v := s.(type) {
	case *ir.ImportDeclaration:
		return indent + "import " + v.Name + "\n"
	case *ir.TypealiasDeclaration:
		return indent + "typealias " + v.Identifier + " = " + kotlinType(v.Type) + "\n"
	case *ir.ClassDeclaration:
		return e.emitClassLike(indent, "class", v.Name, v.Inherits, v.Members)
	case *ir.StructDeclaration:
		return e.emitStructDeclaration(indent, v)
	case *ir.CompanionObject:
		return e.emitCompanionObject(indent, v)
	case *ir.EnumDeclaration:
		return e.emitEnumDeclaration(indent, v)
	case *ir.ProtocolDeclaration:
		return e.emitProtocolDeclaration(indent, v)
	case *ir.ExtensionDeclaration:
		return e.emitExtensionDeclaration(indent, v)
	case *ir.FunctionDeclaration:
		return e.emitFunctionDeclaration(indent, v.Function)
	case *ir.VariableDeclaration:
		return e.emitVariableDeclaration(indent, v.Variable)
	case *ir.ForEachStatement:
		return e.emitForEachStatement(indent, v)
	case *ir.WhileStatement:
		return indent + "while (" + e.EmitExpression(v.Expr, indent) + ") {\n" +
			e.emitBody(v.Body, indentMore(indent)) + indent + "}\n"
	case *ir.IfStatement:
		return e.emitIfStmt(indent, v.If, "if")
	case *ir.SwitchStatement:
		return e.emitSwitchStatement(indent, v)
	case *ir.DeferStatement:
		return indent + "try {\n" + e.emitBody(v.Body, indentMore(indent)) + indent + "} finally {\n" + indent + "}\n"
	case *ir.ThrowStatement:
		return indent + "throw " + e.EmitExpression(v.Expr, indent) + "\n"
	case *ir.ReturnStatement:
		if v.Expr == nil {
			return indent + "return\n"
		}
		return indent + "return " + e.EmitExpression(v.Expr, indent) + "\n"
	case *ir.BreakStatement:
		return indent + "break\n"
	case *ir.ContinueStatement:
		return indent + "continue\n"
	case *ir.AssignmentStatement:
		return indent + e.EmitExpression(v.LHS, indent) + " = " + e.EmitExpression(v.RHS, indent) + "\n"
	case *ir.ExpressionStatement:
		return indent + e.EmitExpression(v.Expr, indent) + "\n"
	case *ir.ErrorStatement:
		return indent + errorSentinel + "\n"
	default:
		return indent + e.errorToken(s.Kind(), "unhandled statement kind") + "\n"
	}
}

func (e *Emitter) emitClassLike(indent, keyword, name string, inherits []string, members []ir.Statement) string {
	header := indent + keyword + " " + name + emitInheritance(inherits)
	if len(members) == 0 {
		return header + "\n"
	}
	var b strings.Builder
	b.WriteString(header + " {\n")
	e.writeDeclarationSequence(&b, members, indentMore(indent))
	b.WriteString(indent + "}\n")
	return b.String()
}

func (e *Emitter) emitStructDeclaration(indent string, v *ir.StructDeclaration) string {
	var fields, rest []ir.Statement
	for _, m := range v.Members {
		if vd, ok := m.(*ir.VariableDeclaration); ok && vd.Variable.ExtendsType == nil {
			fields = append(fields, m)
			continue
		}
		rest = append(rest, m)
	}

	var params []string
	for _, f := range fields {
		vd := f.(*ir.VariableDeclaration).Variable
		params = append(params, "val "+vd.Identifier+": "+kotlinType(vd.TypeName))
	}

	header := indent + "data class " + v.Name + "(" + strings.Join(params, ", ") + ")" + emitInheritance(v.Inherits)
	if len(rest) == 0 {
		return header + "\n"
	}
	var b strings.Builder
	b.WriteString(header + " {\n")
	e.writeDeclarationSequence(&b, rest, indentMore(indent))
	b.WriteString(indent + "}\n")
	return b.String()
}

func (e *Emitter) emitCompanionObject(indent string, v *ir.CompanionObject) string {
	var b strings.Builder
	b.WriteString(indent + "companion object {\n")
	e.writeDeclarationSequence(&b, v.Members, indentMore(indent))
	b.WriteString(indent + "}\n")
	return b.String()
}

func emitInheritance(inherits []string) string {
	if len(inherits) == 0 {
		return ""
	}
	parts := make([]string, len(inherits))
	for i, in := range inherits {
		if i == 0 {
			parts[i] = in + "()"
		} else {
			parts[i] = in
		}
	}
	return " : " + strings.Join(parts, ", ")
}

func (e *Emitter) emitEnumDeclaration(indent string, v *ir.EnumDeclaration) string {
	kind := registry.EnumKindSealed
	if e.Enums != nil {
		if looked := e.Enums.Lookup(v.Name); looked != registry.EnumKindUnknown {
			kind = looked
		}
	}
	access := ""
	if v.Access != "" {
		access = v.Access + " "
	}

	if kind == registry.EnumKindEnumClass {
		names := make([]string, len(v.Elements))
		for i, el := range v.Elements {
			names[i] = capitalize(el.Name)
		}
		header := indent + access + "enum class " + v.Name + emitInheritance(v.Inherits)
		if len(v.Members) == 0 {
			return header + " { " + strings.Join(names, ", ") + " }\n"
		}
		var b strings.Builder
		b.WriteString(header + " {\n")
		b.WriteString(indentMore(indent) + strings.Join(names, ", ") + ";\n")
		e.writeDeclarationSequence(&b, v.Members, indentMore(indent))
		b.WriteString(indent + "}\n")
		return b.String()
	}

	var b strings.Builder
	b.WriteString(indent + access + "sealed class " + v.Name + emitInheritance(v.Inherits) + " {\n")
	inner := indentMore(indent)
	for _, el := range v.Elements {
		name := capitalize(el.Name)
		if len(el.AssociatedValues) == 0 {
			b.WriteString(inner + "class " + name + ": " + v.Name + "()\n")
			continue
		}
		var fields []string
		for _, av := range el.AssociatedValues {
			label := av.Label
			if label == "" {
				label = strings.ToLower(av.Type[:1]) + av.Type[1:]
			}
			fields = append(fields, "val "+label+": "+kotlinType(av.Type))
		}
		b.WriteString(inner + "class " + name + "(" + strings.Join(fields, ", ") + "): " + v.Name + "()\n")
	}
	e.writeDeclarationSequence(&b, v.Members, inner)
	b.WriteString(indent + "}\n")
	return b.String()
}

func (e *Emitter) emitProtocolDeclaration(indent string, v *ir.ProtocolDeclaration) string {
	return e.emitClassLike(indent, "interface", v.Name, nil, v.Members)
}

func (e *Emitter) emitExtensionDeclaration(indent string, v *ir.ExtensionDeclaration) string {
	var b strings.Builder
	for i, m := range v.Members {
		if i > 0 && !packsWithoutBlankLine(v.Members[i-1], m) {
			b.WriteString("\n")
		}
		b.WriteString(e.EmitStatement(m, indent))
	}
	return b.String()
}

func (e *Emitter) emitFunctionDeclaration(indent string, fn ir.FunctionDecl) string {
	if fn.Prefix == "init" {
		return e.emitConstructor(indent, fn)
	}

	access := ""
	if fn.Access != "" {
		access = fn.Access + " "
	}
	receiver := ""
	if fn.ExtendsType != nil {
		receiver = kotlinType(*fn.ExtendsType) + "."
	}

	params := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = emitParameter(p)
	}

	returnSuffix := ""
	if ret := kotlinType(fn.ReturnType); ret != "" && ret != "Unit" {
		returnSuffix = ": " + ret
	}

	single := indent + access + "fun " + receiver + fn.Prefix + "(" + strings.Join(params, ", ") + ")" + returnSuffix
	signature := single
	if !fitsLineBudget(single) {
		signature = e.emitWrappedSignature(indent, access, "fun "+receiver+fn.Prefix, params, returnSuffix)
	}

	var b strings.Builder
	b.WriteString(signature + " {\n")
	b.WriteString(e.emitBody(fn.Statements, indentMore(indent)))
	b.WriteString(indent + "}\n")
	return b.String()
}

func (e *Emitter) emitConstructor(indent string, fn ir.FunctionDecl) string {
	params := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = emitParameter(p)
	}
	var b strings.Builder
	b.WriteString(indent + "constructor(" + strings.Join(params, ", ") + ") {\n")
	b.WriteString(e.emitBody(fn.Statements, indentMore(indent)))
	b.WriteString(indent + "}\n")
	return b.String()
}

func emitParameter(p ir.FunctionParameter) string {
	name := p.Label
	if p.ApiLabel != nil {
		name = *p.ApiLabel + " " + p.Label
	}
	s := name + ": " + kotlinType(p.Type)
	return s
}

// emitWrappedSignature re-renders a function signature with each parameter
// on its own line at one additional tab of indent, per spec.md §4.4's
// 100-column reflow rule.
func (e *Emitter) emitWrappedSignature(indent, access, head string, params []string, returnSuffix string) string {
	inner := indentMore(indent)
	var b strings.Builder
	b.WriteString(indent + access + head + "(\n")
	for i, p := range params {
		b.WriteString(inner + p)
		if i < len(params)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indent + ")" + returnSuffix)
	return b.String()
}

func (e *Emitter) emitVariableDeclaration(indent string, v ir.VariableDecl) string {
	keyword := "var"
	if v.IsLet || (v.Getter != nil && v.Setter == nil) {
		keyword = "val"
	}
	if v.Getter != nil && v.Setter != nil {
		keyword = "var"
	}

	receiver := ""
	if v.ExtendsType != nil {
		receiver = kotlinType(*v.ExtendsType) + "."
	}

	typeSuffix := ""
	if v.TypeName != "" {
		typeSuffix = ": " + kotlinType(v.TypeName)
	}

	init := ""
	if v.Expression != nil {
		init = " = " + e.EmitExpression(v.Expression, indent)
	} else if v.TypeName != "" && (keyword == "var") && v.Getter == nil {
		init = " = null"
	}

	line := indent + keyword + " " + receiver + v.Identifier + typeSuffix + init
	if v.Getter == nil && v.Setter == nil {
		return line + "\n"
	}

	var b strings.Builder
	b.WriteString(line + "\n")
	if v.Getter != nil {
		b.WriteString(indentMore(indent) + "get() {\n")
		b.WriteString(e.emitBody(v.Getter.Statements, indentMore(indentMore(indent))))
		b.WriteString(indentMore(indent) + "}\n")
	}
	if v.Setter != nil {
		b.WriteString(indentMore(indent) + "set(value) {\n")
		b.WriteString(e.emitBody(v.Setter.Statements, indentMore(indentMore(indent))))
		b.WriteString(indentMore(indent) + "}\n")
	}
	return b.String()
}

func (e *Emitter) emitForEachStatement(indent string, v *ir.ForEachStatement) string {
	var b strings.Builder
	b.WriteString(indent + "for (" + v.Variable + " in " + e.EmitExpression(v.Collection, indent) + ") {\n")
	b.WriteString(e.emitBody(v.Body, indentMore(indent)))
	b.WriteString(indent + "}\n")
	return b.String()
}

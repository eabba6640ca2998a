package emitter

import (
	"strconv"
	"strings"

	"github.com/funvibe/swiftkt/internal/ir"
	"github.com/funvibe/swiftkt/internal/registry"
)

// EmitExpression is the top-level expression dispatch, per spec.md §4.4.
func (e *Emitter) EmitExpression(ex ir.Expression, indent string) string {
	if ex == nil {
		return ""
	}
	switch v := ex.(type) {
	case *ir.IntLiteral:
		return strconv.FormatInt(v.Value, 10)
	case *ir.UIntLiteral:
		return strconv.FormatUint(v.Value, 10) + "u"
	case *ir.DoubleLiteral:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *ir.FloatLiteral:
		return strconv.FormatFloat(float64(v.Value), 'g', -1, 32) + "f"
	case *ir.BoolLiteral:
		return strconv.FormatBool(v.Value)
	case *ir.StringLiteral:
		return `"` + escapeKotlinString(v.Value) + `"`
	case *ir.CharacterLiteral:
		return "'" + v.Value + "'"
	case *ir.NilLiteral:
		return "null"
	case *ir.InterpolatedStringLiteral:
		return e.emitInterpolatedString(v, indent)
	case *ir.ArrayExpression:
		return e.emitArrayExpression(v, indent)
	case *ir.DictionaryExpression:
		return e.emitDictionaryExpression(v, indent)
	case *ir.TupleExpression:
		return e.emitTupleArgs(v.Pairs, indent)
	case *ir.TupleShuffleExpression:
		return e.emitTupleShuffle(v, indent)
	case *ir.DeclarationReferenceExpression:
		return v.Identifier
	case *ir.TypeExpression:
		return kotlinType(v.Type) + "::class"
	case *ir.DotExpression:
		return e.emitDotExpression(v, indent)
	case *ir.SubscriptExpression:
		return e.EmitExpression(v.Target, indent) + "[" + e.EmitExpression(v.Index, indent) + "]"
	case *ir.BinaryOperatorExpression:
		return e.EmitExpression(v.LHS, indent) + " " + kotlinOperator(v.Op) + " " + e.EmitExpression(v.RHS, indent)
	case *ir.PrefixUnaryExpression:
		return kotlinOperator(v.Op) + e.EmitExpression(v.Expr, indent)
	case *ir.PostfixUnaryExpression:
		return e.EmitExpression(v.Expr, indent) + kotlinOperator(v.Op)
	case *ir.CallExpression:
		return e.emitCallExpression(v, indent)
	case *ir.ClosureExpression:
		return e.emitClosureExpression(v, indent)
	case *ir.ParenthesesExpression:
		return "(" + e.EmitExpression(v.Expr, indent) + ")"
	case *ir.ForceValueExpression:
		return e.EmitExpression(v.Expr, indent) + "!!"
	case *ir.OptionalExpression:
		return e.EmitExpression(v.Expr, indent) + "?"
	case *ir.TemplateExpression:
		return e.emitTemplateExpression(v, indent)
	case *ir.LiteralCodeExpression:
		return unwrapEscapes(v.Text)
	case *ir.LiteralDeclarationExpression:
		return unwrapEscapes(v.Text)
	case *ir.ErrorExpression:
		return errorSentinel
	default:
		return e.errorToken(ex.Kind(), "unhandled expression kind")
	}
}

func escapeKotlinString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

func unwrapEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(s[i+1])
		}
		i++
	}
	return b.String()
}

// kotlinOperatorTable rewrites operator spellings that differ between
// Swift and Kotlin source text, per spec.md §4.4's "operator rewriting".
var kotlinOperatorTable = map[string]string{
	"??": "?:",
}

func kotlinOperator(op string) string {
	if mapped, ok := kotlinOperatorTable[op]; ok {
		return mapped
	}
	return op
}

func (e *Emitter) emitInterpolatedString(v *ir.InterpolatedStringLiteral, indent string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, part := range v.Parts {
		if lit, ok := part.(*ir.StringLiteral); ok {
			b.WriteString(escapeKotlinString(lit.Value))
			continue
		}
		b.WriteString("${" + e.EmitExpression(part, indent) + "}")
	}
	b.WriteByte('"')
	return b.String()
}

func (e *Emitter) emitArrayExpression(v *ir.ArrayExpression, indent string) string {
	parts := make([]string, len(v.Elements))
	for i, el := range v.Elements {
		parts[i] = e.EmitExpression(el, indent)
	}
	return "mutableListOf(" + strings.Join(parts, ", ") + ")"
}

func (e *Emitter) emitDictionaryExpression(v *ir.DictionaryExpression, indent string) string {
	parts := make([]string, len(v.Keys))
	for i := range v.Keys {
		parts[i] = e.EmitExpression(v.Keys[i], indent) + " to " + e.EmitExpression(v.Values[i], indent)
	}
	return "mutableMapOf(" + strings.Join(parts, ", ") + ")"
}

func (e *Emitter) emitTupleArgs(pairs []ir.LabeledExpression, indent string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		rendered := e.EmitExpression(p.Expression, indent)
		if p.Label != "" {
			rendered = p.Label + " = " + rendered
		}
		parts[i] = rendered
	}
	return strings.Join(parts, ", ")
}

// emitTupleShuffle renders call arguments from the Indices/Labels/
// Expressions triple, eliding labels once a variadic index has been
// reached (Kotlin disallows named arguments before a vararg), per
// spec.md §4.4.
func (e *Emitter) emitTupleShuffle(v *ir.TupleShuffleExpression, indent string) string {
	var parts []string
	exprIdx := 0
	seenVariadic := false
	for i, idx := range v.Indices {
		var label string
		if i < len(v.Labels) {
			label = v.Labels[i]
		}
		switch idx.Kind {
		case ir.ShuffleAbsent:
			continue
		case ir.ShuffleVariadic:
			seenVariadic = true
			for n := 0; n < idx.VariadicCount && exprIdx < len(v.Expressions); n++ {
				parts = append(parts, e.EmitExpression(v.Expressions[exprIdx], indent))
				exprIdx++
			}
		default: // present
			if exprIdx >= len(v.Expressions) {
				continue
			}
			rendered := e.EmitExpression(v.Expressions[exprIdx], indent)
			exprIdx++
			if label != "" && !seenVariadic {
				rendered = label + " = " + rendered
			}
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, ", ")
}

// emitDotExpression consults the sealed/enum registries per spec.md §4.4's
// "Dot expressions" rule.
func (e *Emitter) emitDotExpression(v *ir.DotExpression, indent string) string {
	lhsText := e.EmitExpression(v.LHS, indent)
	rhsName := identifierName(v.RHS)

	if e.Enums != nil && rhsName != "" {
		switch e.Enums.Lookup(lhsText) {
		case registry.EnumKindSealed:
			return lhsText + "." + capitalize(rhsName) + "()"
		case registry.EnumKindEnumClass:
			return capitalize(rhsName)
		}
	}
	return lhsText + "." + e.EmitExpression(v.RHS, indent)
}

func identifierName(ex ir.Expression) string {
	if ref, ok := ex.(*ir.DeclarationReferenceExpression); ok {
		return ref.Identifier
	}
	return ""
}

// emitCallExpression unfolds dotExpression chains into a receiver prefix,
// consults the function-translation registry, and reflows at 100 columns,
// per spec.md §4.4's "Calls" rule.
func (e *Emitter) emitCallExpression(v *ir.CallExpression, indent string) string {
	receiver, funcName := e.splitCallFunction(v.Function, indent)

	params := v.Parameters
	if e.Functions != nil && funcName != "" {
		if translation, ok := e.Functions.Lookup(funcName, v.Type); ok {
			if translation.Prefix != "" {
				funcName = translation.Prefix
			}
			params = applyParameterLabelOverrides(params, translation)
		}
	}

	args := e.EmitExpression(params, indent)
	callText := funcName + "(" + args + ")"
	if receiver != "" {
		callText = receiver + "." + callText
	}
	single := indent + callText
	if fitsLineBudget(single) {
		return callText
	}
	return e.reflowCall(indent, receiver, funcName, params)
}

// splitCallFunction unfolds a chain of DotExpressions into (receiverText,
// finalFunctionName); a bare DeclarationReference has no receiver.
func (e *Emitter) splitCallFunction(fn ir.Expression, indent string) (receiver, name string) {
	switch f := fn.(type) {
	case *ir.DotExpression:
		return e.EmitExpression(f.LHS, indent), identifierName(f.RHS)
	case *ir.DeclarationReferenceExpression:
		return "", f.Identifier
	default:
		return "", e.EmitExpression(fn, indent)
	}
}

// applyParameterLabelOverrides replaces call-site argument labels
// positionally per the registered translation.ParameterLabels; an empty
// override string elides that position's label, per spec.md §4.4.
func applyParameterLabelOverrides(params ir.Expression, translation registry.FunctionTranslation) ir.Expression {
	tuple, ok := params.(*ir.TupleExpression)
	if !ok || len(translation.ParameterLabels) == 0 {
		return params
	}
	out := &ir.TupleExpression{Pairs: append([]ir.LabeledExpression(nil), tuple.Pairs...)}
	for i := range out.Pairs {
		if i < len(translation.ParameterLabels) {
			out.Pairs[i].Label = translation.ParameterLabels[i]
		}
	}
	return out
}

func (e *Emitter) reflowCall(indent, receiver, funcName string, params ir.Expression) string {
	var argList []string
	switch p := params.(type) {
	case *ir.TupleExpression:
		for _, pair := range p.Pairs {
			rendered := e.EmitExpression(pair.Expression, indentMore(indent))
			if pair.Label != "" {
				rendered = pair.Label + " = " + rendered
			}
			argList = append(argList, rendered)
		}
	default:
		argList = append(argList, e.EmitExpression(params, indentMore(indent)))
	}

	head := funcName + "("
	if receiver != "" {
		head = receiver + "." + head
	}

	inner := indentMore(indent)
	var b strings.Builder
	b.WriteString(head + "\n")
	for i, a := range argList {
		b.WriteString(inner + a)
		if i < len(argList)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indent + ")")
	return b.String()
}

func (e *Emitter) emitClosureExpression(v *ir.ClosureExpression, indent string) string {
	var b strings.Builder
	b.WriteString("{ ")
	if len(v.Parameters) > 0 {
		names := make([]string, len(v.Parameters))
		for i, p := range v.Parameters {
			names[i] = p.Label
		}
		b.WriteString(strings.Join(names, ", ") + " ->")
	}
	b.WriteString("\n")
	b.WriteString(e.emitBody(v.Body, indentMore(indent)))
	b.WriteString(indent + "}")
	return b.String()
}

// emitTemplateExpression substitutes each (placeholder, subExpr) match
// into the pattern text, per spec.md §4.4.
func (e *Emitter) emitTemplateExpression(v *ir.TemplateExpression, indent string) string {
	out := v.Pattern
	for _, m := range v.Matches {
		out = strings.ReplaceAll(out, m.Placeholder, e.EmitExpression(m.Expression, indent))
	}
	return out
}

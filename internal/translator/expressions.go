package translator

import (
	"strconv"
	"strings"

	"github.com/funvibe/swiftkt/internal/config"
	"github.com/funvibe/swiftkt/internal/ir"
	"github.com/funvibe/swiftkt/internal/rawtree"
)

// passthroughLastChild lists node kinds that translate to whatever their last
// child translates to, per spec.md §4.2's expression dispatch table.
var passthroughLastChild = map[string]bool{
	"Erasure Expression":             true,
	"Autoclosure Expression":         true,
	"Inject Into Optional":           true,
	"Optional Evaluation Expression": true,
	"Inout Expression":               true,
	"Load Expression":                true,
	"Function Conversion Expression": true,
	"Try Expression":                 true,
}

func (tr *Translator) translateExpression(t *rawtree.RawTree) ir.Expression {
	if t == nil {
		return &ir.ErrorExpression{Reason: "nil expression node"}
	}

	if value, ok := tr.valueDirective(t); ok {
		return &ir.LiteralCodeExpression{Text: value}
	}

	if passthroughLastChild[t.Name] {
		return tr.translateExpression(t.LastChild())
	}
	if t.Name == "Collection Upcast Expression" {
		return tr.translateExpression(t.Child(0))
	}
	if t.Name == "Open Existential Expression" {
		return tr.translateOpenExistential(t)
	}
	if t.Name == "Parentheses Expression" {
		inner := tr.translateExpression(t.Child(0))
		if t.HasStandalone("implicit") {
			return inner
		}
		return &ir.ParenthesesExpression{Expr: inner}
	}

	switch t.Name {
	case "Integer Literal Expression", "Float Literal Expression", "Boolean Literal Expression", "Nil Literal Expression":
		return tr.translateRawNumericLiteral(t)
	case "String Literal Expression":
		return &ir.StringLiteral{Value: t.FirstStandalone()}
	case "Character Literal Expression":
		return &ir.CharacterLiteral{Value: t.FirstStandalone()}
	case "Interpolated String Literal Expression":
		return tr.translateInterpolatedString(t)
	case "Array Expression":
		return tr.translateArrayExpression(t)
	case "Dictionary Expression":
		return tr.translateDictionaryExpression(t)
	case "Tuple Expression":
		return tr.translateTupleExpression(t)
	case "Tuple Shuffle Expression":
		return tr.translateTupleShuffleExpression(t)
	case "Declaration Reference Expression":
		return tr.translateDeclarationReferenceExpression(t)
	case "Type Expression":
		return &ir.TypeExpression{Type: cleanUpType(t.AttributeOr("typerepr", t.AttributeOr("type", "")))}
	case "Dot Syntax Call Expression", "Member Reference Expression":
		return tr.translateDotExpression(t)
	case "Subscript Expression":
		return &ir.SubscriptExpression{
			Target: tr.translateExpression(t.Child(0)),
			Index:  tr.translateExpression(t.Child(1)),
			Type:   cleanUpType(t.AttributeOr("type", "")),
		}
	case "Binary Expression":
		return tr.translateBinaryExpression(t)
	case "Prefix Unary Expression":
		return &ir.PrefixUnaryExpression{
			Expr: tr.translateExpression(t.LastChild()),
			Op:   operatorName(t),
			Type: cleanUpType(t.AttributeOr("type", "")),
		}
	case "Postfix Unary Expression":
		return &ir.PostfixUnaryExpression{
			Expr: tr.translateExpression(t.Child(0)),
			Op:   operatorName(t),
			Type: cleanUpType(t.AttributeOr("type", "")),
		}
	case "Call Expression", "Constructor Reference Call Expression":
		return tr.translateCallExpression(t)
	case "Closure Expression":
		return tr.translateClosureExpression(t)
	case "Force Value Expression":
		return &ir.ForceValueExpression{Expr: tr.translateExpression(t.Child(0))}
	case "Bind Optional Expression":
		return &ir.OptionalExpression{Expr: tr.translateExpression(t.Child(0))}
	case "Opaque Value Expression":
		return &ir.ErrorExpression{Reason: "unresolved Opaque Value Expression"}
	}

	if strings.HasSuffix(t.Name, "Expression") {
		return tr.errorExpression(t.Name, t, "no translation rule for expression %q", t.Name)
	}
	return tr.errorExpression(t.Name, t, "expected an expression node, found %q", t.Name)
}

// translateOpenExistential replaces every "Opaque Value Expression" occurrence
// inside the result subtree with the replacement subtree (child 1) before
// translating, per spec.md §4.2.
func (tr *Translator) translateOpenExistential(t *rawtree.RawTree) ir.Expression {
	if len(t.Children) < 2 {
		return tr.errorExpression(t.Name, t, "Open Existential Expression missing replacement subtree")
	}
	replacement := t.Child(1)
	result := t.LastChild()
	substituted := substituteOpaqueValue(result, replacement)
	return tr.translateExpression(substituted)
}

func substituteOpaqueValue(node, replacement *rawtree.RawTree) *rawtree.RawTree {
	if node == nil {
		return nil
	}
	if node.Name == "Opaque Value Expression" {
		return replacement
	}
	children := make([]*rawtree.RawTree, len(node.Children))
	for i, c := range node.Children {
		children[i] = substituteOpaqueValue(c, replacement)
	}
	clone := *node
	clone.Children = children
	return &clone
}

// operatorName reads an operator's textual symbol from its declaration
// reference's identifier, e.g. the "!" in Prefix Unary Expression's
// function child, falling back to the node's name attribute.
func operatorName(t *rawtree.RawTree) string {
	if declRef := t.ChildNamed("Declaration Reference Expression"); declRef != nil {
		return declRef.AttributeOr("name", declRef.FirstStandalone())
	}
	return t.AttributeOr("name", t.FirstStandalone())
}

// translateRawNumericLiteral handles an already-literal node shape (used
// when the dump emits a literal node directly rather than wrapped in the
// Call-Expression-to-_builtin*Literal convention spec.md §4.2 describes as
// the primary detection path — see translateCallExpression for that path).
func (tr *Translator) translateRawNumericLiteral(t *rawtree.RawTree) ir.Expression {
	raw := t.AttributeOr("value", t.FirstStandalone())
	negative := t.HasStandalone("negative")
	switch t.Name {
	case "Boolean Literal Expression":
		return &ir.BoolLiteral{Value: raw == "true"}
	case "Nil Literal Expression":
		return &ir.NilLiteral{}
	case "Float Literal Expression":
		v, _ := strconv.ParseFloat(raw, 64)
		if negative {
			v = -v
		}
		return &ir.DoubleLiteral{Value: v}
	default:
		v, _ := strconv.ParseInt(raw, 10, 64)
		if negative {
			v = -v
		}
		return &ir.IntLiteral{Value: v}
	}
}

// translateNumericLiteralFromCall implements spec.md §4.2's numeric-literal
// detection: a Call Expression whose `arg_labels` matches one of the
// builtin literal constructors. The literal type comes from the
// Constructor Reference Call Expression's Type Expression[typerepr].
func (tr *Translator) translateNumericLiteralFromCall(t *rawtree.RawTree, argLabels string) (ir.Expression, bool) {
	var typerepr string
	if ctor := t.ChildNamed("Constructor Reference Call Expression"); ctor != nil {
		if typeExpr := ctor.ChildNamed("Type Expression"); typeExpr != nil {
			typerepr = cleanUpType(typeExpr.AttributeOr("typerepr", typeExpr.AttributeOr("type", "")))
		}
	}

	raw := ""
	if args := t.ChildNamed("Tuple Expression"); args != nil {
		if lit := firstLiteralStandalone(args); lit != "" {
			raw = lit
		}
	}
	negative := t.HasStandalone("negative")

	switch argLabels {
	case config.BuiltinBooleanCtor:
		return &ir.BoolLiteral{Value: raw == "true"}, true
	case config.NilLiteralCtor:
		return &ir.NilLiteral{}, true
	case config.BuiltinFloatCtor:
		switch typerepr {
		case "Double", "Float64":
			v, _ := strconv.ParseFloat(raw, 64)
			if negative {
				v = -v
			}
			return &ir.DoubleLiteral{Value: v}, true
		case "Float", "Float32":
			v, _ := strconv.ParseFloat(raw, 32)
			if negative {
				v = -v
			}
			return &ir.FloatLiteral{Value: float32(v)}, true
		case "Float80":
			tr.reportUnsupported(t.Name, t, "80-bit floating point literals are not supported")
			return &ir.ErrorExpression{Reason: "Float80 literal"}, true
		default:
			v, _ := strconv.ParseFloat(raw, 64)
			if negative {
				v = -v
			}
			return &ir.DoubleLiteral{Value: v}, true
		}
	case config.BuiltinIntegerCtor:
		if strings.HasPrefix(typerepr, "U") {
			v, _ := strconv.ParseUint(raw, 10, 64)
			return &ir.UIntLiteral{Value: v}, true
		}
		v, _ := strconv.ParseInt(raw, 10, 64)
		if negative {
			v = -v
		}
		return &ir.IntLiteral{Value: v}, true
	}
	return nil, false
}

func firstLiteralStandalone(t *rawtree.RawTree) string {
	for _, c := range t.Children {
		if strings.HasSuffix(c.Name, "Literal Expression") {
			return c.FirstStandalone()
		}
	}
	return t.FirstStandalone()
}

func (tr *Translator) translateInterpolatedString(t *rawtree.RawTree) ir.Expression {
	var parts []ir.Expression
	for _, c := range t.Children {
		if c.Name == "String Literal Expression" {
			if c.FirstStandalone() == "" {
				continue // the sentinel empty-segment, per spec.md §4.4
			}
		}
		parts = append(parts, tr.translateExpression(c))
	}
	return &ir.InterpolatedStringLiteral{Parts: parts}
}

func (tr *Translator) translateArrayExpression(t *rawtree.RawTree) ir.Expression {
	var elements []ir.Expression
	for _, c := range t.Children {
		elements = append(elements, tr.translateExpression(c))
	}
	return &ir.ArrayExpression{Elements: elements, Type: cleanUpType(t.AttributeOr("type", ""))}
}

func (tr *Translator) translateDictionaryExpression(t *rawtree.RawTree) ir.Expression {
	var keys, values []ir.Expression
	for i := 0; i+1 < len(t.Children); i += 2 {
		keys = append(keys, tr.translateExpression(t.Children[i]))
		values = append(values, tr.translateExpression(t.Children[i+1]))
	}
	return &ir.DictionaryExpression{Keys: keys, Values: values, Type: cleanUpType(t.AttributeOr("type", ""))}
}

func (tr *Translator) translateTupleExpression(t *rawtree.RawTree) ir.Expression {
	names := strings.Split(t.AttributeOr("names", ""), ",")
	var pairs []ir.LabeledExpression
	for i, c := range t.Children {
		var label string
		if i < len(names) {
			label = strings.TrimSpace(names[i])
			if label == "_" {
				label = ""
			}
		}
		pairs = append(pairs, ir.LabeledExpression{Label: label, Expression: tr.translateExpression(c)})
	}
	return &ir.TupleExpression{Pairs: pairs}
}

func (tr *Translator) translateTupleShuffleExpression(t *rawtree.RawTree) ir.Expression {
	labels := parseTupleShuffleLabels(t.AttributeOr("type", ""))
	indices := decodeTupleShuffleIndices(t.AttributeOr("elements", ""), t.AttributeOr("variadic_sources", ""))

	var expressions []ir.Expression
	if tuple := t.ChildNamed("Tuple Expression"); tuple != nil {
		for _, c := range tuple.Children {
			expressions = append(expressions, tr.translateExpression(c))
		}
	}

	return &ir.TupleShuffleExpression{Labels: labels, Indices: indices, Expressions: expressions}
}

func (tr *Translator) translateDeclarationReferenceExpression(t *rawtree.RawTree) ir.Expression {
	identifier := t.AttributeOr("name", t.FirstStandalone())
	isStdlib := false
	if decl, ok := t.Attribute("decl"); ok {
		isStdlib = strings.HasPrefix(decl, "Swift.")
	}
	return &ir.DeclarationReferenceExpression{
		Identifier:        identifier,
		Type:              cleanUpType(t.AttributeOr("type", "")),
		IsStandardLibrary: isStdlib,
		IsImplicit:        t.HasStandalone("implicit"),
	}
}

func (tr *Translator) translateDotExpression(t *rawtree.RawTree) ir.Expression {
	if len(t.Children) < 2 {
		return tr.errorExpression(t.Name, t, "dot-syntax node has fewer than 2 children")
	}
	return &ir.DotExpression{
		LHS: tr.translateExpression(t.Child(len(t.Children) - 1)),
		RHS: tr.translateExpression(t.Child(0)),
	}
}

func (tr *Translator) translateBinaryExpression(t *rawtree.RawTree) ir.Expression {
	fn := t.ChildNamed("Declaration Reference Expression")
	op := ""
	if fn != nil {
		op = fn.AttributeOr("name", fn.FirstStandalone())
	}
	args := t.ChildNamed("Tuple Expression")
	if args == nil || len(args.Children) < 2 {
		return tr.errorExpression(t.Name, t, "binary expression missing argument tuple")
	}
	return &ir.BinaryOperatorExpression{
		LHS:  tr.translateExpression(args.Children[0]),
		RHS:  tr.translateExpression(args.Children[1]),
		Op:   op,
		Type: cleanUpType(t.AttributeOr("type", "")),
	}
}

func (tr *Translator) translateCallExpression(t *rawtree.RawTree) ir.Expression {
	if argLabels, ok := t.Attribute("arg_labels"); ok {
		if lit, isLit := tr.translateNumericLiteralFromCall(t, argLabels); isLit {
			return lit
		}
	}

	fn := t.Child(0)
	var params ir.Expression
	if args := t.Child(1); args != nil {
		params = tr.translateExpression(args)
	} else {
		params = &ir.TupleExpression{}
	}

	return &ir.CallExpression{
		Function:   tr.translateExpression(fn),
		Parameters: params,
		Type:       cleanUpType(t.AttributeOr("type", "")),
	}
}

func (tr *Translator) translateClosureExpression(t *rawtree.RawTree) ir.Expression {
	var params []ir.FunctionParameter
	if list := t.ChildNamed("Parameter List"); list != nil {
		params = tr.translateParameterList(list)
	}
	return &ir.ClosureExpression{
		Parameters: params,
		Body:       tr.translateMembers(braceChildren(t)),
		Type:       cleanUpType(t.AttributeOr("type", "")),
	}
}

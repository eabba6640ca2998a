package translator

import (
	"strings"

	"github.com/funvibe/swiftkt/internal/ir"
	"github.com/funvibe/swiftkt/internal/rawtree"
)

// TranslateStatement dispatches a RawTree to its IR statement per the table
// in spec.md §4.2.
func (tr *Translator) TranslateStatement(t *rawtree.RawTree) ir.Statement {
	if t == nil {
		return tr.errorStatement("<nil>", t, "nil node")
	}
	if tr.ignoreDirective(t) {
		return nil
	}

	switch t.Name {
	case "Top Level Code Declaration":
		brace := t.ChildNamed("Brace Statement")
		stmts := tr.translateBraceLikeChildren(brace.Children)
		if len(stmts) == 0 {
			return nil
		}
		return stmts[0]

	case "Import Declaration":
		return &ir.ImportDeclaration{Name: t.FirstStandalone()}

	case "Typealias":
		return &ir.TypealiasDeclaration{
			Identifier: t.AttributeOr("name", t.FirstStandalone()),
			Type:       cleanUpType(t.AttributeOr("type", "")),
			IsImplicit: t.HasStandalone("implicit"),
		}

	case "Class Declaration":
		return &ir.ClassDeclaration{
			Name:     t.AttributeOr("name", t.FirstStandalone()),
			Inherits: splitInherits(t),
			Members:  tr.translateMembers(t.Children),
		}

	case "Struct Declaration":
		return &ir.StructDeclaration{
			Name:     t.AttributeOr("name", t.FirstStandalone()),
			Inherits: splitInherits(t),
			Members:  tr.translateMembers(t.Children),
		}

	case "Enum Declaration":
		return tr.translateEnumDeclaration(t)

	case "Extension Declaration":
		typeName := t.AttributeOr("type", t.FirstStandalone())
		prevExtending := tr.extendingType
		tr.extendingType = typeName
		defer func() { tr.extendingType = prevExtending }()
		return &ir.ExtensionDeclaration{Type: typeName, Members: tr.translateMembers(t.Children)}

	case "Protocol":
		return &ir.ProtocolDeclaration{
			Name:    t.AttributeOr("name", t.FirstStandalone()),
			Members: tr.translateMembers(t.Children),
		}

	case "Function Declaration", "Constructor Declaration":
		return tr.translateFunctionDeclaration(t)

	case "Variable Declaration":
		return tr.translateVariableDeclaration(t)

	case "Pattern Binding Declaration":
		tr.translatePatternBindingDeclaration(t)
		return nil

	case "If Statement", "Guard Statement":
		return &ir.IfStatement{If: tr.translateIfLike(t)}

	case "Switch Statement":
		return tr.translateSwitchStatement(t)

	case "For Each Statement":
		return tr.translateForEachStatement(t)

	case "While Statement":
		return &ir.WhileStatement{
			Expr: tr.translateExpression(firstExpressionChild(t)),
			Body: tr.translateMembers(braceChildren(t)),
		}

	case "Defer Statement":
		return &ir.DeferStatement{Body: tr.translateMembers(braceChildren(t))}

	case "Return Statement":
		var expr ir.Expression
		if last := t.LastChild(); last != nil && isExpressionNode(last) {
			expr = tr.translateExpression(last)
		}
		return &ir.ReturnStatement{Expr: expr}

	case "Throw Statement":
		return &ir.ThrowStatement{Expr: tr.translateExpression(t.LastChild())}

	case "Break Statement":
		return &ir.BreakStatement{}

	case "Continue Statement":
		return &ir.ContinueStatement{}

	case "Assign Expression":
		return &ir.AssignmentStatement{
			LHS: tr.translateExpression(t.Child(0)),
			RHS: tr.translateExpression(t.Child(1)),
		}

	default:
		if strings.HasSuffix(t.Name, "Expression") {
			return &ir.ExpressionStatement{Expr: tr.translateExpression(t)}
		}
		return tr.errorStatement(t.Name, t, "no translation rule for node %q", t.Name)
	}
}

// translateBraceLikeChildren translates a sequence of sibling RawTrees
// (the children of a Brace Statement, or a file's top-level children) into
// a flat IR statement list, materializing interleaved comment-directive
// insertions between siblings per spec.md §4.2.2 and resetting the
// pattern-binding queue at scope entry (it is confined to one brace scope,
// per spec.md §9).
func (tr *Translator) translateBraceLikeChildren(children []*rawtree.RawTree) []ir.Statement {
	savedQueue := tr.queue
	tr.queue = patternQueue{}
	defer func() { tr.queue = savedQueue }()

	var out []ir.Statement
	prevEndLine := 0
	for _, child := range children {
		if rng, ok := nodeRange(child); ok {
			out = append(out, tr.insertedStatementsBetween(prevEndLine, rng.Start.Pos.Line)...)
			prevEndLine = rng.End.Pos.Line
		}
		stmt := tr.TranslateStatement(child)
		if stmt != nil {
			out = append(out, stmt)
		}
	}
	return out
}

// translateMembers is translateBraceLikeChildren under the name spec.md
// uses for declaration-scope members (class/struct/enum/protocol/extension
// bodies), which share the exact same translation and queue-scoping rules.
func (tr *Translator) translateMembers(children []*rawtree.RawTree) []ir.Statement {
	return tr.translateBraceLikeChildren(children)
}

func splitInherits(t *rawtree.RawTree) []string {
	raw, ok := t.Attribute("inherits")
	if !ok || raw == "" {
		return nil
	}
	return strings.Split(raw, ", ")
}

func braceChildren(t *rawtree.RawTree) []*rawtree.RawTree {
	brace := t.ChildNamed("Brace Statement")
	if brace == nil {
		return nil
	}
	return brace.Children
}

func firstExpressionChild(t *rawtree.RawTree) *rawtree.RawTree {
	for _, c := range t.Children {
		if isExpressionNode(c) {
			return c
		}
	}
	return nil
}

func isExpressionNode(t *rawtree.RawTree) bool {
	return t != nil && strings.HasSuffix(t.Name, "Expression")
}

func (tr *Translator) translateEnumDeclaration(t *rawtree.RawTree) ir.Statement {
	var elements []ir.EnumElement
	var members []ir.Statement
	for _, c := range t.Children {
		if c.Name == "Enum Element Declaration" {
			name := c.AttributeOr("name", c.FirstStandalone())
			elements = append(elements, ir.EnumElement{
				Name:           strings.TrimSuffix(name, "("),
				AssociatedValues: parseEnumCaseInterfaceType(c.AttributeOr("interface type", "")),
				Annotations:    c.StandaloneAttributes,
			})
			continue
		}
		if stmt := tr.TranslateStatement(c); stmt != nil {
			members = append(members, stmt)
		}
	}
	return &ir.EnumDeclaration{
		Access:     t.AttributeOr("access", ""),
		Name:       t.AttributeOr("name", t.FirstStandalone()),
		Inherits:   splitInherits(t),
		Elements:   elements,
		Members:    members,
		IsImplicit: t.HasStandalone("implicit"),
	}
}

func (tr *Translator) translateFunctionDeclaration(t *rawtree.RawTree) ir.Statement {
	if t.HasStandalone("implicit") {
		return nil
	}
	if _, ok := t.Attribute("getter_for"); ok {
		return nil
	}
	if _, ok := t.Attribute("setter_for"); ok {
		return nil
	}

	interfaceType := t.AttributeOr("interface type", "")
	paramsType, returnType := parseFunctionInterfaceType(interfaceType)

	isStatic := strings.Contains(paramsType, ".Type")
	isMutating := strings.Contains(paramsType, "inout")

	paramLists := t.ChildrenNamed("Parameter List")
	var params []ir.FunctionParameter
	if len(paramLists) > 0 {
		params = tr.translateParameterList(paramLists[len(paramLists)-1])
	}

	prefix := t.AttributeOr("name", t.FirstStandalone())
	var extends *string
	if tr.extendingType != "" {
		ext := tr.extendingType
		extends = &ext
	}

	return &ir.FunctionDeclaration{Function: ir.FunctionDecl{
		Prefix:       prefix,
		Parameters:   params,
		ReturnType:   returnType,
		FunctionType: cleanUpType(interfaceType),
		IsImplicit:   false,
		IsStatic:     isStatic,
		IsMutating:   isMutating,
		ExtendsType:  extends,
		Statements:   tr.translateMembers(braceChildren(t)),
		Access:       t.AttributeOr("access", ""),
		Annotations:  t.StandaloneAttributes,
	}}
}

func (tr *Translator) translateParameterList(list *rawtree.RawTree) []ir.FunctionParameter {
	var out []ir.FunctionParameter
	for _, p := range list.ChildrenNamed("Parameter") {
		label := p.AttributeOr("name", p.FirstStandalone())
		var apiLabel *string
		if api, ok := p.Attribute("apiName"); ok && api != label {
			a := api
			apiLabel = &a
		}
		var def ir.Expression
		for _, c := range p.Children {
			if isExpressionNode(c) {
				def = tr.translateExpression(c)
			}
		}
		out = append(out, ir.FunctionParameter{
			Label:        label,
			ApiLabel:     apiLabel,
			Type:         cleanUpType(p.AttributeOr("type", p.AttributeOr("interface type", ""))),
			DefaultValue: def,
		})
	}
	return out
}

func (tr *Translator) translateVariableDeclaration(t *rawtree.RawTree) ir.Statement {
	identifier := t.AttributeOr("name", t.FirstStandalone())
	typ := cleanUpType(t.AttributeOr("type", t.AttributeOr("interface type", "")))

	var getter, setter *ir.FunctionDecl
	for _, c := range t.Children {
		if c.Name != "Function Declaration" && c.Name != "Constructor Declaration" {
			continue
		}
		_, isGetter := c.Attribute("getter_for")
		_, isGetterShort := c.Attribute("get_for")
		_, isSetter := c.Attribute("setter_for")
		_, isSetterShort := c.Attribute("set_for")
		_, isMaterialized := c.Attribute("materializeForSet_for")
		switch {
		case isGetter || isGetterShort:
			fn := tr.buildAccessor(c)
			getter = &fn
		case isSetter || isSetterShort || isMaterialized:
			fn := tr.buildAccessor(c)
			setter = &fn
		}
	}

	expr, hasInit := tr.queue.dequeue(identifier, typ)

	var extends *string
	if tr.extendingType != "" {
		ext := tr.extendingType
		extends = &ext
	}

	v := ir.VariableDecl{
		Identifier:  identifier,
		TypeName:    typ,
		Getter:      getter,
		Setter:      setter,
		IsLet:       t.HasStandalone("let") || (getter != nil && setter == nil),
		IsImplicit:  t.HasStandalone("implicit"),
		IsStatic:    strings.Contains(t.AttributeOr("type", ""), ".Type"),
		ExtendsType: extends,
		Annotations: t.StandaloneAttributes,
	}
	if hasInit {
		v.Expression = expr
	}
	return &ir.VariableDeclaration{Variable: v}
}

func (tr *Translator) buildAccessor(t *rawtree.RawTree) ir.FunctionDecl {
	paramLists := t.ChildrenNamed("Parameter List")
	var params []ir.FunctionParameter
	if len(paramLists) > 0 {
		params = tr.translateParameterList(paramLists[len(paramLists)-1])
	}
	return ir.FunctionDecl{
		Prefix:     t.AttributeOr("name", t.FirstStandalone()),
		Parameters: params,
		Statements: tr.translateMembers(braceChildren(t)),
	}
}

func (tr *Translator) translatePatternBindingDeclaration(t *rawtree.RawTree) {
	children := t.Children
	for i := 0; i+1 < len(children); i += 2 {
		pattern := children[i]
		initExpr := children[i+1]

		named := findPatternNamed(pattern)
		if named == nil {
			tr.queue.enqueueError()
			continue
		}
		identifier := named.AttributeOr("name", named.FirstStandalone())
		typ := cleanUpType(named.AttributeOr("type", ""))

		if !isExpressionNode(initExpr) {
			tr.queue.enqueue(bindingEntry{Identifier: identifier, Type: typ, Present: false})
			continue
		}
		expr := tr.translateExpression(initExpr)
		tr.queue.enqueue(bindingEntry{Identifier: identifier, Type: typ, Expression: expr, Present: true})
	}
	if len(children)%2 != 0 {
		tr.queue.enqueueError()
	}
}

// findPatternNamed locates the "Pattern Named" node inside a pattern
// subtree, descending through the "Pattern" / "Pattern Let" / "Pattern
// Variable" / "Pattern Typed" wrappers the dump may interpose.
func findPatternNamed(t *rawtree.RawTree) *rawtree.RawTree {
	if t == nil {
		return nil
	}
	if t.Name == "Pattern Named" {
		return t
	}
	if len(t.Children) > 0 {
		return findPatternNamed(t.Children[0])
	}
	return nil
}

func (tr *Translator) translateForEachStatement(t *rawtree.RawTree) ir.Statement {
	named := t.ChildNamed("Pattern Named")
	variable := ""
	if named != nil {
		variable = named.AttributeOr("name", named.FirstStandalone())
	}
	var collection ir.Expression
	if c := t.Child(2); c != nil {
		collection = tr.translateExpression(c)
	}
	return &ir.ForEachStatement{
		Collection: collection,
		Variable:   variable,
		Body:       tr.translateMembers(braceChildren(t)),
	}
}

func (tr *Translator) translateSwitchStatement(t *rawtree.RawTree) ir.Statement {
	if len(t.Children) == 0 {
		return tr.errorStatement(t.Name, t, "switch statement has no scrutinee")
	}
	scrutinee := tr.translateExpression(t.Child(0))
	var cases []ir.SwitchCase
	for _, c := range t.Children[1:] {
		if c.Name != "Case" {
			continue
		}
		cases = append(cases, tr.translateCase(c))
	}
	return &ir.SwitchStatement{Expr: scrutinee, Cases: cases}
}

func (tr *Translator) translateCase(t *rawtree.RawTree) ir.SwitchCase {
	var expr ir.Expression
	if item := t.ChildNamed("Case Label Item"); item != nil {
		for _, c := range item.Children {
			if isExpressionNode(c) {
				expr = tr.translateExpression(c)
				break
			}
		}
	}
	return ir.SwitchCase{Expression: expr, Statements: tr.translateMembers(braceChildren(t))}
}

// translateIfLike implements spec.md §4.2.1.
func (tr *Translator) translateIfLike(t *rawtree.RawTree) ir.IfStmt {
	isGuard := t.Name == "Guard Statement"

	// Children that are neither "If Statement" nor "Brace Statement" are
	// conditions (spec.md §4.2.1). The then-branch is the second-to-last
	// Brace Statement when a tail (else-if or else-brace) follows it,
	// otherwise the last one.
	var conditionNodes []*rawtree.RawTree
	var braceLikeTail []*rawtree.RawTree
	for _, c := range t.Children {
		if c.Name == "Brace Statement" || c.Name == "If Statement" {
			braceLikeTail = append(braceLikeTail, c)
		} else {
			conditionNodes = append(conditionNodes, c)
		}
	}

	var thenBrace, tailNode *rawtree.RawTree
	switch len(braceLikeTail) {
	case 0:
	case 1:
		thenBrace = braceLikeTail[0]
	default:
		thenBrace = braceLikeTail[len(braceLikeTail)-2]
		tailNode = braceLikeTail[len(braceLikeTail)-1]
	}

	var conditions []ir.Expression
	var decls []ir.VariableDecl
	for _, c := range conditionNodes {
		if decl, ok := tr.translateIfLetCondition(c); ok {
			decls = append(decls, decl)
			continue
		}
		conditions = append(conditions, tr.translateExpression(c))
	}

	var stmts []ir.Statement
	if thenBrace != nil {
		stmts = tr.translateMembers(thenBrace.Children)
	}

	var elseStmt *ir.IfStmt
	if tailNode != nil {
		if tailNode.Name == "If Statement" {
			nested := tr.translateIfLike(tailNode)
			elseStmt = &nested
		} else {
			wrapped := ir.IfStmt{Statements: tr.translateMembers(tailNode.Children)}
			elseStmt = &wrapped
		}
	}

	return ir.IfStmt{
		Conditions:    conditions,
		Declarations:  decls,
		Statements:    stmts,
		ElseStatement: elseStmt,
		IsGuard:       isGuard,
	}
}

// translateIfLetCondition recognizes a "Pattern" condition wrapping an
// Optional-Some pattern (if-let/if-var), per spec.md §4.2.1.
func (tr *Translator) translateIfLetCondition(c *rawtree.RawTree) (ir.VariableDecl, bool) {
	if c.Name != "Pattern" {
		return ir.VariableDecl{}, false
	}
	optSome := firstNamed(c, "Pattern Optional Some Element", "Pattern Optional Some")
	if optSome == nil {
		return ir.VariableDecl{}, false
	}
	named := firstNamedUnder(optSome, "Pattern Let", "Pattern Named")
	isLet := true
	if named == nil {
		named = firstNamedUnder(optSome, "Pattern Variable", "Pattern Named")
		isLet = false
	}
	if named == nil {
		return ir.VariableDecl{}, false
	}

	var init ir.Expression
	if last := c.LastChild(); last != nil && isExpressionNode(last) {
		init = tr.translateExpression(last)
	}

	return ir.VariableDecl{
		Identifier: named.AttributeOr("name", named.FirstStandalone()),
		TypeName:   cleanUpType(named.AttributeOr("type", "")),
		Expression: init,
		IsLet:      isLet,
	}, true
}

func firstNamed(t *rawtree.RawTree, names ...string) *rawtree.RawTree {
	for _, n := range names {
		if found := t.ChildNamed(n); found != nil {
			return found
		}
	}
	return nil
}

// firstNamedUnder looks for wrapper, then descends into it to find target.
func firstNamedUnder(t *rawtree.RawTree, wrapper, target string) *rawtree.RawTree {
	w := t.ChildNamed(wrapper)
	if w == nil {
		return nil
	}
	if w.Name == target {
		return w
	}
	return w.ChildNamed(target)
}

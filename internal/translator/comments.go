package translator

import (
	"github.com/funvibe/swiftkt/internal/config"
	"github.com/funvibe/swiftkt/internal/ir"
	"github.com/funvibe/swiftkt/internal/rawtree"
	"github.com/funvibe/swiftkt/internal/token"
)

// nodeRange extracts and parses a RawTree's "range" attribute, returning
// ok=false when absent or unparseable.
func nodeRange(t *rawtree.RawTree) (token.Range, bool) {
	raw, ok := t.Attribute("range")
	if !ok {
		return token.Range{}, false
	}
	return token.ParseRange(raw)
}

// directiveAt consults the source file for the `// kotlin: ...` comment on
// a given line, per spec.md §4.2.2.
func (tr *Translator) directiveAt(line int) (key, value string, ok bool) {
	if tr.Source == nil || line <= 0 {
		return "", "", false
	}
	d, present := tr.Source.Directive(line)
	if !present {
		return "", "", false
	}
	return d.Key, d.Value, true
}

// ignoreDirective reports whether the node's starting line carries a
// `kotlin: ignore` directive.
func (tr *Translator) ignoreDirective(t *rawtree.RawTree) bool {
	rng, ok := nodeRange(t)
	if !ok {
		return false
	}
	key, _, present := tr.directiveAt(rng.Start.Pos.Line)
	return present && key == config.DirectiveIgnore
}

// valueDirective reports whether the node's starting line carries a
// `kotlin: value: <text>` directive and, if so, the literal text to
// substitute for the whole expression.
func (tr *Translator) valueDirective(t *rawtree.RawTree) (string, bool) {
	rng, ok := nodeRange(t)
	if !ok {
		return "", false
	}
	key, value, present := tr.directiveAt(rng.Start.Pos.Line)
	if !present || key != config.DirectiveValue {
		return "", false
	}
	return value, true
}

// insertedStatementsBetween scans the source lines strictly between two
// sibling statements' ranges for `insert:`/`declaration:` directives and
// materializes them as IR statements, per spec.md §4.2.2's interleaving
// rule. fromLine is exclusive (the previous sibling's end line), toLine is
// exclusive (the next sibling's start line).
func (tr *Translator) insertedStatementsBetween(fromLine, toLine int) []ir.Statement {
	if tr.Source == nil {
		return nil
	}
	var out []ir.Statement
	for line := fromLine + 1; line < toLine; line++ {
		key, value, ok := tr.directiveAt(line)
		if !ok {
			continue
		}
		switch key {
		case config.DirectiveInsert:
			out = append(out, &ir.ExpressionStatement{Expr: &ir.LiteralCodeExpression{Text: value}})
		case config.DirectiveDeclaration:
			out = append(out, &ir.ExpressionStatement{Expr: &ir.LiteralDeclarationExpression{Text: value}})
		}
	}
	return out
}

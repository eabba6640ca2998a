// Package rawtree defines the uniform tree the decoder produces from a
// Swift AST dump and the translator consumes: a named node carrying
// order-preserved standalone attributes, keyed attributes, and children.
package rawtree

import (
	"strings"
)

// abbreviations is the fixed table of name-component expansions the dump
// applies to keep node names short. It is applied by NewRawTree, not by
// the decoder, so that the decoder stays a pure tokenizer over the raw
// text and every consumer downstream sees only expanded names.
var abbreviations = map[string]string{
	"Decl":    "Declaration",
	"Expr":    "Expression",
	"Func":    "Function",
	"Ident":   "Identity",
	"Paren":   "Parentheses",
	"Ref":     "Reference",
	"Stmt":    "Statement",
	"Var":     "Variable",
	"Declref": "Declaration Reference",
}

// expandName applies the abbreviation table to every whitespace-separated
// word of a raw node name. A word that is itself a key ("Declref") is
// replaced whole, so "Declref" never becomes "Declarationref".
func expandName(raw string) string {
	words := strings.Fields(raw)
	for i, w := range words {
		if full, ok := abbreviations[w]; ok {
			words[i] = full
			continue
		}
		// Some names glue the abbreviation to a following component with
		// no space, e.g. "VarDecl" never occurs in practice (the dump
		// always has a space); such a word is split at its inner capitals
		// and each component that is a key is expanded. Words with no key
		// component ("Declaration", "Identifier") are left untouched.
		var parts []string
		start := 0
		for j := 1; j < len(w); j++ {
			if w[j] >= 'A' && w[j] <= 'Z' {
				parts = append(parts, w[start:j])
				start = j
			}
		}
		parts = append(parts, w[start:])
		expanded := false
		for j, p := range parts {
			if full, ok := abbreviations[p]; ok {
				parts[j], expanded = full, true
			}
		}
		if expanded {
			words[i] = strings.Join(parts, " ")
		}
	}
	return strings.Join(words, " ")
}

// KeyValue is a single `key=value` attribute, keeping the raw value text;
// callers interpret it as a quoted string, a location token, a declaration
// reference, or an identifier list depending on the key.
type KeyValue struct {
	Key   string
	Value string
}

// RawTree is one node of the decoded AST dump.
type RawTree struct {
	Name                 string
	StandaloneAttributes []string
	KeyValueAttributes   map[string]string
	Children             []*RawTree
}

// NewRawTree constructs a RawTree, expanding the raw node name per the
// abbreviation table and deduplicating key-value attributes by keeping the
// last occurrence of each key, per the decoder's stated invariant.
func NewRawTree(rawName string, standalone []string, keyValues []KeyValue, children []*RawTree) *RawTree {
	kv := make(map[string]string, len(keyValues))
	for _, p := range keyValues {
		kv[p.Key] = p.Value
	}
	return &RawTree{
		Name:                 expandName(rawName),
		StandaloneAttributes: standalone,
		KeyValueAttributes:   kv,
		Children:             children,
	}
}

// Attribute looks up a keyed attribute, reporting whether it was present.
func (t *RawTree) Attribute(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.KeyValueAttributes[key]
	return v, ok
}

// AttributeOr returns the keyed attribute or a default when absent.
func (t *RawTree) AttributeOr(key, def string) string {
	if v, ok := t.Attribute(key); ok {
		return v
	}
	return def
}

// HasStandalone reports whether a bare standalone attribute (e.g. "implicit")
// is present anywhere on the node.
func (t *RawTree) HasStandalone(name string) bool {
	if t == nil {
		return false
	}
	for _, s := range t.StandaloneAttributes {
		if s == name {
			return true
		}
	}
	return false
}

// FirstStandalone returns the first standalone attribute, or "" if none.
func (t *RawTree) FirstStandalone() string {
	if t == nil || len(t.StandaloneAttributes) == 0 {
		return ""
	}
	return t.StandaloneAttributes[0]
}

// Child returns the child at index i, or nil if out of range.
func (t *RawTree) Child(i int) *RawTree {
	if t == nil || i < 0 || i >= len(t.Children) {
		return nil
	}
	return t.Children[i]
}

// LastChild returns the last child, or nil if there are none.
func (t *RawTree) LastChild() *RawTree {
	if t == nil || len(t.Children) == 0 {
		return nil
	}
	return t.Children[len(t.Children)-1]
}

// ChildNamed returns the first child whose Name equals name.
func (t *RawTree) ChildNamed(name string) *RawTree {
	if t == nil {
		return nil
	}
	for _, c := range t.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every child whose Name equals name, in order.
func (t *RawTree) ChildrenNamed(name string) []*RawTree {
	if t == nil {
		return nil
	}
	var out []*RawTree
	for _, c := range t.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// String renders the tree back into dump-like S-expression text. It is not
// guaranteed to byte-for-byte match the original dump (quoting and spacing
// choices are the printer's own: standalone attributes and key values are
// always double-quoted), but it is a stable canonical form: re-decoding
// String() output and printing it again always produces the same text,
// which is the round-trip property the decoder is verified against.
func (t *RawTree) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *RawTree) write(b *strings.Builder) {
	if t == nil {
		b.WriteString("()")
		return
	}
	b.WriteByte('(')
	b.WriteString(t.Name)
	for _, s := range t.StandaloneAttributes {
		b.WriteByte(' ')
		b.WriteString(quoteValue(s))
	}
	for _, k := range t.orderedKeys() {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(quoteValue(t.KeyValueAttributes[k]))
	}
	for _, c := range t.Children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteByte(')')
}

// quoteValue double-quotes s with the two escapes the decoder undoes.
func quoteValue(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

// orderedKeys returns key-value attribute keys in a stable (sorted) order
// for printing. The decoder does not preserve key insertion order (the
// spec only requires standalone attributes and children keep theirs), so
// sorting keeps String() deterministic across runs.
func (t *RawTree) orderedKeys() []string {
	keys := make([]string, 0, len(t.KeyValueAttributes))
	for k := range t.KeyValueAttributes {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

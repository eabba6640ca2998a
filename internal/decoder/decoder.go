// Package decoder implements the Decoder component of spec.md §4.1: a
// cursor over the AST dump text that tokenizes parentheses, identifiers,
// quoted strings, keyed attributes, source-location tokens, and
// declaration-reference tokens, assembling them into a rawtree.RawTree.
package decoder

import (
	"strings"

	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/rawtree"
	"github.com/funvibe/swiftkt/internal/token"
)

// Decoder is a byte cursor over the dump text, mirroring the teacher
// lexer's readChar/peekChar idiom but exposing the higher-level read
// operations spec.md §4.1 enumerates instead of single-character tokens.
type Decoder struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

func New(input string) *Decoder {
	d := &Decoder{input: input, line: 1, column: 0}
	d.readChar()
	return d
}

func (d *Decoder) readChar() {
	if d.ch == '\n' {
		d.line++
		d.column = 0
	}
	if d.readPosition >= len(d.input) {
		d.ch = 0
	} else {
		d.ch = d.input[d.readPosition]
	}
	d.position = d.readPosition
	d.readPosition++
	d.column++
}

func (d *Decoder) peekChar() byte {
	if d.readPosition >= len(d.input) {
		return 0
	}
	return d.input[d.readPosition]
}

func (d *Decoder) pos() token.Pos { return token.Pos{Line: d.line, Column: d.column} }

func (d *Decoder) skipWhitespace() {
	for d.ch == ' ' || d.ch == '\t' || d.ch == '\n' || d.ch == '\r' {
		d.readChar()
	}
}

func (d *Decoder) atEnd() bool { return d.ch == 0 }

// fail raises an unrecoverable decode error. Decode recovers it and turns
// it into a returned error so Decode never panics across its own API
// boundary.
func (d *Decoder) fail(msg string) {
	panic(&diagnostics.DiagnosticError{
		Code:     diagnostics.ErrMalformedDump,
		Phase:    diagnostics.PhaseDecode,
		NodeName: "<dump>",
		Pos:      d.pos(),
		Args:     []interface{}{msg},
	})
}

// CanReadOpenParen reports whether the next non-whitespace token is '('.
func (d *Decoder) CanReadOpenParen() bool {
	save := *d
	d.skipWhitespace()
	ok := d.ch == '('
	*d = save
	return ok
}

// CanReadCloseParen reports whether the next non-whitespace token is ')'.
func (d *Decoder) CanReadCloseParen() bool {
	save := *d
	d.skipWhitespace()
	ok := d.ch == ')'
	*d = save
	return ok
}

// ReadOpenParen consumes a '(' token.
func (d *Decoder) ReadOpenParen() {
	d.skipWhitespace()
	if d.ch != '(' {
		d.fail("expected '('")
	}
	d.readChar()
}

// ReadCloseParen consumes a ')' token.
func (d *Decoder) ReadCloseParen() {
	d.skipWhitespace()
	if d.ch != ')' {
		d.fail("expected ')'")
	}
	d.readChar()
}

func isIdentChar(ch byte) bool {
	return ch != 0 && ch != '(' && ch != ')' && ch != '"' && ch != '=' &&
		ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r'
}

// ReadIdentifier reads a bare identifier: the node name, or a standalone
// keyword-like attribute, terminated by whitespace or a delimiter.
func (d *Decoder) ReadIdentifier() string {
	d.skipWhitespace()
	start := d.position
	for isIdentChar(d.ch) {
		d.readChar()
	}
	return d.input[start:d.position]
}

// ReadDoubleQuotedString reads a "..." string, honoring \" escapes and
// preserving embedded newlines verbatim. Returns the inner content with
// escapes collapsed (so callers see the literal text the dump meant),
// matching spec.md §4.1's "preserves their inner content verbatim".
func (d *Decoder) ReadDoubleQuotedString() string {
	d.skipWhitespace()
	if d.ch != '"' {
		d.fail("expected '\"'")
	}
	d.readChar() // consume opening quote
	var b strings.Builder
	for {
		if d.atEnd() {
			d.fail("unterminated quoted string")
		}
		if d.ch == '\\' && d.peekChar() == '"' {
			b.WriteByte('"')
			d.readChar()
			d.readChar()
			continue
		}
		if d.ch == '\\' && d.peekChar() == '\\' {
			b.WriteByte('\\')
			d.readChar()
			d.readChar()
			continue
		}
		if d.ch == '"' {
			d.readChar()
			break
		}
		b.WriteByte(d.ch)
		d.readChar()
	}
	return b.String()
}

// ReadKey reads the "key" portion of a `key=value` attribute up to (but
// not including) the '=', returning ok=false if the upcoming token has no
// '=' (i.e. it is a standalone attribute, not a keyed one).
func (d *Decoder) ReadKey() (string, bool) {
	save := *d
	d.skipWhitespace()
	start := d.position
	for isIdentChar(d.ch) {
		d.readChar()
	}
	key := d.input[start:d.position]
	if d.ch == '=' && key != "" {
		d.readChar() // consume '='
		return key, true
	}
	*d = save
	return "", false
}

// ReadStandaloneAttribute reads a bare identifier attribute, e.g. `implicit`
// or `negative`, that is not followed by '='.
func (d *Decoder) ReadStandaloneAttribute() string {
	return d.ReadIdentifier()
}

// readRawValue reads the value half of a `key=value` pair: a quoted
// string, or an unquoted run of non-whitespace/non-paren characters
// (covering location tokens, source ranges, declaration-reference tokens, and
// identifier lists, which are disambiguated by the caller based on the
// key name rather than by the decoder itself).
func (d *Decoder) readRawValue() string {
	d.skipWhitespace()
	if d.ch == '"' {
		return d.ReadDoubleQuotedString()
	}
	start := d.position
	depth := 0
	for {
		if d.ch == 0 {
			break
		}
		if d.ch == '(' {
			depth++
		} else if d.ch == ')' {
			if depth == 0 {
				break
			}
			depth--
		} else if (d.ch == ' ' || d.ch == '\n' || d.ch == '\t') && depth == 0 {
			// A source range "Foo.swift:1:1 - line:1:14" keeps its " - ".
			if strings.HasPrefix(d.input[d.position:], " - ") {
				d.readChar()
				d.readChar()
				d.readChar()
				continue
			}
			// An identifier list value like "a, b, c" embeds single
			// spaces after the comma; only a space NOT preceded by a
			// comma ends the token.
			if d.position > start && d.input[d.position-1] == ',' {
				d.readChar()
				continue
			}
			break
		}
		d.readChar()
	}
	return d.input[start:d.position]
}

// ReadLocation reads a `key=file.swift:LINE:COL` value and parses it into
// a token.Location.
func (d *Decoder) ReadLocation() (token.Location, bool) {
	raw := d.readRawValue()
	return token.ParseLocation(raw)
}

// ReadDeclarationLocation reads a `key=Module.Type.member@file:line:col`
// value and parses it into a token.DeclRef.
func (d *Decoder) ReadDeclarationLocation() (token.DeclRef, bool) {
	raw := d.readRawValue()
	return token.ParseDeclRef(raw)
}

// ReadIdentifierList reads a `key=a, b, c` value split on ", ".
func (d *Decoder) ReadIdentifierList() []string {
	raw := d.readRawValue()
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ", ")
}

// ReadRawAttributeValue exposes readRawValue for callers (the Translator)
// that need the raw, undifferentiated value text of a key (e.g. `range=`,
// `type=`) without committing to one of the specialized parses above.
func (d *Decoder) ReadRawAttributeValue() string { return d.readRawValue() }

// Decode parses the complete dump text into a RawTree, per spec.md §4.1.
// It returns a *diagnostics.DiagnosticError (ErrMalformedDump) when
// parentheses are unbalanced or another structural rule is violated.
func Decode(text string) (tree *rawtree.RawTree, err error) {
	d := New(text)
	defer func() {
		if r := recover(); r != nil {
			if de, ok := r.(*diagnostics.DiagnosticError); ok {
				err = de
				return
			}
			panic(r)
		}
	}()
	d.skipWhitespace()
	if d.atEnd() {
		return nil, &diagnostics.DiagnosticError{
			Code: diagnostics.ErrMalformedDump, Phase: diagnostics.PhaseDecode,
			NodeName: "<dump>", Args: []interface{}{"empty dump"},
		}
	}
	tree = d.readNode()
	d.skipWhitespace()
	if !d.atEnd() {
		d.fail("trailing content after top-level node")
	}
	return tree, nil
}

// readNode parses one `( <ident>+ <attr>* <child>* )` node. Attribute vs.
// child disambiguation: after the name, each subsequent token is a nested
// node (if it opens with '('), a key=value pair (if ReadKey succeeds), or
// a standalone attribute (bare identifier or quoted string) otherwise.
func (d *Decoder) readNode() *rawtree.RawTree {
	d.ReadOpenParen()
	name := d.ReadIdentifier()
	if name == "" {
		d.fail("expected node name after '('")
	}
	// A node name may span several words ("Import Declaration"); further
	// bare words starting with an upper-case letter belong to it, while
	// lower-case bare words ("implicit", "let") are standalone attributes.
	for {
		save := *d
		d.skipWhitespace()
		if d.ch < 'A' || d.ch > 'Z' {
			*d = save
			break
		}
		if _, isKey := d.ReadKey(); isKey {
			*d = save
			break
		}
		name += " " + d.ReadIdentifier()
	}

	var standalone []string
	var keyValues []rawtree.KeyValue
	var children []*rawtree.RawTree

	for !d.CanReadCloseParen() {
		if d.atEnd() {
			d.fail("unbalanced parentheses: unterminated node " + name)
		}
		if d.CanReadOpenParen() {
			children = append(children, d.readNode())
			continue
		}
		d.skipWhitespace()
		if d.ch == '"' {
			standalone = append(standalone, d.ReadDoubleQuotedString())
			continue
		}
		if key, ok := d.ReadKey(); ok {
			value := d.readKeyedValue(key)
			keyValues = append(keyValues, rawtree.KeyValue{Key: key, Value: value})
			continue
		}
		attr := d.ReadStandaloneAttribute()
		if attr == "" {
			d.fail("unexpected character '" + string(d.ch) + "' in node " + name)
		}
		standalone = append(standalone, attr)
	}
	d.ReadCloseParen()

	return rawtree.NewRawTree(name, standalone, keyValues, children)
}

// readKeyedValue reads the raw value text for a key=value pair. Keys known
// to carry a location, declaration reference, or identifier list are
// still stored as raw text on the RawTree (the translator re-parses them
// on demand via token.ParseLocation etc.) — the decoder's job per
// spec.md §4.1 is tokenizing, not semantic interpretation.
func (d *Decoder) readKeyedValue(key string) string {
	return d.readRawValue()
}

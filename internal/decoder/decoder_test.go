package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSimpleNode(t *testing.T) {
	tree, err := Decode(`(Import Declaration range=Foo.swift:1:1 - line:1:14 "Foundation")`)
	require.NoError(t, err)
	assert.Equal(t, "Import Declaration", tree.Name)
	assert.Equal(t, []string{"Foundation"}, tree.StandaloneAttributes)
	v, ok := tree.Attribute("range")
	require.True(t, ok)
	assert.Equal(t, "Foo.swift:1:1 - line:1:14", v)
}

func TestDecodeAbbreviationExpansion(t *testing.T) {
	tree, err := Decode(`(Call Expr type="Int" (Declref Expr type="() -> Int"))`)
	require.NoError(t, err)
	assert.Equal(t, "Call Expression", tree.Name)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "Declaration Reference Expression", tree.Children[0].Name)
}

func TestDecodeNestedChildren(t *testing.T) {
	tree, err := Decode(`(Brace Statement (Return Statement (Integer Literal type="Int" value=3)))`)
	require.NoError(t, err)
	assert.Equal(t, "Brace Statement", tree.Name)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "Return Statement", tree.Children[0].Name)
	assert.Equal(t, "Integer Literal", tree.Children[0].Children[0].Name)
	assert.Equal(t, "3", tree.Children[0].Children[0].AttributeOr("value", ""))
}

func TestDecodeQuotedStringWithEscapedQuote(t *testing.T) {
	tree, err := Decode(`(String Literal value="say \"hi\"")`)
	require.NoError(t, err)
	assert.Equal(t, `say "hi"`, tree.AttributeOr("value", ""))
}

func TestDecodeUnbalancedParensFails(t *testing.T) {
	_, err := Decode(`(Import Declaration "Foundation"`)
	require.Error(t, err)
}

func TestDecodeEmptyDumpFails(t *testing.T) {
	_, err := Decode("   ")
	require.Error(t, err)
}

func TestDecodeIdentifierListAttribute(t *testing.T) {
	tree, err := Decode(`(Class Declaration inherits=Animal, Equatable)`)
	require.NoError(t, err)
	d := New(tree.AttributeOr("inherits", ""))
	list := d.ReadIdentifierList()
	assert.Equal(t, []string{"Animal", "Equatable"}, list)
}

func TestRawTreeStringRoundTrips(t *testing.T) {
	tree, err := Decode(`(Func Decl "foo" (Parameter List))`)
	require.NoError(t, err)
	printed := tree.String()
	reDecoded, err := Decode(printed)
	require.NoError(t, err)
	assert.Equal(t, printed, reDecoded.String())
}

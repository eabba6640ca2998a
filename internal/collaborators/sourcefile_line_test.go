package collaborators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineSourceFileDirectiveParsesBareKey(t *testing.T) {
	f := NewLineSourceFile("let x = 1 // kotlin: ignore\nlet y = 2")

	d, ok := f.Directive(1)
	require.True(t, ok)
	require.Equal(t, "ignore", d.Key)
	require.Equal(t, "", d.Value)
}

func TestLineSourceFileDirectiveParsesKeySpaceValue(t *testing.T) {
	f := NewLineSourceFile(`let x = 1 // kotlin: value "Foo"`)

	d, ok := f.Directive(1)
	require.True(t, ok)
	require.Equal(t, "value", d.Key)
	require.Equal(t, `"Foo"`, d.Value)
}

func TestLineSourceFileDirectiveRecognizesInsertAndDeclaration(t *testing.T) {
	f := NewLineSourceFile("a() // kotlin: insert before\nb() // kotlin: declaration Foo")

	insert, ok := f.Directive(1)
	require.True(t, ok)
	require.Equal(t, "insert", insert.Key)
	require.Equal(t, "before", insert.Value)

	decl, ok := f.Directive(2)
	require.True(t, ok)
	require.Equal(t, "declaration", decl.Key)
	require.Equal(t, "Foo", decl.Value)
}

func TestLineSourceFileDirectiveMissingOnPlainComment(t *testing.T) {
	f := NewLineSourceFile("let x = 1 // just a comment")

	_, ok := f.Directive(1)
	require.False(t, ok)
}

func TestLineSourceFileDirectiveMissingWhenNoComment(t *testing.T) {
	f := NewLineSourceFile("let x = 1")

	_, ok := f.Directive(1)
	require.False(t, ok)
}

func TestLineSourceFileDirectiveOutOfRangeLine(t *testing.T) {
	f := NewLineSourceFile("let x = 1")

	_, ok := f.Directive(0)
	require.False(t, ok)

	_, ok = f.Directive(99)
	require.False(t, ok)
}

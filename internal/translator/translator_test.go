package translator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/swiftkt/internal/decoder"
	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/ir"
)

func TestTranslateStatementImportDeclaration(t *testing.T) {
	tree, err := decoder.Decode(`(Import Declaration range=Foo.swift:1:1 - line:1:14 "Foundation")`)
	require.NoError(t, err)

	tr := New(diagnostics.NewSink(), nil, nil, nil)
	stmt := tr.TranslateStatement(tree)

	imp, ok := stmt.(*ir.ImportDeclaration)
	require.True(t, ok)
	require.Equal(t, "Foundation", imp.Name)
}

func TestTranslateStatementReturnWithIntLiteral(t *testing.T) {
	tree, err := decoder.Decode(`(Return Statement (Integer Literal Expression type="Int" value=42))`)
	require.NoError(t, err)

	tr := New(diagnostics.NewSink(), nil, nil, nil)
	stmt := tr.TranslateStatement(tree)

	ret, ok := stmt.(*ir.ReturnStatement)
	require.True(t, ok)
	lit, ok := ret.Expr.(*ir.IntLiteral)
	require.True(t, ok)
	require.Equal(t, int64(42), lit.Value)
}

func TestTranslateStatementReturnWithoutExpression(t *testing.T) {
	tree, err := decoder.Decode(`(Return Statement)`)
	require.NoError(t, err)

	tr := New(diagnostics.NewSink(), nil, nil, nil)
	stmt := tr.TranslateStatement(tree).(*ir.ReturnStatement)
	require.Nil(t, stmt.Expr)
}

func TestTranslateStatementUnknownNodeReportsErrorAndSentinel(t *testing.T) {
	tree, err := decoder.Decode(`(Completely Unrecognized Node)`)
	require.NoError(t, err)

	sink := diagnostics.NewSink()
	tr := New(sink, nil, nil, nil)
	stmt := tr.TranslateStatement(tree)

	_, ok := stmt.(*ir.ErrorStatement)
	require.True(t, ok)
	require.Len(t, sink.Errors(), 1)
	require.Equal(t, diagnostics.ErrUnexpectedASTStructure, sink.Errors()[0].Code)
}

func TestTranslateFileFlattensTopLevelChildren(t *testing.T) {
	tree, err := decoder.Decode(`(Source File
		(Import Declaration "Foundation")
		(Import Declaration "UIKit"))`)
	require.NoError(t, err)

	tr := New(diagnostics.NewSink(), nil, nil, nil)
	stmts := tr.TranslateFile(tree)

	require.Len(t, stmts, 2)
	require.Equal(t, "Foundation", stmts[0].(*ir.ImportDeclaration).Name)
	require.Equal(t, "UIKit", stmts[1].(*ir.ImportDeclaration).Name)
}

func TestTranslateFileWithNilRootReturnsNil(t *testing.T) {
	tr := New(diagnostics.NewSink(), nil, nil, nil)
	require.Nil(t, tr.TranslateFile(nil))
}

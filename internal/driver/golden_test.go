package driver

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/swiftkt/internal/collaborators"
)

// End-to-end dump -> Kotlin golden tests. Each fixture is a minimal
// RawTree-shaped dump exercising one translation: struct -> data class,
// a function body returning an int literal, and an import.

func TestGoldenStructDeclarationBecomesDataClass(t *testing.T) {
	dump := `(Source File
		(Struct Declaration range=Point.swift:1:1 - line:4:1 "Point"
			(Variable Declaration range=Point.swift:2:5 - line:2:18 "x" type="Int")
			(Variable Declaration range=Point.swift:3:5 - line:3:18 "y" type="Int")))`
	assertGolden(t, "struct_becomes_data_class", dump)
}

func TestGoldenReturnStatementWithIntLiteral(t *testing.T) {
	dump := `(Source File
		(Func Decl range=Foo.swift:1:1 - line:3:1 "add(_:_:)"
			(Brace Statement
				(Return Statement (Integer Literal Expression type="Int" value=42)))))`
	assertGolden(t, "return_int_literal", dump)
}

func TestGoldenImportDeclaration(t *testing.T) {
	dump := `(Source File
		(Import Declaration range=Foo.swift:1:1 - line:1:14 "Foundation"))`
	assertGolden(t, "import_declaration", dump)
}

func assertGolden(t *testing.T, name, dump string) {
	t.Helper()
	d := newTestDriver()
	source := collaborators.NewLineSourceFile(dump)

	kotlin, sink := d.TranslateFile(name+".swiftASTDump", dump, source)

	require.Empty(t, sink.Errors())
	snaps.MatchSnapshot(t, name, kotlin)
}

// Package config holds the fixed lookup tables spec.md treats as part of
// the translation rules rather than user configuration: recognized
// artifact-staging extensions, numeric-literal constructor names, and
// comment-directive keywords.
package config

// SourceFileExtensions are the file extensions used for artifact staging,
// per spec.md §6.
var SourceFileExtensions = []string{
	".swiftASTDump",
	".swiftAST",
	".gryphonASTRaw",
	".gryphonAST",
	".kt",
	".swift",
}

// BuiltinIntegerCtor, BuiltinFloatCtor, BuiltinBooleanCtor, and
// NilLiteralCtor are the `arg_labels` values on a Call Expression that
// mark it as a numeric/boolean/nil literal construction, per spec.md
// §4.2's "Numeric literal detection" rule.
const (
	BuiltinIntegerCtor = "_builtinIntegerLiteral:"
	BuiltinFloatCtor   = "_builtinFloatLiteral:"
	BuiltinBooleanCtor = "_builtinBooleanLiteral:"
	NilLiteralCtor     = "nilLiteral:"
)

// Comment directive keys recognized in trailing `// kotlin: key value`
// source comments, per spec.md §4.2.2.
const (
	DirectiveIgnore      = "ignore"
	DirectiveValue       = "value"
	DirectiveInsert      = "insert"
	DirectiveDeclaration = "declaration"
)

// DirectivePrefix is the fixed prefix SourceFile comments must carry to be
// recognized as a directive at all (`// kotlin: ...`).
const DirectivePrefix = "kotlin"

// MaxLineWidth is the hard line-wrap column for function signatures and
// call expressions, per spec.md §6 and §8.5.
const MaxLineWidth = 100

// IndentUnit is the string appended/dropped per emitter indentation level.
const IndentUnit = "\t"

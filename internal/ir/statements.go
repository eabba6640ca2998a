package ir

func (*ImportDeclaration) statementNode()      {}
func (*TypealiasDeclaration) statementNode()   {}
func (*ClassDeclaration) statementNode()       {}
func (*StructDeclaration) statementNode()      {}
func (*CompanionObject) statementNode()        {}
func (*EnumDeclaration) statementNode()        {}
func (*ProtocolDeclaration) statementNode()    {}
func (*ExtensionDeclaration) statementNode()   {}
func (*FunctionDeclaration) statementNode()    {}
func (*VariableDeclaration) statementNode()    {}
func (*ForEachStatement) statementNode()       {}
func (*WhileStatement) statementNode()         {}
func (*IfStatement) statementNode()            {}
func (*SwitchStatement) statementNode()        {}
func (*DeferStatement) statementNode()         {}
func (*ThrowStatement) statementNode()         {}
func (*ReturnStatement) statementNode()        {}
func (*BreakStatement) statementNode()         {}
func (*ContinueStatement) statementNode()      {}
func (*AssignmentStatement) statementNode()    {}
func (*ExpressionStatement) statementNode()    {}
func (*ErrorStatement) statementNode()         {}

func (*ImportDeclaration) Kind() string      { return "importDeclaration" }
func (*TypealiasDeclaration) Kind() string   { return "typealiasDeclaration" }
func (*ClassDeclaration) Kind() string       { return "classDeclaration" }
func (*StructDeclaration) Kind() string      { return "structDeclaration" }
func (*CompanionObject) Kind() string        { return "companionObject" }
func (*EnumDeclaration) Kind() string        { return "enumDeclaration" }
func (*ProtocolDeclaration) Kind() string    { return "protocolDeclaration" }
func (*ExtensionDeclaration) Kind() string   { return "extensionDeclaration" }
func (*FunctionDeclaration) Kind() string    { return "functionDeclaration" }
func (*VariableDeclaration) Kind() string    { return "variableDeclaration" }
func (*ForEachStatement) Kind() string       { return "forEachStatement" }
func (*WhileStatement) Kind() string         { return "whileStatement" }
func (*IfStatement) Kind() string            { return "ifStatement" }
func (*SwitchStatement) Kind() string        { return "switchStatement" }
func (*DeferStatement) Kind() string         { return "deferStatement" }
func (*ThrowStatement) Kind() string         { return "throwStatement" }
func (*ReturnStatement) Kind() string        { return "returnStatement" }
func (*BreakStatement) Kind() string         { return "breakStatement" }
func (*ContinueStatement) Kind() string      { return "continueStatement" }
func (*AssignmentStatement) Kind() string    { return "assignmentStatement" }
func (*ExpressionStatement) Kind() string    { return "expression" }
func (*ErrorStatement) Kind() string         { return "error" }

// ImportDeclaration: `import Foundation`.
type ImportDeclaration struct {
	Name string
}

// TypealiasDeclaration: `typealias Money = Float`.
type TypealiasDeclaration struct {
	Identifier string
	Type       string
	IsImplicit bool
}

// ClassDeclaration: `class Foo: Bar, Baz { ... }`.
type ClassDeclaration struct {
	Name     string
	Inherits []string
	Members  []Statement
}

// StructDeclaration: `struct Foo: Bar { ... }`.
type StructDeclaration struct {
	Name     string
	Inherits []string
	Members  []Statement
}

// CompanionObject holds an extension's or enum's static members, emitted
// as Kotlin's `companion object { ... }`.
type CompanionObject struct {
	Members []Statement
}

// EnumDeclaration: `enum Shape { case circle; case rect(w: Int, h: Int) }`.
type EnumDeclaration struct {
	Access     string
	Name       string
	Inherits   []string
	Elements   []EnumElement
	Members    []Statement
	IsImplicit bool
}

// ProtocolDeclaration: `protocol Shape { ... }`.
type ProtocolDeclaration struct {
	Name    string
	Members []Statement
}

// ExtensionDeclaration: `extension Foo { ... }`.
type ExtensionDeclaration struct {
	Type    string
	Members []Statement
}

// FunctionDeclaration wraps a FunctionDecl record as a statement.
type FunctionDeclaration struct {
	Function FunctionDecl
}

// VariableDeclaration wraps a VariableDecl record as a statement.
type VariableDeclaration struct {
	Variable VariableDecl
}

// ForEachStatement: `for x in xs { ... }`.
type ForEachStatement struct {
	Collection Expression
	Variable   string
	Body       []Statement
}

// WhileStatement: `while cond { ... }`.
type WhileStatement struct {
	Expr Expression
	Body []Statement
}

// IfStatement wraps an IfStmt record as a statement.
type IfStatement struct {
	If IfStmt
}

// SwitchStatement: `switch x { case ...: ...; default: ... }`.
type SwitchStatement struct {
	ConvertsToExpression bool
	Expr                 Expression
	Cases                []SwitchCase
}

// DeferStatement: `defer { ... }`.
type DeferStatement struct {
	Body []Statement
}

// ThrowStatement: `throw err`.
type ThrowStatement struct {
	Expr Expression
}

// ReturnStatement: `return` or `return expr`. Expr is nil for a bare return.
type ReturnStatement struct {
	Expr Expression
}

// BreakStatement: `break`.
type BreakStatement struct{}

// ContinueStatement: `continue`.
type ContinueStatement struct{}

// AssignmentStatement: `lhs = rhs`.
type AssignmentStatement struct {
	LHS Expression
	RHS Expression
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Expr Expression
}

// ErrorStatement is the sentinel substituted for a RawTree whose shape the
// Translator could not make sense of; the Emitter renders it as the
// sentinel token "<<Error>>".
type ErrorStatement struct {
	Reason string
}

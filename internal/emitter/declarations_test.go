package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/ir"
)

func TestEmitStructDeclarationPromotesFieldsToDataClassParams(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	v := &ir.StructDeclaration{
		Name: "Point",
		Members: []ir.Statement{
			&ir.VariableDeclaration{Variable: ir.VariableDecl{Identifier: "x", TypeName: "Int", IsLet: true}},
			&ir.VariableDeclaration{Variable: ir.VariableDecl{Identifier: "y", TypeName: "Int", IsLet: true}},
		},
	}
	out := e.EmitStatement(v, "")
	require.Equal(t, "data class Point(val x: Int, val y: Int)\n", out)
}

func TestEmitEnumDeclarationAsEnumClass(t *testing.T) {
	enums := newEnumRegistryWithEnumClass("Direction")
	e := New(diagnostics.NewSink(), enums, nil)
	v := &ir.EnumDeclaration{
		Name: "Direction",
		Elements: []ir.EnumElement{
			{Name: "north"}, {Name: "south"},
		},
	}
	out := e.EmitStatement(v, "")
	require.Equal(t, "enum class Direction { North, South }\n", out)
}

func TestEmitEnumDeclarationAsSealedClassWithAssociatedValues(t *testing.T) {
	enums := newEnumRegistryWithSealed("Shape")
	e := New(diagnostics.NewSink(), enums, nil)
	v := &ir.EnumDeclaration{
		Name: "Shape",
		Elements: []ir.EnumElement{
			{Name: "circle", AssociatedValues: []ir.LabeledType{{Label: "radius", Type: "Double"}}},
			{Name: "square"},
		},
	}
	out := e.EmitStatement(v, "")
	require.Contains(t, out, "sealed class Shape {")
	require.Contains(t, out, "class Circle(val radius: Double): Shape()")
	require.Contains(t, out, "class Square: Shape()")
}

func TestEmitFunctionDeclarationOmitsUnitReturnType(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	fn := ir.FunctionDecl{Prefix: "greet", ReturnType: "()"}
	out := e.emitFunctionDeclaration("", fn)
	require.Contains(t, out, "fun greet() {")
	require.NotContains(t, out, ": Unit")
}

func TestEmitVariableDeclarationWithCustomGetter(t *testing.T) {
	e := New(diagnostics.NewSink(), nil, nil)
	v := ir.VariableDecl{
		Identifier: "area",
		TypeName:   "Double",
		Getter: &ir.FunctionDecl{Statements: []ir.Statement{
			&ir.ReturnStatement{Expr: &ir.IntLiteral{Value: 0}},
		}},
	}
	out := e.emitVariableDeclaration("", v)
	require.Contains(t, out, "val area: Double")
	require.Contains(t, out, "get() {")
	require.Contains(t, out, "return 0")
}

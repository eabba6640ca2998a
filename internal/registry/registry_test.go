package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumRegistryLookupUnknownByDefault(t *testing.T) {
	r := NewEnumRegistry()
	require.Equal(t, EnumKindUnknown, r.Lookup("Direction"))
}

func TestEnumRegistryRegisterSealedAndEnumClass(t *testing.T) {
	r := NewEnumRegistry()
	r.RegisterSealed("Shape")
	r.RegisterEnumClass("Direction")

	require.Equal(t, EnumKindSealed, r.Lookup("Shape"))
	require.Equal(t, EnumKindEnumClass, r.Lookup("Direction"))
	require.Equal(t, EnumKindUnknown, r.Lookup("Nope"))
}

func TestFunctionRegistryLookupMiss(t *testing.T) {
	r := NewFunctionRegistry()
	_, ok := r.Lookup("count", "Array<Int>")
	require.False(t, ok)
}

func TestFunctionRegistryRegisterAndLookup(t *testing.T) {
	r := NewFunctionRegistry()
	r.Register("count", "Array<Int>", FunctionTranslation{Prefix: "size", ParameterLabels: []string{""}})

	translation, ok := r.Lookup("count", "Array<Int>")
	require.True(t, ok)
	require.Equal(t, "size", translation.Prefix)
	require.Equal(t, []string{""}, translation.ParameterLabels)

	_, ok = r.Lookup("count", "Array<String>")
	require.False(t, ok, "distinct type should not match the registered signature")
}

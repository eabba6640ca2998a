package emitter

import "github.com/funvibe/swiftkt/internal/registry"

func newEnumRegistryWithSealed(names ...string) *registry.EnumRegistry {
	r := registry.NewEnumRegistry()
	for _, n := range names {
		r.RegisterSealed(n)
	}
	return r
}

func newEnumRegistryWithEnumClass(names ...string) *registry.EnumRegistry {
	r := registry.NewEnumRegistry()
	for _, n := range names {
		r.RegisterEnumClass(n)
	}
	return r
}

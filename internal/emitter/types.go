package emitter

import "strings"

// primitiveTypes is the fixed Swift→Kotlin primitive rewriting table of
// spec.md §4.4.
var primitiveTypes = map[string]string{
	"Bool":    "Boolean",
	"Error":   "Exception",
	"UInt8":   "UByte",
	"UInt16":  "UShort",
	"UInt32":  "UInt",
	"UInt64":  "ULong",
	"Int8":    "Byte",
	"Int16":   "Short",
	"Int32":   "Int",
	"Int64":   "Long",
	"Float32": "Float",
	"Float64": "Double",
	"Character": "Char",
	"()":      "Unit",
}

// kotlinType recursively rewrites a cleaned-up Swift type string into its
// Kotlin rendering, per spec.md §4.4: primitive substitution, `[T]` →
// `MutableList<T'>`, `[K: V]` → `MutableMap<K', V'>`, and the
// `ArrayReference<T>`/`DictionaryReference<K,V>` shims mapping to the same
// collection types. Mapping applies recursively to type arguments.
func kotlinType(t string) string {
	t = strings.TrimSpace(t)

	if mapped, ok := primitiveTypes[t]; ok {
		return mapped
	}

	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		inner := t[1 : len(t)-1]
		if key, value, ok := splitDictInner(inner); ok {
			return "MutableMap<" + kotlinType(key) + ", " + kotlinType(value) + ">"
		}
		return "MutableList<" + kotlinType(inner) + ">"
	}

	if args, ok := genericArgs(t, "ArrayReference"); ok && len(args) == 1 {
		return "MutableList<" + kotlinType(args[0]) + ">"
	}
	if args, ok := genericArgs(t, "DictionaryReference"); ok && len(args) == 2 {
		return "MutableMap<" + kotlinType(args[0]) + ", " + kotlinType(args[1]) + ">"
	}

	// Optional types: Swift "T?" -> Kotlin "T?", rewriting the wrapped type.
	if strings.HasSuffix(t, "?") {
		return kotlinType(strings.TrimSuffix(t, "?")) + "?"
	}

	return t
}

// splitDictInner splits a `[K: V]` inner string on the top-level colon,
// ignoring colons nested inside brackets/parens/angle-brackets.
func splitDictInner(inner string) (key, value string, ok bool) {
	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[', '(', '<':
			depth++
		case ']', ')', '>':
			depth--
		case ':':
			if depth == 0 {
				return strings.TrimSpace(inner[:i]), strings.TrimSpace(inner[i+1:]), true
			}
		}
	}
	return "", "", false
}

// genericArgs recognizes "Name<A, B>" and returns its comma-separated type
// arguments.
func genericArgs(t, name string) ([]string, bool) {
	prefix := name + "<"
	if !strings.HasPrefix(t, prefix) || !strings.HasSuffix(t, ">") {
		return nil, false
	}
	inner := t[len(prefix) : len(t)-1]
	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	return args, true
}

// capitalize upper-cases the first rune, used for enum element and type
// name rendering.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// isRangeLikeExpr recognizes the textual markers spec.md §4.4 uses to
// detect a switch-case expression that should render as a Kotlin range
// test ("in ...") rather than an equality comparison.
func isRangeLikeExpr(rendered string) bool {
	return strings.Contains(rendered, "..") || strings.Contains(rendered, "until") || strings.Contains(rendered, "rangeTo")
}

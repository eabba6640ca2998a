package translator

import (
	"strconv"
	"strings"

	"github.com/funvibe/swiftkt/internal/ir"
)

// cleanUpType implements spec.md §4.2.3: strip leading "@lvalue " prefixes;
// while the remaining string is fully parenthesized and names neither a
// function type nor a tuple, strip the outermost parentheses. Repeating
// both steps until neither applies makes it idempotent per spec.md §8
// testable property 2 ("((Int))" and "(Int)" both clean to "Int").
func cleanUpType(t string) string {
	for {
		for strings.HasPrefix(t, "@lvalue ") {
			t = strings.TrimPrefix(t, "@lvalue ")
		}
		if !strings.HasPrefix(t, "(") || !strings.HasSuffix(t, ")") {
			return t
		}
		inner := t[1 : len(t)-1]
		if strings.Contains(inner, "->") || strings.Contains(inner, ",") {
			return t
		}
		t = inner
	}
}

// parseFunctionInterfaceType splits "interface type" on " -> " into the
// parameter-list string and the return type, per spec.md §4.2's Function
// Declaration dispatch rule. Only the last " -> " separates params from
// return type, since a parameter itself may be a function type containing
// its own arrow.
func parseFunctionInterfaceType(interfaceType string) (params, returnType string) {
	idx := strings.LastIndex(interfaceType, " -> ")
	if idx < 0 {
		return interfaceType, ""
	}
	return interfaceType[:idx], cleanUpType(interfaceType[idx+len(" -> "):])
}

// parseEnumCaseInterfaceType decodes an Enum Element Declaration's
// "interface type" into associated-value labels and types, per spec.md
// §4.2: split on " -> ", trim the outer parens from the parameter half,
// split on ", ".
func parseEnumCaseInterfaceType(interfaceType string) []ir.LabeledType {
	params, _ := parseFunctionInterfaceType(interfaceType)
	params = strings.TrimSpace(params)
	if strings.HasPrefix(params, "(") && strings.HasSuffix(params, ")") {
		params = params[1 : len(params)-1]
	}
	params = strings.TrimSpace(params)
	if params == "" {
		return nil
	}
	var out []ir.LabeledType
	for _, piece := range splitTopLevel(params, ", ") {
		label, typ := splitLabelAndType(piece)
		out = append(out, ir.LabeledType{Label: label, Type: cleanUpType(typ)})
	}
	return out
}

// splitLabelAndType splits "label: Type" into (label, Type); a piece with
// no colon is an unlabeled type, "" label.
func splitLabelAndType(piece string) (label, typ string) {
	idx := strings.Index(piece, ":")
	if idx < 0 {
		return "", strings.TrimSpace(piece)
	}
	return strings.TrimSpace(piece[:idx]), strings.TrimSpace(piece[idx+1:])
}

// splitTopLevel splits s on sep, ignoring occurrences of sep nested inside
// parentheses — a tuple-typed parameter like "(Int, Int)" must not be cut
// at its inner comma.
func splitTopLevel(s, sep string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i+len(sep) <= len(s); i++ {
		switch s[i] {
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			if s[i] != '>' || i == 0 || s[i-1] != '-' { // the '>' of "->" closes nothing
				depth--
			}
		}
		if depth == 0 && s[i:i+len(sep)] == sep {
			out = append(out, s[start:i])
			i += len(sep) - 1
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// decodeTupleShuffleIndices parses the `elements` key of a Tuple Shuffle
// Expression (a comma-separated list of ints) into TupleShuffleIndex values,
// per spec.md §4.2.4: -2 = variadic(len(variadicSources)), -1 = absent,
// n >= 0 = present.
func decodeTupleShuffleIndices(elements string, variadicSources string) []ir.TupleShuffleIndex {
	variadicCount := 0
	if variadicSources != "" {
		variadicCount = len(splitTopLevel(variadicSources, ", "))
	}

	var out []ir.TupleShuffleIndex
	for _, raw := range strings.Fields(strings.ReplaceAll(elements, ",", " ")) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		switch {
		case n == -2:
			out = append(out, ir.TupleShuffleIndex{Kind: ir.ShuffleVariadic, VariadicCount: variadicCount})
		case n == -1:
			out = append(out, ir.TupleShuffleIndex{Kind: ir.ShuffleAbsent})
		default:
			out = append(out, ir.TupleShuffleIndex{Kind: ir.ShufflePresent})
		}
	}
	return out
}

// parseTupleShuffleLabels parses the formal-tuple `type` attribute into the
// callee's declared argument labels, per spec.md §4.2.4: split on ", " and
// take the prefix before ":" (empty for an unlabeled parameter).
func parseTupleShuffleLabels(formalTupleType string) []string {
	t := strings.TrimSpace(formalTupleType)
	t = strings.TrimPrefix(t, "(")
	t = strings.TrimSuffix(t, ")")
	if t == "" {
		return nil
	}
	var labels []string
	for _, piece := range splitTopLevel(t, ", ") {
		label, _ := splitLabelAndType(piece)
		labels = append(labels, label)
	}
	return labels
}

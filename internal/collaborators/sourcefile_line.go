package collaborators

import (
	"strings"

	"github.com/funvibe/swiftkt/internal/config"
)

// LineSourceFile is the fallback SourceFile implementation spec.md §4.2.2
// describes directly: split the source text on newlines, and for a given
// line look for a trailing `// kotlin: key value` comment. It does not
// understand Swift syntax at all, so a `//` inside a string literal on
// the same line is (rarely, but possibly) misread as a comment start —
// the precise tree-sitter-backed implementation in sourcefile_treesitter.go
// avoids that by only considering lines tree-sitter-swift actually marks
// as containing a comment token.
type LineSourceFile struct {
	lines []string
}

func NewLineSourceFile(source string) *LineSourceFile {
	return &LineSourceFile{lines: strings.Split(source, "\n")}
}

func (f *LineSourceFile) Directive(line int) (Directive, bool) {
	if line < 1 || line > len(f.lines) {
		return Directive{}, false
	}
	text := f.lines[line-1]
	idx := strings.Index(text, "//")
	if idx < 0 {
		return Directive{}, false
	}
	comment := strings.TrimSpace(text[idx+2:])
	prefix := config.DirectivePrefix + ":"
	if !strings.HasPrefix(comment, prefix) {
		return Directive{}, false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(comment, prefix))
	return parseDirectiveBody(rest)
}

// parseDirectiveBody splits "key value..." into a Directive, recognizing
// the four keys spec.md §4.2.2 names; any other key is still returned
// (callers decide whether to act on it) so the collaborator stays a thin
// syntactic parser rather than a directive-semantics engine.
func parseDirectiveBody(rest string) (Directive, bool) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Directive{}, false
	}
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) == 2 {
		return Directive{Key: strings.TrimSpace(parts[0]), Value: strings.TrimSpace(parts[1])}, true
	}
	fields := strings.SplitN(rest, " ", 2)
	key := fields[0]
	value := ""
	if len(fields) == 2 {
		value = strings.TrimSpace(fields[1])
	}
	return Directive{Key: key, Value: value}, true
}

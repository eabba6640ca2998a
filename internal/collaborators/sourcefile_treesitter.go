package collaborators

import (
	"strings"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	tree_sitter_swift "github.com/alex-pinkus/tree-sitter-swift/bindings/go"
)

var (
	swiftLanguageOnce sync.Once
	swiftLanguage     *tree_sitter.Language
	swiftParserPool   *sync.Pool
)

func initSwiftLanguage() {
	swiftLanguageOnce.Do(func() {
		swiftLanguage = tree_sitter.NewLanguage(tree_sitter_swift.Language())
		swiftParserPool = &sync.Pool{
			New: func() any {
				p := tree_sitter.NewParser()
				if err := p.SetLanguage(swiftLanguage); err != nil {
					panic(err)
				}
				return p
			},
		}
	})
}

// TreeSitterSourceFile is the precise SourceFile implementation grounded on
// tree-sitter-swift: it parses the source once and indexes every `comment`
// node by the 1-based line it ends on, so Directive only ever considers
// text tree-sitter itself classified as a comment token — unlike
// LineSourceFile it won't misread a `//` inside a string literal.
type TreeSitterSourceFile struct {
	source       []byte
	commentsByLn map[int]string
}

// NewTreeSitterSourceFile parses source with tree-sitter-swift and indexes
// its comment nodes. If parsing fails outright, it degrades to an empty
// index rather than erroring — callers that want the line-based fallback
// should construct LineSourceFile themselves when this returns no comments.
func NewTreeSitterSourceFile(source string) *TreeSitterSourceFile {
	initSwiftLanguage()

	f := &TreeSitterSourceFile{
		source:       []byte(source),
		commentsByLn: make(map[int]string),
	}

	p, _ := swiftParserPool.Get().(*tree_sitter.Parser)
	if p == nil {
		return f
	}
	defer swiftParserPool.Put(p)

	tree := p.Parse(f.source, nil)
	if tree == nil {
		return f
	}
	defer tree.Close()

	walkSwift(tree.RootNode(), func(n *tree_sitter.Node) bool {
		if n.Kind() == "comment" {
			line := int(n.EndPosition().Row) + 1
			f.commentsByLn[line] = nodeText(n, f.source)
		}
		return true
	})

	return f
}

func walkSwift(node *tree_sitter.Node, fn func(*tree_sitter.Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil {
			walkSwift(child, fn)
		}
	}
}

func nodeText(node *tree_sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

func (f *TreeSitterSourceFile) Directive(line int) (Directive, bool) {
	raw, ok := f.commentsByLn[line]
	if !ok {
		return Directive{}, false
	}
	comment := strings.TrimSpace(strings.TrimPrefix(raw, "//"))
	const prefix = "kotlin:"
	if !strings.HasPrefix(comment, prefix) {
		return Directive{}, false
	}
	return parseDirectiveBody(strings.TrimSpace(strings.TrimPrefix(comment, prefix)))
}

package pipeline

import (
	"github.com/funvibe/swiftkt/internal/collaborators"
	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/ir"
	"github.com/funvibe/swiftkt/internal/rawtree"
)

// Context holds all the data passed between pipeline stages: one run of
// dump text → RawTree → IR → IR' → Kotlin text.
type Context struct {
	CorrelationID string
	SourceText    string // the raw AST dump text
	FilePath      string

	RawTree *rawtree.RawTree
	IR      []ir.Statement
	Kotlin  string

	SourceFile collaborators.SourceFile
	Sink       *diagnostics.Sink
}

// NewContext creates and initializes a new Context for one translation run.
func NewContext(correlationID, sourceText, filePath string, source collaborators.SourceFile, sink *diagnostics.Sink) *Context {
	if sink == nil {
		sink = diagnostics.NewSink()
	}
	return &Context{
		CorrelationID: correlationID,
		SourceText:    sourceText,
		FilePath:      filePath,
		SourceFile:    source,
		Sink:          sink,
	}
}

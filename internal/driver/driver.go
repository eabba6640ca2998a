// Package driver sequences decode -> translate -> run IR passes -> emit,
// exposing the pure entry points of spec.md §4.6 plus the composition and
// shell-backed methods built on top of them, following the teacher's
// `internal/evaluator` top-level "run a file" driver shape generalized to
// this module's four-stage pipeline.
package driver

import (
	"time"

	"github.com/google/uuid"

	"github.com/funvibe/swiftkt/internal/cache"
	"github.com/funvibe/swiftkt/internal/collaborators"
	"github.com/funvibe/swiftkt/internal/config"
	"github.com/funvibe/swiftkt/internal/decoder"
	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/emitter"
	"github.com/funvibe/swiftkt/internal/ir"
	"github.com/funvibe/swiftkt/internal/logging"
	"github.com/funvibe/swiftkt/internal/pipeline"
	"github.com/funvibe/swiftkt/internal/rawtree"
	"github.com/funvibe/swiftkt/internal/registry"
	"github.com/funvibe/swiftkt/internal/token"
	"github.com/funvibe/swiftkt/internal/translator"
)

// Driver holds the write-once registries (spec.md §5: "shared resources...
// populated before translation begins") and the injected collaborators, and
// is the sole entry point a CLI or test should use to run the pipeline.
type Driver struct {
	FileIO  collaborators.FileIO
	Shell   collaborators.Shell
	Enums   *registry.EnumRegistry
	Funcs   *registry.FunctionRegistry
	Cache   *cache.Cache
	Log     *logging.Logger
	Passes  []pipeline.Pass

	ShouldStopAtFirstError  bool
	ShouldAvoidUnicodeChars bool
}

// New builds a Driver with real OS collaborators and empty registries. The
// caller populates Enums/Funcs (spec.md §5's "populated before translation
// begins") before calling any entry point.
func New() *Driver {
	return &Driver{
		FileIO: collaborators.OSFileIO{},
		Shell:  collaborators.ExecShell{},
		Enums:  registry.NewEnumRegistry(),
		Funcs:  registry.NewFunctionRegistry(),
		Log:    logging.NewStderr(),
	}
}

func (d *Driver) newSink() *diagnostics.Sink {
	sink := diagnostics.NewSink()
	sink.ShouldStopAtFirstError = d.ShouldStopAtFirstError
	sink.ShouldAvoidUnicodeChars = d.ShouldAvoidUnicodeChars
	return sink
}

// SwiftAstFromDump is the first pure entry point of spec.md §4.6.
func (d *Driver) SwiftAstFromDump(text string, sink *diagnostics.Sink) (*rawtree.RawTree, error) {
	tree, err := decoder.Decode(text)
	if err != nil {
		sink.Report(diagnostics.NewError(diagnostics.PhaseDecode, diagnostics.ErrMalformedDump, "dump", token.Pos{}, err.Error()))
		return nil, err
	}
	return tree, nil
}

// IRFromSwiftAst is the second pure entry point: runs the translator but
// not the IR passes, per spec.md §4.6.
func (d *Driver) IRFromSwiftAst(root *rawtree.RawTree, source collaborators.SourceFile, sink *diagnostics.Sink) (stmts []ir.Statement) {
	defer sink.Recover()
	tr := translator.New(sink, source, d.Enums, d.Funcs)
	return tr.TranslateFile(root)
}

// IRAfterPasses is the third pure entry point: runs the registered IR
// passes in a fixed two-round order (pipeline.RunPasses), per spec.md §4.6.
func (d *Driver) IRAfterPasses(stmts []ir.Statement, ctx *pipeline.Context) []ir.Statement {
	if len(d.Passes) == 0 {
		return stmts
	}
	return pipeline.RunPasses(stmts, ctx, d.Passes)
}

// KotlinFromIR is the fourth pure entry point of spec.md §4.6.
func (d *Driver) KotlinFromIR(stmts []ir.Statement, sink *diagnostics.Sink) string {
	em := emitter.New(sink, d.Enums, d.Funcs)
	return em.EmitFile(stmts)
}

// ResolveSourceFile looks for the original Swift source staged alongside
// filePath (the ".swift" entry of config.SourceFileExtensions, per
// spec.md §6) and, when present, parses it with tree-sitter-swift for
// precise comment-directive detection. When no sibling source is staged,
// it falls back to the line-oriented LineSourceFile over the dump text
// itself.
func (d *Driver) ResolveSourceFile(filePath, dumpText string) collaborators.SourceFile {
	for _, ext := range config.SourceFileExtensions {
		if ext != ".swift" {
			continue
		}
		swiftPath := d.FileIO.ChangeExtension(filePath, ext)
		if d.FileIO.FileExists(swiftPath) {
			if text, err := d.FileIO.ReadFile(swiftPath); err == nil {
				return collaborators.NewTreeSitterSourceFile(text)
			}
		}
		break
	}
	return collaborators.NewLineSourceFile(dumpText)
}

// TranslateFile chains all four entry points for one dump, consulting the
// translation cache first when one is configured. A fail-fast sink's
// StopTranslation is recovered here, ending only this file's translation.
func (d *Driver) TranslateFile(filePath, dumpText string, source collaborators.SourceFile) (kotlin string, sink *diagnostics.Sink) {
	sink = d.newSink()
	defer sink.Recover()
	correlationID := uuid.New().String()
	d.Log.Infof("[%s] translating %s", correlationID, filePath)

	if d.Cache != nil {
		key := cache.HashContent(dumpText)
		if kotlin, ok, err := d.Cache.Lookup(key); err == nil && ok {
			d.Log.Infof("[%s] cache hit for %s", correlationID, filePath)
			return kotlin, sink
		} else if err != nil {
			d.Log.Warnf("[%s] cache lookup failed for %s: %s", correlationID, filePath, err)
		}
	}

	root, err := d.SwiftAstFromDump(dumpText, sink)
	if err != nil {
		return "", sink
	}

	ctx := pipeline.NewContext(correlationID, dumpText, filePath, source, sink)
	ctx.RawTree = root

	stmts := d.IRFromSwiftAst(root, source, sink)
	stmts = d.IRAfterPasses(stmts, ctx)
	kotlin = d.KotlinFromIR(stmts, sink)

	if d.Cache != nil {
		key := cache.HashContent(dumpText)
		if err := d.Cache.Store(key, kotlin, time.Now().Unix()); err != nil {
			d.Log.Warnf("[%s] cache store failed for %s: %s", correlationID, filePath, err)
		}
	}
	return kotlin, sink
}

// Compile and Run are thin wrappers over the Shell collaborator per
// spec.md §4.6; both may time out and report none, matching §5's
// "external shell invocations... report none on expiry".
func (d *Driver) Compile(kotlinPaths []string, timeout time.Duration) (*collaborators.CommandOutput, error) {
	argv := append([]string{"kotlinc"}, kotlinPaths...)
	return d.Shell.Run(argv, "", timeout)
}

func (d *Driver) Run(folder string, timeout time.Duration) (*collaborators.CommandOutput, error) {
	return d.Shell.Run([]string{"java", "-jar", "main.jar"}, folder, timeout)
}


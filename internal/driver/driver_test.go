package driver

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/swiftkt/internal/cache"
	"github.com/funvibe/swiftkt/internal/collaborators"
	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/logging"
	"github.com/funvibe/swiftkt/internal/registry"
)

const validDump = `(Source File
	(Import Declaration "Foundation"))`

func newTestDriver() *Driver {
	return &Driver{
		FileIO: fakeFileIO{},
		Shell:  &fakeShell{},
		Enums:  registry.NewEnumRegistry(),
		Funcs:  registry.NewFunctionRegistry(),
		Log:    logging.New(&bytes.Buffer{}),
	}
}

func TestTranslateFileProducesKotlinWithNoDiagnostics(t *testing.T) {
	d := newTestDriver()
	source := collaborators.NewLineSourceFile(validDump)

	kotlin, sink := d.TranslateFile("a.swiftASTDump", validDump, source)

	require.Empty(t, sink.Errors())
	require.Contains(t, kotlin, "Foundation")
}

func TestTranslateFileCacheHitSkipsRetranslation(t *testing.T) {
	d := newTestDriver()
	mem, err := cache.NewMemory(8)
	require.NoError(t, err)
	d.Cache = cache.New(mem, nil)
	source := collaborators.NewLineSourceFile(validDump)

	first, firstSink := d.TranslateFile("a.swiftASTDump", validDump, source)
	require.Empty(t, firstSink.Errors())

	second, secondSink := d.TranslateFile("a.swiftASTDump", validDump, source)
	require.Equal(t, first, second)
	require.Empty(t, secondSink.Errors())

	key := cache.HashContent(validDump)
	cached, ok, err := d.Cache.Lookup(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, first, cached)
}

func TestTranslateFileMalformedDumpReportsDecodeError(t *testing.T) {
	d := newTestDriver()
	source := collaborators.NewLineSourceFile("not a valid dump (((")

	_, sink := d.TranslateFile("bad.swiftASTDump", "not a valid dump (((", source)

	require.NotEmpty(t, sink.Errors())
	require.Equal(t, diagnostics.ErrMalformedDump, sink.Errors()[0].Code)
}

func TestCompileReturnsNoneOnShellTimeout(t *testing.T) {
	d := newTestDriver()
	d.Shell = &fakeShell{timeoutAlways: true}

	out, err := d.Compile([]string{"a.kt"}, time.Second)

	require.NoError(t, err)
	require.Nil(t, out)
}

func TestRunInvokesShellWithFolderAsCwd(t *testing.T) {
	d := newTestDriver()
	shell := &fakeShell{}
	d.Shell = shell

	_, err := d.Run("/work", time.Second)

	require.NoError(t, err)
	require.Equal(t, "/work", shell.lastCwd)
	require.Equal(t, []string{"java", "-jar", "main.jar"}, shell.lastArgv)
}

func TestTranslateBatchCombinesHistogramAcrossFiles(t *testing.T) {
	d := newTestDriver()
	d.FileIO = fakeFileIO{
		files: map[string]string{
			"good.swiftASTDump": validDump,
			"bad.swiftASTDump":  `(Source File (Completely Unrecognized Node))`,
		},
	}

	report := d.TranslateBatch([]string{"good.swiftASTDump", "bad.swiftASTDump", "missing.swiftASTDump"})

	require.Len(t, report.Files, 3)
	require.Equal(t, 1, report.ErrorCounts[string(diagnostics.ErrUnexpectedASTStructure)])
	require.Equal(t, 1, report.ErrorCounts[string(diagnostics.ErrExternalFailure)])
}

func TestResolveSourceFileFallsBackToLineSourceFileWhenNoSiblingSwift(t *testing.T) {
	d := newTestDriver()
	d.FileIO = fakeFileIO{files: map[string]string{"a.swiftASTDump": validDump}}

	source := d.ResolveSourceFile("a.swiftASTDump", validDump)

	_, ok := source.(*collaborators.LineSourceFile)
	require.True(t, ok)
}

func TestResolveSourceFileUsesTreeSitterWhenSiblingSwiftExists(t *testing.T) {
	d := newTestDriver()
	d.FileIO = fakeFileIO{files: map[string]string{
		"a.swiftASTDump": validDump,
		"a.swift":        "import Foundation\n",
	}}

	source := d.ResolveSourceFile("a.swiftASTDump", validDump)

	_, ok := source.(*collaborators.TreeSitterSourceFile)
	require.True(t, ok)
}

type fakeFileIO struct {
	files map[string]string
}

func (f fakeFileIO) ReadFile(path string) (string, error) {
	text, ok := f.files[path]
	if !ok {
		return "", errors.New("no such file")
	}
	return text, nil
}

func (f fakeFileIO) WriteFile(path string, text string) error { return nil }
func (f fakeFileIO) FileExists(path string) bool              { _, ok := f.files[path]; return ok }
func (f fakeFileIO) CreateFileIfNeeded(path string) (bool, error) {
	return true, nil
}
func (f fakeFileIO) ModifiedTime(path string) (time.Time, error) { return time.Time{}, nil }
func (f fakeFileIO) ChangeExtension(path string, ext string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return base + ext
}

type fakeShell struct {
	timeoutAlways bool
	lastArgv      []string
	lastCwd       string
}

func (s *fakeShell) Run(argv []string, cwd string, timeout time.Duration) (*collaborators.CommandOutput, error) {
	s.lastArgv = argv
	s.lastCwd = cwd
	if s.timeoutAlways {
		return nil, nil
	}
	return &collaborators.CommandOutput{Status: 0}, nil
}

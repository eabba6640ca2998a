// Package logging is the ambient stderr logger shared by the driver and
// CLI: phase-tagged lines, colorized when stderr is a terminal
// (github.com/fatih/color gated by github.com/mattn/go-isatty, the same
// TTY-detection idiom go-isatty documents for any color-capable CLI tool
// and that this module's go.mod already carries transitively through the
// teacher's stack).
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Logger struct {
	out      io.Writer
	colorize bool
}

// New creates a Logger writing to w, auto-detecting color support when w
// is *os.File and a terminal.
func New(w io.Writer) *Logger {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{out: w, colorize: colorize}
}

func NewStderr() *Logger { return New(os.Stderr) }

func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(color.FgCyan, "info", format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(color.FgYellow, "warn", format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(color.FgRed, "error", format, args...)
}

func (l *Logger) write(c color.Attribute, level, format string, args ...interface{}) {
	tag := fmt.Sprintf("[%s]", level)
	if l.colorize {
		tag = color.New(c).Sprint(tag)
	}
	fmt.Fprintf(l.out, "%s %s\n", tag, fmt.Sprintf(format, args...))
}

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/funvibe/swiftkt/internal/diagnostics"
)

func printDiagnostics(sink *diagnostics.Sink) {
	errColor := color.New(color.FgRed)
	warnColor := color.New(color.FgYellow)
	boldColor := color.New(color.Bold)

	for _, e := range sink.Errors() {
		errColor.Fprintln(os.Stderr, e.Error())
	}
	for _, w := range sink.Warnings() {
		warnColor.Fprintln(os.Stderr, w.Error())
	}
	if !sink.HasErrorsOrWarnings() {
		return
	}
	boldColor.Fprintln(os.Stderr, "\nerror histogram:")
	for _, h := range sink.Histogram() {
		fmt.Fprintf(os.Stderr, "  %-40s %d\n", h.NodeName, h.Count)
	}
}
